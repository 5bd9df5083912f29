package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/joseph2000k/pljscorner-pos-sub000/internal/presentation/http/dto/response"
)

// parseIDParam extracts and parses a UUID path parameter. On failure it
// writes a 400 response and returns false.
func parseIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	raw := c.Param(name)
	id, err := uuid.Parse(raw)
	if err != nil {
		response.BadRequest(c, "Invalid "+name+" parameter")
		return uuid.Nil, false
	}
	return id, true
}
