package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/joseph2000k/pljscorner-pos-sub000/internal/application/service"
	"github.com/joseph2000k/pljscorner-pos-sub000/internal/domain/enum"
	"github.com/joseph2000k/pljscorner-pos-sub000/internal/presentation/http/dto/request"
	"github.com/joseph2000k/pljscorner-pos-sub000/internal/presentation/http/dto/response"
)

// CheckoutHandler handles checkout-related HTTP requests
type CheckoutHandler struct {
	checkoutService *service.CheckoutService
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(checkoutService *service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkoutService: checkoutService}
}

// GetState handles reading the current checkout state
func (h *CheckoutHandler) GetState(c *gin.Context) {
	response.OK(c, "Checkout state retrieved successfully", gin.H{
		"state": h.checkoutService.State(),
	})
}

// Begin handles starting a checkout from the current cart
func (h *CheckoutHandler) Begin(c *gin.Context) {
	summary, err := h.checkoutService.Begin(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Checkout started", summary)
}

// Cancel handles abandoning a pending checkout
func (h *CheckoutHandler) Cancel(c *gin.Context) {
	if err := h.checkoutService.Cancel(); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Checkout cancelled", nil)
}

// SettleCash handles settling a checkout with a cash payment
func (h *CheckoutHandler) SettleCash(c *gin.Context) {
	var req request.SettleCashRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	receipt, err := h.checkoutService.SettleCash(c.Request.Context(), req.AmountTendered)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sale completed successfully", receipt)
}

// SettleFixed handles settling a checkout with a fixed-amount payment
func (h *CheckoutHandler) SettleFixed(c *gin.Context) {
	var req request.SettleFixedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	receipt, err := h.checkoutService.SettleFixed(c.Request.Context(), enum.PaymentMethod(req.PaymentMethod))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sale completed successfully", receipt)
}
