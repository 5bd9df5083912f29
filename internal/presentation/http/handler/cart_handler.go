package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/joseph2000k/pljscorner-pos-sub000/internal/application/service"
	"github.com/joseph2000k/pljscorner-pos-sub000/internal/presentation/http/dto/request"
	"github.com/joseph2000k/pljscorner-pos-sub000/internal/presentation/http/dto/response"
)

// CartHandler handles cart-related HTTP requests
type CartHandler struct {
	cartService *service.CartService
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cartService *service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// cartView builds the cart payload returned by every mutating endpoint so
// the register screen always refreshes from one shape.
func (h *CartHandler) cartView(c *gin.Context) (gin.H, error) {
	totals, err := h.cartService.Totals(c.Request.Context())
	if err != nil {
		return nil, err
	}
	return gin.H{
		"lines":         h.cartService.Lines(),
		"total":         totals.Total,
		"breakdown":     totals.Breakdown,
		"total_savings": totals.TotalSavings(),
	}, nil
}

// Get handles retrieving the current cart with live totals
func (h *CartHandler) Get(c *gin.Context) {
	view, err := h.cartView(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Cart retrieved successfully", view)
}

// AddItem handles adding a product to the cart by ID or scan code
func (h *CartHandler) AddItem(c *gin.Context) {
	var req request.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	var err error
	switch {
	case req.ProductID != nil:
		err = h.cartService.AddItem(c.Request.Context(), *req.ProductID)
	case req.Code != "":
		err = h.cartService.AddItemByCode(c.Request.Context(), req.Code)
	default:
		response.BadRequest(c, "Either product_id or code is required")
		return
	}
	if err != nil {
		response.Error(c, err)
		return
	}

	view, err := h.cartView(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item added to cart", view)
}

// SetQuantity handles setting a cart line's quantity directly
func (h *CartHandler) SetQuantity(c *gin.Context) {
	productID, ok := parseIDParam(c, "product_id")
	if !ok {
		return
	}

	var req request.SetCartQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	if err := h.cartService.SetQuantity(productID, req.Quantity); err != nil {
		response.Error(c, err)
		return
	}

	view, err := h.cartView(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Cart updated successfully", view)
}

// RemoveItem handles removing a cart line
func (h *CartHandler) RemoveItem(c *gin.Context) {
	productID, ok := parseIDParam(c, "product_id")
	if !ok {
		return
	}

	h.cartService.RemoveItem(productID)

	view, err := h.cartView(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item removed from cart", view)
}

// Clear handles emptying the cart
func (h *CartHandler) Clear(c *gin.Context) {
	h.cartService.Clear()
	response.NoContent(c)
}
