package request

import "github.com/google/uuid"

// AddCartItemRequest represents a request to add a product to the cart.
// Exactly one of ProductID or Code identifies the product; Code covers the
// barcode scanner path.
type AddCartItemRequest struct {
	ProductID *uuid.UUID `json:"product_id"`
	Code      string     `json:"code"`
}

// SetCartQuantityRequest represents a request to set a cart line's quantity
type SetCartQuantityRequest struct {
	Quantity int `json:"quantity" binding:"min=0"`
}
