package entity

import (
	"github.com/google/uuid"

	"github.com/joseph2000k/pljscorner-pos-sub000/pkg/apperror"
)

// CartLine is one product's entry in the active transaction. It snapshots
// the product's name, unit price, category and stock ceiling at add time so
// later catalog edits do not reprice lines already in the cart.
type CartLine struct {
	ProductID    uuid.UUID `json:"product_id"`
	Name         string    `json:"name"`
	Code         string    `json:"code"`
	CategoryName string    `json:"category_name,omitempty"`
	UnitPrice    float64   `json:"unit_price"`
	Quantity     int       `json:"quantity"`
	StockCeiling int       `json:"stock_ceiling"`
	Subtotal     float64   `json:"subtotal"`
}

// Cart is the ordered collection of lines for the active transaction.
// At most one line per product; lines keep insertion order. The cart is
// entirely transient and never persisted.
//
// Cart is not safe for concurrent use; callers serialize access
// (CartService wraps it in a mutex).
type Cart struct {
	lines []*CartLine
	index map[uuid.UUID]*CartLine
}

// NewCart creates an empty cart.
func NewCart() *Cart {
	return &Cart{index: make(map[uuid.UUID]*CartLine)}
}

// AddItem adds one unit of the product. If a line already exists its
// quantity is incremented by 1 unless that would exceed the stock ceiling
// captured when the line was created, in which case the cart is unchanged
// and apperror.ErrStockExceeded is returned.
func (c *Cart) AddItem(p *Product) error {
	if line, ok := c.index[p.ID]; ok {
		if line.Quantity+1 > line.StockCeiling {
			return apperror.ErrStockExceeded
		}
		line.Quantity++
		line.Subtotal = line.UnitPrice * float64(line.Quantity)
		return nil
	}

	if p.StockQuantity < 1 {
		return apperror.ErrStockExceeded
	}

	line := &CartLine{
		ProductID:    p.ID,
		Name:         p.Name,
		Code:         p.Code,
		CategoryName: p.CategoryName(),
		UnitPrice:    p.UnitPrice,
		Quantity:     1,
		StockCeiling: p.StockQuantity,
		Subtotal:     p.UnitPrice,
	}
	c.lines = append(c.lines, line)
	c.index[p.ID] = line
	return nil
}

// RemoveItem deletes the line for the product if present; no-op otherwise.
func (c *Cart) RemoveItem(productID uuid.UUID) {
	if _, ok := c.index[productID]; !ok {
		return
	}
	delete(c.index, productID)
	for i, line := range c.lines {
		if line.ProductID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			break
		}
	}
}

// SetQuantity updates the line's quantity. A quantity of zero or less is
// equivalent to RemoveItem. A quantity above the line's stock ceiling is
// rejected with apperror.ErrStockExceeded and the prior quantity is kept.
// No-op if the product has no line.
func (c *Cart) SetQuantity(productID uuid.UUID, quantity int) error {
	line, ok := c.index[productID]
	if !ok {
		return nil
	}
	if quantity <= 0 {
		c.RemoveItem(productID)
		return nil
	}
	if quantity > line.StockCeiling {
		return apperror.ErrStockExceeded
	}
	line.Quantity = quantity
	line.Subtotal = line.UnitPrice * float64(quantity)
	return nil
}

// Clear empties all lines.
func (c *Cart) Clear() {
	c.lines = nil
	c.index = make(map[uuid.UUID]*CartLine)
}

// Lines returns the current lines in insertion order. The returned slice
// holds copies so callers cannot mutate cart state through it.
func (c *Cart) Lines() []CartLine {
	out := make([]CartLine, len(c.lines))
	for i, line := range c.lines {
		out[i] = *line
	}
	return out
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}
