package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cartProduct(name string, price float64, stock int) *Product {
	return &Product{ID: uuid.New(), Name: name, UnitPrice: price, StockQuantity: stock}
}

func TestCart_LinesKeepInsertionOrder(t *testing.T) {
	cart := NewCart()
	a := cartProduct("A", 10, 5)
	b := cartProduct("B", 20, 5)
	c := cartProduct("C", 30, 5)

	require.NoError(t, cart.AddItem(a))
	require.NoError(t, cart.AddItem(b))
	require.NoError(t, cart.AddItem(c))
	// Re-adding an existing product must not reorder it
	require.NoError(t, cart.AddItem(a))

	lines := cart.Lines()
	require.Len(t, lines, 3)
	assert.Equal(t, "A", lines[0].Name)
	assert.Equal(t, "B", lines[1].Name)
	assert.Equal(t, "C", lines[2].Name)
	assert.Equal(t, 2, lines[0].Quantity)
}

func TestCart_RemoveMiddleLine(t *testing.T) {
	cart := NewCart()
	a := cartProduct("A", 10, 5)
	b := cartProduct("B", 20, 5)
	c := cartProduct("C", 30, 5)
	require.NoError(t, cart.AddItem(a))
	require.NoError(t, cart.AddItem(b))
	require.NoError(t, cart.AddItem(c))

	cart.RemoveItem(b.ID)

	lines := cart.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "A", lines[0].Name)
	assert.Equal(t, "C", lines[1].Name)

	// Removing an absent product is a no-op
	cart.RemoveItem(uuid.New())
	assert.Len(t, cart.Lines(), 2)
}

func TestCart_LinesReturnsCopies(t *testing.T) {
	cart := NewCart()
	a := cartProduct("A", 10, 5)
	require.NoError(t, cart.AddItem(a))

	lines := cart.Lines()
	lines[0].Quantity = 99

	assert.Equal(t, 1, cart.Lines()[0].Quantity)
}

func TestCart_SetQuantityUnknownProductIsNoop(t *testing.T) {
	cart := NewCart()

	require.NoError(t, cart.SetQuantity(uuid.New(), 3))
	assert.True(t, cart.IsEmpty())
}
