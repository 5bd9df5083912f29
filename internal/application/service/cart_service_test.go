package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph2000k/pljscorner-pos-sub000/internal/domain/entity"
	"github.com/joseph2000k/pljscorner-pos-sub000/pkg/apperror"
)

func testProduct(name, code, category string, price float64, stock int) *entity.Product {
	p := &entity.Product{
		ID:            uuid.New(),
		Name:          name,
		Code:          code,
		UnitPrice:     price,
		StockQuantity: stock,
	}
	if category != "" {
		p.Category = &entity.Category{ID: uuid.New(), Name: category}
		p.CategoryID = &p.Category.ID
	}
	return p
}

func TestCartService_AddItemIncrementsExistingLine(t *testing.T) {
	cola := testProduct("Cola", "C-001", "Beverages", 20, 10)
	svc := NewCartService(newFakeProductRepo(cola), newFakeCategoryRepo())
	ctx := context.Background()

	require.NoError(t, svc.AddItem(ctx, cola.ID))
	require.NoError(t, svc.AddItem(ctx, cola.ID))

	lines := svc.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.InDelta(t, 40.0, lines[0].Subtotal, 1e-6)
	assert.Equal(t, "Beverages", lines[0].CategoryName)
}

func TestCartService_AddItemByCode(t *testing.T) {
	cola := testProduct("Cola", "C-001", "", 20, 10)
	svc := NewCartService(newFakeProductRepo(cola), newFakeCategoryRepo())

	require.NoError(t, svc.AddItemByCode(context.Background(), "C-001"))

	lines := svc.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, cola.ID, lines[0].ProductID)
}

func TestCartService_AddItemUnknownProduct(t *testing.T) {
	svc := NewCartService(newFakeProductRepo(), newFakeCategoryRepo())

	err := svc.AddItem(context.Background(), uuid.New())

	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestCartService_AddItemStockCeiling(t *testing.T) {
	cola := testProduct("Cola", "C-001", "", 20, 2)
	svc := NewCartService(newFakeProductRepo(cola), newFakeCategoryRepo())
	ctx := context.Background()

	require.NoError(t, svc.AddItem(ctx, cola.ID))
	require.NoError(t, svc.AddItem(ctx, cola.ID))

	err := svc.AddItem(ctx, cola.ID)
	assert.ErrorIs(t, err, apperror.ErrStockExceeded)

	// The rejected add leaves the line unchanged
	lines := svc.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)
}

func TestCartService_AddItemOutOfStock(t *testing.T) {
	cola := testProduct("Cola", "C-001", "", 20, 0)
	svc := NewCartService(newFakeProductRepo(cola), newFakeCategoryRepo())

	err := svc.AddItem(context.Background(), cola.ID)

	assert.ErrorIs(t, err, apperror.ErrStockExceeded)
	assert.Empty(t, svc.Lines())
}

func TestCartService_SetQuantity(t *testing.T) {
	cola := testProduct("Cola", "C-001", "", 20, 10)
	svc := NewCartService(newFakeProductRepo(cola), newFakeCategoryRepo())
	ctx := context.Background()
	require.NoError(t, svc.AddItem(ctx, cola.ID))

	require.NoError(t, svc.SetQuantity(cola.ID, 7))
	lines := svc.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 7, lines[0].Quantity)

	// Above the ceiling: rejected, prior quantity kept
	err := svc.SetQuantity(cola.ID, 11)
	assert.ErrorIs(t, err, apperror.ErrStockExceeded)
	assert.Equal(t, 7, svc.Lines()[0].Quantity)

	// Zero removes the line
	require.NoError(t, svc.SetQuantity(cola.ID, 0))
	assert.Empty(t, svc.Lines())
}

func TestCartService_LinePriceSnapshotSurvivesCatalogEdit(t *testing.T) {
	cola := testProduct("Cola", "C-001", "", 20, 10)
	repo := newFakeProductRepo(cola)
	svc := NewCartService(repo, newFakeCategoryRepo())
	require.NoError(t, svc.AddItem(context.Background(), cola.ID))

	// Catalog price change after the line was created
	cola.UnitPrice = 25

	lines := svc.Lines()
	require.Len(t, lines, 1)
	assert.InDelta(t, 20.0, lines[0].UnitPrice, 1e-6)
}

func TestCartService_TotalsRecomputedFromCurrentRules(t *testing.T) {
	beverages := &entity.Category{ID: uuid.New(), Name: "Beverages", DiscountQuantity: 6, DiscountPrice: 100}
	cola := testProduct("Cola", "C-001", "Beverages", 20, 50)
	catRepo := newFakeCategoryRepo(beverages)
	svc := NewCartService(newFakeProductRepo(cola), catRepo)
	ctx := context.Background()

	require.NoError(t, svc.AddItem(ctx, cola.ID))
	require.NoError(t, svc.SetQuantity(cola.ID, 8))

	totals, err := svc.Totals(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 140.0, totals.Total, 1e-6)
	require.Len(t, totals.Breakdown, 1)

	// A rule edit mid-cart is reflected on the next recompute
	beverages.DiscountQuantity = 0

	totals, err = svc.Totals(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 160.0, totals.Total, 1e-6)
	assert.Empty(t, totals.Breakdown)
}

func TestCartService_Clear(t *testing.T) {
	cola := testProduct("Cola", "C-001", "", 20, 10)
	svc := NewCartService(newFakeProductRepo(cola), newFakeCategoryRepo())
	require.NoError(t, svc.AddItem(context.Background(), cola.ID))

	svc.Clear()

	assert.Empty(t, svc.Lines())
}
