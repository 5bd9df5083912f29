package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph2000k/pljscorner-pos-sub000/internal/domain/entity"
	"github.com/joseph2000k/pljscorner-pos-sub000/internal/domain/enum"
	"github.com/joseph2000k/pljscorner-pos-sub000/pkg/apperror"
)

var testHeader = entity.ReceiptHeader{StoreName: "PLJS Corner"}

// checkoutFixture wires a cart with one Beverages product (price 20,
// discount 6 for 100) and a checkout on top of it.
type checkoutFixture struct {
	cart     *CartService
	checkout *CheckoutService
	saleRepo *fakeSaleRepo
	cola     *entity.Product
}

func newCheckoutFixture(t *testing.T) *checkoutFixture {
	t.Helper()
	beverages := &entity.Category{Name: "Beverages", DiscountQuantity: 6, DiscountPrice: 100}
	cola := testProduct("Cola", "C-001", "Beverages", 20, 50)
	cart := NewCartService(newFakeProductRepo(cola), newFakeCategoryRepo(beverages))
	saleRepo := &fakeSaleRepo{}
	return &checkoutFixture{
		cart:     cart,
		checkout: NewCheckoutService(cart, saleRepo, testHeader),
		saleRepo: saleRepo,
		cola:     cola,
	}
}

func (f *checkoutFixture) fillCart(t *testing.T, quantity int) {
	t.Helper()
	require.NoError(t, f.cart.AddItem(context.Background(), f.cola.ID))
	require.NoError(t, f.cart.SetQuantity(f.cola.ID, quantity))
}

func TestCheckout_BeginEmptyCart(t *testing.T) {
	f := newCheckoutFixture(t)

	_, err := f.checkout.Begin(context.Background())

	assert.ErrorIs(t, err, apperror.ErrEmptyCart)
	assert.Equal(t, enum.CheckoutIdle, f.checkout.State())
}

func TestCheckout_BeginCapturesTotals(t *testing.T) {
	f := newCheckoutFixture(t)
	f.fillCart(t, 8)

	summary, err := f.checkout.Begin(context.Background())

	require.NoError(t, err)
	assert.Equal(t, enum.CheckoutAwaitingPayment, summary.State)
	assert.InDelta(t, 140.0, summary.Total, 1e-6)
	require.Len(t, summary.Breakdown, 1)
	assert.InDelta(t, 20.0, summary.Breakdown[0].Savings, 1e-6)
}

func TestCheckout_BeginAlreadyInProgress(t *testing.T) {
	f := newCheckoutFixture(t)
	f.fillCart(t, 2)
	ctx := context.Background()

	_, err := f.checkout.Begin(ctx)
	require.NoError(t, err)

	_, err = f.checkout.Begin(ctx)
	assert.ErrorIs(t, err, apperror.ErrAlreadyInProgress)
}

func TestCheckout_Cancel(t *testing.T) {
	f := newCheckoutFixture(t)
	f.fillCart(t, 2)
	ctx := context.Background()

	_, err := f.checkout.Begin(ctx)
	require.NoError(t, err)

	require.NoError(t, f.checkout.Cancel())
	assert.Equal(t, enum.CheckoutIdle, f.checkout.State())

	// The cart survives a cancelled checkout
	assert.Len(t, f.cart.Lines(), 1)

	// Nothing pending to cancel now
	assert.Error(t, f.checkout.Cancel())
}

func TestCheckout_SettleCashRequiresPendingCheckout(t *testing.T) {
	f := newCheckoutFixture(t)

	_, err := f.checkout.SettleCash(context.Background(), 100)

	require.Error(t, err)
	assert.Equal(t, 409, apperror.GetAppError(err).Code)
}

func TestCheckout_SettleCashInvalidAmount(t *testing.T) {
	f := newCheckoutFixture(t)
	f.fillCart(t, 3) // total 60
	ctx := context.Background()
	_, err := f.checkout.Begin(ctx)
	require.NoError(t, err)

	for _, amount := range []float64{0, -5} {
		_, err := f.checkout.SettleCash(ctx, amount)
		assert.ErrorIs(t, err, apperror.ErrInvalidAmount)
	}

	// Still awaiting payment after rejected tenders
	assert.Equal(t, enum.CheckoutAwaitingPayment, f.checkout.State())
}

func TestCheckout_SettleCashInsufficientAmount(t *testing.T) {
	f := newCheckoutFixture(t)
	f.fillCart(t, 3) // total 60
	ctx := context.Background()
	_, err := f.checkout.Begin(ctx)
	require.NoError(t, err)

	_, err = f.checkout.SettleCash(ctx, 50)

	assert.ErrorIs(t, err, apperror.ErrInsufficientAmount)
	assert.Equal(t, enum.CheckoutAwaitingPayment, f.checkout.State())
	assert.Empty(t, f.saleRepo.sales)
}

func TestCheckout_SettleCashSuccess(t *testing.T) {
	f := newCheckoutFixture(t)
	f.fillCart(t, 3) // total 60
	ctx := context.Background()
	_, err := f.checkout.Begin(ctx)
	require.NoError(t, err)

	receipt, err := f.checkout.SettleCash(ctx, 70)

	require.NoError(t, err)
	assert.InDelta(t, 60.0, receipt.Total, 1e-6)
	assert.InDelta(t, 70.0, receipt.Tendered, 1e-6)
	assert.InDelta(t, 10.0, receipt.Change, 1e-6)
	assert.Equal(t, "cash", receipt.PaymentMethod)

	assert.Equal(t, enum.CheckoutCompleted, f.checkout.State())
	assert.Empty(t, f.cart.Lines())

	require.Len(t, f.saleRepo.sales, 1)
	sale := f.saleRepo.sales[0]
	assert.NotEmpty(t, sale.InvoiceNo)
	require.Len(t, f.saleRepo.items[0], 1)
	assert.Equal(t, "Cola", f.saleRepo.items[0][0].ProductName)
	assert.Equal(t, 3, f.saleRepo.items[0][0].Quantity)
}

func TestCheckout_SettleCashPersistsDiscountRows(t *testing.T) {
	f := newCheckoutFixture(t)
	f.fillCart(t, 8) // total 140, savings 20
	ctx := context.Background()
	_, err := f.checkout.Begin(ctx)
	require.NoError(t, err)

	receipt, err := f.checkout.SettleCash(ctx, 140)

	require.NoError(t, err)
	assert.InDelta(t, 20.0, receipt.TotalSavings, 1e-6)
	require.Len(t, f.saleRepo.disc[0], 1)
	assert.Equal(t, "Beverages", f.saleRepo.disc[0][0].Category)
	assert.Equal(t, 1, f.saleRepo.disc[0][0].BulkSets)
	assert.InDelta(t, 20.0, f.saleRepo.disc[0][0].Savings, 1e-6)
}

func TestCheckout_SettleFixed(t *testing.T) {
	f := newCheckoutFixture(t)
	f.fillCart(t, 3) // total 60
	ctx := context.Background()
	_, err := f.checkout.Begin(ctx)
	require.NoError(t, err)

	receipt, err := f.checkout.SettleFixed(ctx, enum.PaymentCard)

	require.NoError(t, err)
	assert.Equal(t, "card", receipt.PaymentMethod)
	assert.InDelta(t, 60.0, receipt.Tendered, 1e-6)
	assert.InDelta(t, 0.0, receipt.Change, 1e-6)
}

func TestCheckout_SettleFixedRejectsCash(t *testing.T) {
	f := newCheckoutFixture(t)
	f.fillCart(t, 3)
	ctx := context.Background()
	_, err := f.checkout.Begin(ctx)
	require.NoError(t, err)

	_, err = f.checkout.SettleFixed(ctx, enum.PaymentCash)

	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
	assert.Equal(t, enum.CheckoutAwaitingPayment, f.checkout.State())
}

func TestCheckout_CommitFailureKeepsCartAndReturnsToAwaitingPayment(t *testing.T) {
	f := newCheckoutFixture(t)
	f.fillCart(t, 3)
	ctx := context.Background()
	_, err := f.checkout.Begin(ctx)
	require.NoError(t, err)

	f.saleRepo.failErr = errors.New("insufficient stock for Cola")

	_, err = f.checkout.SettleCash(ctx, 100)

	require.Error(t, err)
	assert.True(t, apperror.IsCommitFailed(err))
	assert.Contains(t, err.Error(), "insufficient stock")

	// Cart and state are intact so the cashier can retry or cancel
	assert.Equal(t, enum.CheckoutAwaitingPayment, f.checkout.State())
	assert.Len(t, f.cart.Lines(), 1)
	assert.Empty(t, f.saleRepo.sales)

	// Retry succeeds once the cause clears
	f.saleRepo.failErr = nil
	receipt, err := f.checkout.SettleCash(ctx, 100)
	require.NoError(t, err)
	assert.InDelta(t, 40.0, receipt.Change, 1e-6)
	assert.Equal(t, enum.CheckoutCompleted, f.checkout.State())
}

func TestCheckout_NewCheckoutAfterCompleted(t *testing.T) {
	f := newCheckoutFixture(t)
	f.fillCart(t, 2)
	ctx := context.Background()
	_, err := f.checkout.Begin(ctx)
	require.NoError(t, err)
	_, err = f.checkout.SettleCash(ctx, 100)
	require.NoError(t, err)

	// A completed checkout does not block the next transaction
	f.fillCart(t, 1)
	summary, err := f.checkout.Begin(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 20.0, summary.Total, 1e-6)
}

func TestCheckout_TotalsFrozenAtBegin(t *testing.T) {
	beverages := &entity.Category{Name: "Beverages", DiscountQuantity: 6, DiscountPrice: 100}
	cola := testProduct("Cola", "C-001", "Beverages", 20, 50)
	catRepo := newFakeCategoryRepo(beverages)
	cart := NewCartService(newFakeProductRepo(cola), catRepo)
	saleRepo := &fakeSaleRepo{}
	checkout := NewCheckoutService(cart, saleRepo, testHeader)
	ctx := context.Background()

	require.NoError(t, cart.AddItem(ctx, cola.ID))
	require.NoError(t, cart.SetQuantity(cola.ID, 8))

	summary, err := checkout.Begin(ctx)
	require.NoError(t, err)
	require.InDelta(t, 140.0, summary.Total, 1e-6)

	// A rule change after Begin does not reprice the pending checkout
	beverages.DiscountQuantity = 0

	receipt, err := checkout.SettleCash(ctx, 140)
	require.NoError(t, err)
	assert.InDelta(t, 140.0, receipt.Total, 1e-6)
	assert.InDelta(t, 20.0, receipt.TotalSavings, 1e-6)
}
