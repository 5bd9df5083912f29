package service

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/joseph2000k/pljscorner-pos-sub000/internal/domain/entity"
	"github.com/joseph2000k/pljscorner-pos-sub000/internal/domain/enum"
	"github.com/joseph2000k/pljscorner-pos-sub000/internal/domain/repository"
	"github.com/joseph2000k/pljscorner-pos-sub000/pkg/apperror"
)

// CheckoutService turns the active cart into a committed sale. It is a
// state machine: Idle -> AwaitingPayment -> Committing -> Completed, with a
// failed commit returning to AwaitingPayment so the cashier can retry or
// back out. The total and discount breakdown are captured at Begin time and
// are what the commit and receipt use, even if category rules change in
// between.
type CheckoutService struct {
	mu        sync.Mutex
	state     enum.CheckoutState
	total     float64
	breakdown []entity.DiscountBreakdown

	cartSvc  *CartService
	saleRepo repository.SaleRepository
	header   entity.ReceiptHeader
}

// NewCheckoutService creates a new checkout service in the Idle state.
func NewCheckoutService(cartSvc *CartService, saleRepo repository.SaleRepository, header entity.ReceiptHeader) *CheckoutService {
	return &CheckoutService{
		state:    enum.CheckoutIdle,
		cartSvc:  cartSvc,
		saleRepo: saleRepo,
		header:   header,
	}
}

// CheckoutSummary is what the cashier sees after Begin: the amount due and
// the discount breakdown behind it.
type CheckoutSummary struct {
	State     enum.CheckoutState         `json:"state"`
	Total     float64                    `json:"total"`
	Breakdown []entity.DiscountBreakdown `json:"breakdown,omitempty"`
}

// State returns the current state machine position.
func (s *CheckoutService) State() enum.CheckoutState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Begin starts a checkout for the active cart. Rejects an empty cart with
// ErrEmptyCart and a checkout already awaiting payment or committing with
// ErrAlreadyInProgress. A previous Completed checkout does not block a new
// one.
func (s *CheckoutService) Begin(ctx context.Context) (*CheckoutSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == enum.CheckoutAwaitingPayment || s.state == enum.CheckoutCommitting {
		return nil, apperror.ErrAlreadyInProgress
	}

	if len(s.cartSvc.Lines()) == 0 {
		return nil, apperror.ErrEmptyCart
	}
	totals, err := s.cartSvc.Totals(ctx)
	if err != nil {
		return nil, err
	}

	s.state = enum.CheckoutAwaitingPayment
	s.total = totals.Total
	s.breakdown = totals.Breakdown

	return &CheckoutSummary{
		State:     s.state,
		Total:     s.total,
		Breakdown: s.breakdown,
	}, nil
}

// Cancel abandons a checkout awaiting payment, returning to Idle with the
// cart untouched.
func (s *CheckoutService) Cancel() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != enum.CheckoutAwaitingPayment {
		return apperror.NewConflictError("No checkout awaiting payment")
	}
	s.state = enum.CheckoutIdle
	s.total = 0
	s.breakdown = nil
	return nil
}

// SettleCash settles the checkout with cash. Rejects a tender that is not a
// positive number (ErrInvalidAmount) or below the total
// (ErrInsufficientAmount); on success the change is tendered minus total
// and the sale is committed.
func (s *CheckoutService) SettleCash(ctx context.Context, amountTendered float64) (*entity.Receipt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != enum.CheckoutAwaitingPayment {
		return nil, apperror.NewConflictError("No checkout awaiting payment")
	}
	if math.IsNaN(amountTendered) || math.IsInf(amountTendered, 0) || amountTendered <= 0 {
		return nil, apperror.ErrInvalidAmount
	}
	if amountTendered < s.total {
		return nil, apperror.ErrInsufficientAmount
	}

	return s.commit(ctx, enum.PaymentCash, amountTendered, amountTendered-s.total)
}

// SettleFixed settles the checkout with a fixed-amount method (card or
// gcash): tendered equals the total and change is zero.
func (s *CheckoutService) SettleFixed(ctx context.Context, method enum.PaymentMethod) (*entity.Receipt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != enum.CheckoutAwaitingPayment {
		return nil, apperror.NewConflictError("No checkout awaiting payment")
	}
	if !method.Fixed() {
		return nil, apperror.NewBadRequestError(fmt.Sprintf("Payment method %q is not a fixed-amount method", method))
	}

	return s.commit(ctx, method, s.total, 0)
}

// commit persists the sale as one transactional unit. On any failure the
// repository rolls everything back; the cart is untouched and the state
// returns to AwaitingPayment with a CommitFailed error carrying the cause.
// Callers hold s.mu.
func (s *CheckoutService) commit(ctx context.Context, method enum.PaymentMethod, tendered, change float64) (*entity.Receipt, error) {
	s.state = enum.CheckoutCommitting

	lines := s.cartSvc.Lines()
	sale := &entity.Sale{
		InvoiceNo:      fmt.Sprintf("INV-%s", uuid.New().String()[:8]),
		Total:          s.total,
		PaymentMethod:  method,
		AmountTendered: tendered,
		Change:         change,
		CreatedAt:      time.Now(),
	}

	items := make([]entity.SaleItem, 0, len(lines))
	for _, line := range lines {
		items = append(items, entity.SaleItem{
			ProductID:   line.ProductID,
			ProductName: line.Name,
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice,
			LineTotal:   line.UnitPrice * float64(line.Quantity),
		})
	}

	discounts := make([]entity.SaleDiscount, 0, len(s.breakdown))
	for _, b := range s.breakdown {
		discounts = append(discounts, entity.SaleDiscount{
			Category:         b.Category,
			TotalQuantity:    b.TotalQuantity,
			BulkSets:         b.BulkSets,
			DiscountQuantity: b.DiscountQuantity,
			DiscountPrice:    b.DiscountPrice,
			Savings:          b.Savings,
		})
	}

	if err := s.saleRepo.CreateWithItems(ctx, sale, items, discounts); err != nil {
		s.state = enum.CheckoutAwaitingPayment
		return nil, apperror.NewCommitFailedError(err)
	}

	receipt := ComposeReceipt(sale, items, s.breakdown, s.header)

	s.cartSvc.Clear()
	s.state = enum.CheckoutCompleted
	s.total = 0
	s.breakdown = nil

	return receipt, nil
}
