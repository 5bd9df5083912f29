package service

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/joseph2000k/pljscorner-pos-sub000/internal/domain/entity"
	"github.com/joseph2000k/pljscorner-pos-sub000/internal/domain/repository"
	"github.com/joseph2000k/pljscorner-pos-sub000/pkg/apperror"
)

// CartService owns the single active cart for this terminal. Cart mutations
// are serialized through a mutex since HTTP handlers run concurrently while
// the cart itself is a single-operator structure.
type CartService struct {
	mu           sync.Mutex
	cart         *entity.Cart
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

// NewCartService creates a new cart service with an empty cart.
func NewCartService(productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository) *CartService {
	return &CartService{
		cart:         entity.NewCart(),
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
	}
}

// AddItem adds one unit of the product to the cart. The product snapshot
// (price, category, stock ceiling) is taken at this moment.
func (s *CartService) AddItem(ctx context.Context, productID uuid.UUID) error {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return err
	}
	if product == nil {
		return apperror.NewNotFoundError("Product")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.AddItem(product)
}

// AddItemByCode adds one unit of the product matching a scanned code.
func (s *CartService) AddItemByCode(ctx context.Context, code string) error {
	product, err := s.productRepo.GetByCode(ctx, code)
	if err != nil {
		return err
	}
	if product == nil {
		return apperror.NewNotFoundError("Product")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.AddItem(product)
}

// SetQuantity updates a line's quantity; zero or less removes the line.
func (s *CartService) SetQuantity(productID uuid.UUID, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.SetQuantity(productID, quantity)
}

// RemoveItem deletes the product's line if present.
func (s *CartService) RemoveItem(productID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.RemoveItem(productID)
}

// Clear empties the cart.
func (s *CartService) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Clear()
}

// Lines returns the current cart lines in insertion order.
func (s *CartService) Lines() []entity.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Lines()
}

// Totals recomputes the cart's discount breakdown and grand total from the
// current lines and the categories' current rules. The result is never
// cached; a rule edited mid-cart is reflected on the next call.
func (s *CartService) Totals(ctx context.Context) (entity.CartTotals, error) {
	lines := s.Lines()

	lookup, err := s.categoryLookup(ctx, lines)
	if err != nil {
		return entity.CartTotals{}, err
	}

	return ComputeBreakdown(lines, lookup), nil
}

// categoryLookup fetches the categories referenced by the lines once and
// returns an in-memory lookup for the discount engine.
func (s *CartService) categoryLookup(ctx context.Context, lines []entity.CartLine) (CategoryLookup, error) {
	categories := make(map[string]*entity.Category)
	for _, line := range lines {
		name := line.CategoryName
		if name == "" {
			continue
		}
		if _, ok := categories[name]; ok {
			continue
		}
		category, err := s.categoryRepo.GetByName(ctx, name)
		if err != nil {
			return nil, err
		}
		categories[name] = category // may be nil if the category was deleted mid-cart
	}

	return func(name string) *entity.Category {
		return categories[name]
	}, nil
}
