package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/joseph2000k/pljscorner-pos-sub000/internal/domain/entity"
	"github.com/joseph2000k/pljscorner-pos-sub000/pkg/pagination"
)

// SaleRepository defines the interface for committed sale data operations
type SaleRepository interface {
	// CreateWithItems commits a sale as a single transactional unit: the
	// sale row, every sale item, every discount row, and a conditional
	// stock decrement for each item's product. If any step fails,
	// including a product whose live stock has dropped below the requested
	// quantity, the whole transaction is rolled back and no row or stock
	// level changes.
	CreateWithItems(ctx context.Context, sale *entity.Sale, items []entity.SaleItem, discounts []entity.SaleDiscount) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error)
	// GetWithDetails retrieves a sale with its items (and their products)
	// and persisted discount breakdown preloaded.
	GetWithDetails(ctx context.Context, id uuid.UUID) (*entity.Sale, error)
	List(ctx context.Context, params *SaleFilterParams) ([]entity.Sale, int64, error)
}

// SaleFilterParams contains filtering parameters for sale queries
type SaleFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	StartDate  *time.Time
	EndDate    *time.Time
	SortBy     string
	SortOrder  string
}
