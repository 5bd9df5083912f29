package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/joseph2000k/pljscorner-pos-sub000/internal/domain/entity"
	"github.com/joseph2000k/pljscorner-pos-sub000/internal/domain/repository"
	"github.com/joseph2000k/pljscorner-pos-sub000/pkg/apperror"
	"github.com/joseph2000k/pljscorner-pos-sub000/pkg/pagination"
)

// SaleService handles read access to committed sales and their receipts
type SaleService struct {
	saleRepo repository.SaleRepository
	header   entity.ReceiptHeader
}

// NewSaleService creates a new sale service
func NewSaleService(saleRepo repository.SaleRepository, header entity.ReceiptHeader) *SaleService {
	return &SaleService{saleRepo: saleRepo, header: header}
}

// GetSale retrieves a sale with its items and discount rows
func (s *SaleService) GetSale(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	sale, err := s.saleRepo.GetWithDetails(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, apperror.NewNotFoundError("Sale")
	}
	return sale, nil
}

// GetReceipt re-renders the historical receipt for a sale strictly from
// persisted rows; current catalog prices and rules are never consulted.
func (s *SaleService) GetReceipt(ctx context.Context, id uuid.UUID) (*entity.Receipt, error) {
	sale, err := s.GetSale(ctx, id)
	if err != nil {
		return nil, err
	}
	return ComposeReceipt(sale, sale.Items, BreakdownFromSale(sale.Discounts), s.header), nil
}

// ListSales lists sales with filtering
func (s *SaleService) ListSales(ctx context.Context, params *repository.SaleFilterParams) (*pagination.PaginatedResult[entity.Sale], error) {
	sales, total, err := s.saleRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(sales, pag), nil
}
