package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/joseph2000k/pljscorner-pos-sub000/internal/domain/entity"
	"github.com/joseph2000k/pljscorner-pos-sub000/internal/domain/repository"
	"github.com/joseph2000k/pljscorner-pos-sub000/pkg/apperror"
	"github.com/joseph2000k/pljscorner-pos-sub000/pkg/pagination"
)

// CategoryService handles category operations, including the bulk discount
// rule attached to each category.
type CategoryService struct {
	categoryRepo repository.CategoryRepository
}

// NewCategoryService creates a new category service
func NewCategoryService(categoryRepo repository.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

// CreateCategoryInput represents the create category input
type CreateCategoryInput struct {
	Name             string
	Description      string
	DiscountQuantity int
	DiscountPrice    float64
}

// CreateCategory creates a new category
func (s *CategoryService) CreateCategory(ctx context.Context, input *CreateCategoryInput) (*entity.Category, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apperror.NewBadRequestError("Category name is required")
	}
	if err := validateDiscountRule(input.DiscountQuantity, input.DiscountPrice); err != nil {
		return nil, err
	}

	existing, err := s.categoryRepo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Category with this name already exists")
	}

	category := &entity.Category{
		Name:             name,
		Description:      input.Description,
		DiscountQuantity: input.DiscountQuantity,
		DiscountPrice:    input.DiscountPrice,
	}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

// GetCategory retrieves a category by ID
func (s *CategoryService) GetCategory(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, apperror.NewNotFoundError("Category")
	}
	return category, nil
}

// ListCategories lists categories with optional name search
func (s *CategoryService) ListCategories(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Category], error) {
	categories, total, err := s.categoryRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(categories, pag), nil
}

// UpdateCategoryInput represents the update category input
type UpdateCategoryInput struct {
	ID               uuid.UUID
	Name             *string
	Description      *string
	DiscountQuantity *int
	DiscountPrice    *float64
}

// UpdateCategory updates a category. Rule changes take effect on the next
// cart totals computation; committed sales keep their persisted breakdown.
func (s *CategoryService) UpdateCategory(ctx context.Context, input *UpdateCategoryInput) (*entity.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, apperror.NewNotFoundError("Category")
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, apperror.NewBadRequestError("Category name cannot be empty")
		}
		if name != category.Name {
			existing, err := s.categoryRepo.GetByName(ctx, name)
			if err != nil {
				return nil, err
			}
			if existing != nil && existing.ID != category.ID {
				return nil, apperror.NewConflictError("Category with this name already exists")
			}
			category.Name = name
		}
	}
	if input.Description != nil {
		category.Description = *input.Description
	}

	quantity := category.DiscountQuantity
	price := category.DiscountPrice
	if input.DiscountQuantity != nil {
		quantity = *input.DiscountQuantity
	}
	if input.DiscountPrice != nil {
		price = *input.DiscountPrice
	}
	if err := validateDiscountRule(quantity, price); err != nil {
		return nil, err
	}
	category.DiscountQuantity = quantity
	category.DiscountPrice = price

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

// DeleteCategory deletes a category. Products keep their category reference
// history through sale item snapshots; live products fall back to
// uncategorized.
func (s *CategoryService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if category == nil {
		return apperror.NewNotFoundError("Category")
	}

	return s.categoryRepo.Delete(ctx, id)
}

// validateDiscountRule rejects negative rule values. Zero disables the
// rule; it is active only when both values are strictly positive.
func validateDiscountRule(quantity int, price float64) error {
	var fieldErrors []apperror.FieldError
	if quantity < 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field:   "discount_quantity",
			Message: "must be zero or a positive integer",
		})
	}
	if price < 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field:   "discount_price",
			Message: "must be zero or a positive amount",
		})
	}
	if len(fieldErrors) > 0 {
		return apperror.NewValidationError(fieldErrors)
	}
	return nil
}
