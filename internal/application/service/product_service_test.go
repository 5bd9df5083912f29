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

func TestProductService_CreateProduct(t *testing.T) {
	repo := newFakeProductRepo()
	svc := NewProductService(repo, newFakeCategoryRepo())

	product, err := svc.CreateProduct(context.Background(), &CreateProductInput{
		Name:          "Cola",
		Code:          " C-001 ",
		UnitPrice:     20,
		StockQuantity: 10,
	})

	require.NoError(t, err)
	assert.Equal(t, "C-001", product.Code) // trimmed
	assert.InDelta(t, 20.0, product.UnitPrice, 1e-6)
}

func TestProductService_CreateProductValidation(t *testing.T) {
	svc := NewProductService(newFakeProductRepo(), newFakeCategoryRepo())
	ctx := context.Background()

	tests := []struct {
		name  string
		input *CreateProductInput
		code  int
	}{
		{"missing code", &CreateProductInput{Name: "Cola"}, 400},
		{"negative price", &CreateProductInput{Name: "Cola", Code: "C-001", UnitPrice: -1}, 400},
		{"negative stock", &CreateProductInput{Name: "Cola", Code: "C-001", StockQuantity: -1}, 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateProduct(ctx, tt.input)
			require.Error(t, err)
			assert.Equal(t, tt.code, apperror.GetAppError(err).Code)
		})
	}
}

func TestProductService_CreateProductDuplicateCode(t *testing.T) {
	existing := testProduct("Cola", "C-001", "", 20, 10)
	svc := NewProductService(newFakeProductRepo(existing), newFakeCategoryRepo())

	_, err := svc.CreateProduct(context.Background(), &CreateProductInput{
		Name: "Other Cola",
		Code: "C-001",
	})

	require.Error(t, err)
	assert.Equal(t, 409, apperror.GetAppError(err).Code)
}

func TestProductService_CreateProductUnknownCategory(t *testing.T) {
	svc := NewProductService(newFakeProductRepo(), newFakeCategoryRepo())
	bogus := uuid.New()

	_, err := svc.CreateProduct(context.Background(), &CreateProductInput{
		Name:       "Cola",
		Code:       "C-001",
		CategoryID: &bogus,
	})

	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestProductService_UpdateProduct(t *testing.T) {
	cola := testProduct("Cola", "C-001", "", 20, 10)
	svc := NewProductService(newFakeProductRepo(cola), newFakeCategoryRepo())

	newName := "Cola 1.5L"
	newPrice := 35.0
	product, err := svc.UpdateProduct(context.Background(), &UpdateProductInput{
		ID:        cola.ID,
		Name:      &newName,
		UnitPrice: &newPrice,
	})

	require.NoError(t, err)
	assert.Equal(t, "Cola 1.5L", product.Name)
	assert.InDelta(t, 35.0, product.UnitPrice, 1e-6)
	assert.Equal(t, "C-001", product.Code) // untouched
}

func TestProductService_UpdateProductCodeConflict(t *testing.T) {
	cola := testProduct("Cola", "C-001", "", 20, 10)
	chips := testProduct("Chips", "C-002", "", 15, 10)
	svc := NewProductService(newFakeProductRepo(cola, chips), newFakeCategoryRepo())

	taken := "C-002"
	_, err := svc.UpdateProduct(context.Background(), &UpdateProductInput{
		ID:   cola.ID,
		Code: &taken,
	})

	require.Error(t, err)
	assert.Equal(t, 409, apperror.GetAppError(err).Code)
}

func TestProductService_Restock(t *testing.T) {
	cola := testProduct("Cola", "C-001", "", 20, 10)
	svc := NewProductService(newFakeProductRepo(cola), newFakeCategoryRepo())
	ctx := context.Background()

	product, err := svc.Restock(ctx, cola.ID, 15)
	require.NoError(t, err)
	assert.Equal(t, 25, product.StockQuantity)

	_, err = svc.Restock(ctx, cola.ID, 0)
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestProductService_DeleteProduct(t *testing.T) {
	cola := testProduct("Cola", "C-001", "", 20, 10)
	repo := newFakeProductRepo(cola)
	svc := NewProductService(repo, newFakeCategoryRepo())

	require.NoError(t, svc.DeleteProduct(context.Background(), cola.ID))

	_, err := svc.GetProduct(context.Background(), cola.ID)
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestProductService_DeleteProductReferencedBySale(t *testing.T) {
	cola := testProduct("Cola", "C-001", "", 20, 10)
	repo := newFakeProductRepo(cola)
	repo.referenced = true
	svc := NewProductService(repo, newFakeCategoryRepo())

	err := svc.DeleteProduct(context.Background(), cola.ID)

	assert.ErrorIs(t, err, apperror.ErrProductInUse)
}

func TestCategoryService_CreateCategory(t *testing.T) {
	svc := NewCategoryService(newFakeCategoryRepo())

	category, err := svc.CreateCategory(context.Background(), &CreateCategoryInput{
		Name:             "Beverages",
		DiscountQuantity: 6,
		DiscountPrice:    100,
	})

	require.NoError(t, err)
	assert.True(t, category.RuleActive())
}

func TestCategoryService_CreateCategoryValidation(t *testing.T) {
	svc := NewCategoryService(newFakeCategoryRepo())
	ctx := context.Background()

	_, err := svc.CreateCategory(ctx, &CreateCategoryInput{Name: "  "})
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)

	_, err = svc.CreateCategory(ctx, &CreateCategoryInput{
		Name:             "Beverages",
		DiscountQuantity: -1,
		DiscountPrice:    -5,
	})
	require.Error(t, err)
	appErr := apperror.GetAppError(err)
	assert.Equal(t, 422, appErr.Code)
	assert.Len(t, appErr.Errors, 2)
}

func TestCategoryService_CreateCategoryDuplicateName(t *testing.T) {
	existing := &entity.Category{ID: uuid.New(), Name: "Beverages"}
	svc := NewCategoryService(newFakeCategoryRepo(existing))

	_, err := svc.CreateCategory(context.Background(), &CreateCategoryInput{Name: "Beverages"})

	require.Error(t, err)
	assert.Equal(t, 409, apperror.GetAppError(err).Code)
}

func TestCategoryService_UpdateCategoryRule(t *testing.T) {
	beverages := &entity.Category{ID: uuid.New(), Name: "Beverages", DiscountQuantity: 6, DiscountPrice: 100}
	svc := NewCategoryService(newFakeCategoryRepo(beverages))

	// Zero disables the rule without deleting the category
	zero := 0
	category, err := svc.UpdateCategory(context.Background(), &UpdateCategoryInput{
		ID:               beverages.ID,
		DiscountQuantity: &zero,
	})

	require.NoError(t, err)
	assert.False(t, category.RuleActive())

	// Negative values rejected
	negative := -3
	_, err = svc.UpdateCategory(context.Background(), &UpdateCategoryInput{
		ID:               beverages.ID,
		DiscountQuantity: &negative,
	})
	require.Error(t, err)
	assert.Equal(t, 422, apperror.GetAppError(err).Code)
}
