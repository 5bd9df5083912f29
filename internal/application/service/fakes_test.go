package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/joseph2000k/pljscorner-pos-sub000/internal/domain/entity"
	"github.com/joseph2000k/pljscorner-pos-sub000/internal/domain/repository"
	"github.com/joseph2000k/pljscorner-pos-sub000/pkg/pagination"
)

// fakeProductRepo is an in-memory ProductRepository for service tests.
type fakeProductRepo struct {
	products   map[uuid.UUID]*entity.Product
	referenced bool // IsReferencedBySale result
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	r := &fakeProductRepo{products: make(map[uuid.UUID]*entity.Product)}
	for _, p := range products {
		r.products[p.ID] = p
	}
	return r
}

func (r *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Product, error) {
	return r.products[id], nil
}

func (r *fakeProductRepo) GetByIDs(_ context.Context, ids []uuid.UUID) ([]entity.Product, error) {
	var out []entity.Product
	for _, id := range ids {
		if p, ok := r.products[id]; ok {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) GetByCode(_ context.Context, code string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.Code == code {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) Update(_ context.Context, p *entity.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.products, id)
	return nil
}

func (r *fakeProductRepo) List(_ context.Context, _ *repository.ProductFilterParams) ([]entity.Product, int64, error) {
	var out []entity.Product
	for _, p := range r.products {
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (r *fakeProductRepo) GetLowStock(_ context.Context) ([]entity.Product, error) {
	var out []entity.Product
	for _, p := range r.products {
		if p.StockQuantity <= p.StockAlert {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) AdjustStock(_ context.Context, id uuid.UUID, delta int) (bool, error) {
	p, ok := r.products[id]
	if !ok || p.StockQuantity+delta < 0 {
		return false, nil
	}
	p.StockQuantity += delta
	return true, nil
}

func (r *fakeProductRepo) IsReferencedBySale(_ context.Context, _ uuid.UUID) (bool, error) {
	return r.referenced, nil
}

// fakeCategoryRepo is an in-memory CategoryRepository for service tests.
type fakeCategoryRepo struct {
	categories map[string]*entity.Category
}

func newFakeCategoryRepo(categories ...*entity.Category) *fakeCategoryRepo {
	r := &fakeCategoryRepo{categories: make(map[string]*entity.Category)}
	for _, c := range categories {
		r.categories[c.Name] = c
	}
	return r
}

func (r *fakeCategoryRepo) Create(_ context.Context, c *entity.Category) error {
	r.categories[c.Name] = c
	return nil
}

func (r *fakeCategoryRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Category, error) {
	for _, c := range r.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeCategoryRepo) GetByName(_ context.Context, name string) (*entity.Category, error) {
	return r.categories[name], nil
}

func (r *fakeCategoryRepo) Update(_ context.Context, c *entity.Category) error {
	r.categories[c.Name] = c
	return nil
}

func (r *fakeCategoryRepo) Delete(_ context.Context, id uuid.UUID) error {
	for name, c := range r.categories {
		if c.ID == id {
			delete(r.categories, name)
			return nil
		}
	}
	return nil
}

func (r *fakeCategoryRepo) List(_ context.Context, _ *pagination.PaginationParams, _ string) ([]entity.Category, int64, error) {
	var out []entity.Category
	for _, c := range r.categories {
		out = append(out, *c)
	}
	return out, int64(len(out)), nil
}

// fakeSaleRepo records committed sales in memory. Setting failErr makes
// CreateWithItems fail without side effects, like a rolled back transaction.
type fakeSaleRepo struct {
	failErr error
	sales   []*entity.Sale
	items   [][]entity.SaleItem
	disc    [][]entity.SaleDiscount
}

func (r *fakeSaleRepo) CreateWithItems(_ context.Context, sale *entity.Sale, items []entity.SaleItem, discounts []entity.SaleDiscount) error {
	if r.failErr != nil {
		return r.failErr
	}
	sale.ID = uuid.New()
	r.sales = append(r.sales, sale)
	r.items = append(r.items, items)
	r.disc = append(r.disc, discounts)
	return nil
}

func (r *fakeSaleRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Sale, error) {
	for _, s := range r.sales {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, nil
}

func (r *fakeSaleRepo) GetWithDetails(_ context.Context, id uuid.UUID) (*entity.Sale, error) {
	for i, s := range r.sales {
		if s.ID == id {
			detail := *s
			detail.Items = r.items[i]
			detail.Discounts = r.disc[i]
			return &detail, nil
		}
	}
	return nil, nil
}

func (r *fakeSaleRepo) List(_ context.Context, _ *repository.SaleFilterParams) ([]entity.Sale, int64, error) {
	var out []entity.Sale
	for _, s := range r.sales {
		out = append(out, *s)
	}
	return out, int64(len(out)), nil
}
