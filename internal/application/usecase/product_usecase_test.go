package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vyapari/billing-api/internal/application/dto"
	"github.com/vyapari/billing-api/internal/application/usecase"
	"github.com/vyapari/billing-api/internal/domain"
	"github.com/vyapari/billing-api/internal/domain/entity"
)

type memProductRepo struct {
	products map[string]*entity.Product
}

func (r *memProductRepo) Create(p *entity.Product) error                  { r.products[p.ID] = p; return nil }
func (r *memProductRepo) GetByID(id string) (*entity.Product, error)      { return r.products[id], nil }
func (r *memProductRepo) GetForUpdate(id string) (*entity.Product, error) { return r.products[id], nil }
func (r *memProductRepo) Update(p *entity.Product) error                  { r.products[p.ID] = p; return nil }
func (r *memProductRepo) UpdateStock(id string, newStock int64) error {
	r.products[id].Stock = newStock
	return nil
}
func (r *memProductRepo) Delete(id string) error { delete(r.products, id); return nil }

func (r *memProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		out = append(out, p)
	}
	return out, nil
}

func (r *memProductRepo) ListLowStock() ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		if p.Status == entity.ProductStatusActive && p.Stock <= p.MinStock {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *memProductRepo) ListAll() ([]*entity.Product, error) { return r.List(0, 0) }

func newProductFixture() (*usecase.ProductUseCase, *memProductRepo) {
	repo := &memProductRepo{products: map[string]*entity.Product{}}
	return usecase.NewProductUseCase(repo, "Main"), repo
}

func TestProductCreate_RoundTrip(t *testing.T) {
	uc, _ := newProductFixture()

	created, err := uc.Create("u1", dto.CreateProductRequest{
		Name:     "LG 1.5T Split AC",
		Brand:    "LG",
		Category: "Appliances",
		Price:    decimal.NewFromInt(38999),
		Stock:    4,
		MinStock: 1,
		GSTRate:  decimal.NewFromInt(28),
		HSNCode:  "8415",
		Warranty: "1 year",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ProductStatusActive, created.Status)
	assert.Equal(t, "pcs", created.Unit, "unit defaults when empty")
	assert.Equal(t, "Main", created.Branch, "branch defaults when empty")

	got, err := uc.GetByID(created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, created.Name, got.Name)
	assert.True(t, created.Price.Equal(got.Price))
	assert.Equal(t, created.Stock, got.Stock)
	assert.Equal(t, created.HSNCode, got.HSNCode)
	assert.Equal(t, "u1", got.CreatedBy)
}

func TestProductCreate_NegativePrice(t *testing.T) {
	uc, _ := newProductFixture()

	_, err := uc.Create("u1", dto.CreateProductRequest{
		Name:     "Broken",
		Category: "Misc",
		Price:    decimal.NewFromInt(-1),
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductUpdate_StockUntouched(t *testing.T) {
	uc, repo := newProductFixture()

	created, err := uc.Create("u1", dto.CreateProductRequest{
		Name:     "Prestige Mixer",
		Category: "Kitchen",
		Price:    decimal.NewFromInt(3200),
		Stock:    10,
	})
	require.NoError(t, err)

	newName := "Prestige Mixer Grinder 750W"
	newPrice := decimal.NewFromInt(3499)
	updated, err := uc.Update(created.ID, dto.UpdateProductRequest{
		Name:  &newName,
		Price: &newPrice,
	})
	require.NoError(t, err)
	assert.Equal(t, newName, updated.Name)
	assert.True(t, newPrice.Equal(updated.Price))
	assert.Equal(t, int64(10), repo.products[created.ID].Stock)
}

func TestProductUpdate_Absent(t *testing.T) {
	uc, _ := newProductFixture()

	name := "x"
	got, err := uc.Update("missing", dto.UpdateProductRequest{Name: &name})
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestProductListLowStock(t *testing.T) {
	uc, repo := newProductFixture()

	a, _ := uc.Create("u1", dto.CreateProductRequest{Name: "A", Category: "c", Price: decimal.NewFromInt(10), Stock: 0, MinStock: 2})
	_, _ = uc.Create("u1", dto.CreateProductRequest{Name: "B", Category: "c", Price: decimal.NewFromInt(10), Stock: 50, MinStock: 2})
	repo.products[a.ID].Stock = 1

	low, err := uc.ListLowStock()
	require.NoError(t, err)
	require.Len(t, low, 1)
	assert.Equal(t, "A", low[0].Name)
}

func TestProductDelete_Absent(t *testing.T) {
	uc, _ := newProductFixture()
	require.ErrorIs(t, uc.Delete("missing"), domain.ErrNotFound)
}
