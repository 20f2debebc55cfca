package inventory_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vyapari/billing-api/internal/application/dto"
	"github.com/vyapari/billing-api/internal/application/inventory"
	"github.com/vyapari/billing-api/internal/domain"
	"github.com/vyapari/billing-api/internal/domain/entity"
	"github.com/vyapari/billing-api/internal/domain/repository"
)

type memProductRepo struct {
	products map[string]*entity.Product
}

func (r *memProductRepo) Create(p *entity.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *memProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.products[id], nil
}

func (r *memProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.products[id], nil
}

func (r *memProductRepo) List(limit, offset int) ([]*entity.Product, error) { return nil, nil }
func (r *memProductRepo) ListLowStock() ([]*entity.Product, error)          { return nil, nil }
func (r *memProductRepo) ListAll() ([]*entity.Product, error)               { return nil, nil }
func (r *memProductRepo) Update(p *entity.Product) error                    { return nil }

func (r *memProductRepo) UpdateStock(productID string, newStock int64) error {
	p, ok := r.products[productID]
	if !ok {
		return domain.ErrNotFound
	}
	p.Stock = newStock
	return nil
}

func (r *memProductRepo) Delete(id string) error {
	delete(r.products, id)
	return nil
}

type memLogRepo struct {
	logs []*entity.StockLog
}

func (r *memLogRepo) Create(l *entity.StockLog) error {
	r.logs = append(r.logs, l)
	return nil
}

func (r *memLogRepo) List(limit, offset int) ([]*entity.StockLog, error) {
	return r.logs, nil
}

func (r *memLogRepo) ListByProduct(productID string, limit, offset int) ([]*entity.StockLog, error) {
	var out []*entity.StockLog
	for _, l := range r.logs {
		if l.ProductID == productID {
			out = append(out, l)
		}
	}
	return out, nil
}

type memTxRunner struct {
	productRepo *memProductRepo
	logRepo     *memLogRepo
}

func (r *memTxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	logRepo repository.StockLogRepository,
) error) error {
	return fn(r.productRepo, r.logRepo)
}

func newStockFixture(stock int64) (*inventory.StockUseCase, *memProductRepo, *memLogRepo) {
	productRepo := &memProductRepo{products: map[string]*entity.Product{
		"p1": {
			ID:     "p1",
			Name:   "Samsung Galaxy M14",
			Price:  decimal.NewFromInt(13499),
			Stock:  stock,
			Status: entity.ProductStatusActive,
		},
	}}
	logRepo := &memLogRepo{}
	runner := &memTxRunner{productRepo: productRepo, logRepo: logRepo}
	return inventory.NewStockUseCase(runner, logRepo), productRepo, logRepo
}

func TestApplyMovement_In(t *testing.T) {
	uc, productRepo, logRepo := newStockFixture(10)

	resp, err := uc.ApplyMovement(context.Background(), "u1", dto.StockMovementRequest{
		ProductID: "p1",
		Type:      entity.StockTypeIn,
		Reason:    entity.StockReasonPurchase,
		Quantity:  5,
		Reference: "PO-42",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(10), resp.OldStock)
	assert.Equal(t, int64(15), resp.NewStock)
	assert.Equal(t, int64(15), productRepo.products["p1"].Stock)
	require.Len(t, logRepo.logs, 1)
	assert.Equal(t, "PO-42", logRepo.logs[0].Reference)
	assert.Equal(t, "u1", logRepo.logs[0].CreatedBy)
}

func TestApplyMovement_OutToZero(t *testing.T) {
	uc, productRepo, _ := newStockFixture(5)

	resp, err := uc.ApplyMovement(context.Background(), "u1", dto.StockMovementRequest{
		ProductID: "p1",
		Type:      entity.StockTypeOut,
		Reason:    entity.StockReasonDamage,
		Quantity:  5,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), resp.NewStock)
	assert.Equal(t, int64(0), productRepo.products["p1"].Stock)
}

func TestApplyMovement_InsufficientStock(t *testing.T) {
	uc, productRepo, logRepo := newStockFixture(3)

	_, err := uc.ApplyMovement(context.Background(), "u1", dto.StockMovementRequest{
		ProductID: "p1",
		Type:      entity.StockTypeOut,
		Reason:    entity.StockReasonAdjustment,
		Quantity:  5,
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	// Rejection happens before any write
	assert.Equal(t, int64(3), productRepo.products["p1"].Stock)
	assert.Empty(t, logRepo.logs)
}

func TestApplyMovement_UnknownProduct(t *testing.T) {
	uc, _, _ := newStockFixture(3)

	_, err := uc.ApplyMovement(context.Background(), "u1", dto.StockMovementRequest{
		ProductID: "missing",
		Type:      entity.StockTypeIn,
		Reason:    entity.StockReasonPurchase,
		Quantity:  1,
	})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestApplyMovement_Validation(t *testing.T) {
	uc, _, _ := newStockFixture(3)

	cases := []dto.StockMovementRequest{
		{ProductID: "", Type: entity.StockTypeIn, Reason: entity.StockReasonPurchase, Quantity: 1},
		{ProductID: "p1", Type: "TRANSFER", Reason: entity.StockReasonPurchase, Quantity: 1},
		{ProductID: "p1", Type: entity.StockTypeIn, Reason: "Shrinkage", Quantity: 1},
		{ProductID: "p1", Type: entity.StockTypeIn, Reason: entity.StockReasonPurchase, Quantity: 0},
	}
	for _, in := range cases {
		_, err := uc.ApplyMovement(context.Background(), "u1", in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}
