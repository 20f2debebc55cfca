package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/vyapari/billing-api/internal/application/dto"
	"github.com/vyapari/billing-api/internal/domain"
	"github.com/vyapari/billing-api/internal/domain/entity"
	"github.com/vyapari/billing-api/internal/domain/repository"
)

// StockUseCase applies manual stock movements transactionally: row lock
// (SELECT FOR UPDATE), negative-stock rejection, then stock update plus
// ledger row in one commit.
type StockUseCase struct {
	txRunner TxRunner
	logRepo  repository.StockLogRepository
}

// NewStockUseCase builds the use case.
func NewStockUseCase(txRunner TxRunner, logRepo repository.StockLogRepository) *StockUseCase {
	return &StockUseCase{txRunner: txRunner, logRepo: logRepo}
}

// ApplyMovement validates and applies one IN/OUT movement. An OUT that would
// take stock below zero is rejected with ErrInsufficientStock before any
// ledger row is written.
func (uc *StockUseCase) ApplyMovement(ctx context.Context, userID string, in dto.StockMovementRequest) (*dto.StockLogResponse, error) {
	if in.ProductID == "" || in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.Type != entity.StockTypeIn && in.Type != entity.StockTypeOut {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidStockReason(in.Reason) {
		return nil, domain.ErrInvalidInput
	}

	var logged *entity.StockLog
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		logRepo repository.StockLogRepository,
	) error {
		product, err := productRepo.GetForUpdate(in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}

		var err2 error
		logged, err2 = ApplyStockChangeInTx(productRepo, logRepo, product, StockChange{
			Type:      in.Type,
			Reason:    in.Reason,
			Quantity:  in.Quantity,
			Reference: in.Reference,
			Notes:     in.Notes,
			UserID:    userID,
			Now:       time.Now(),
		})
		return err2
	})
	if err != nil {
		return nil, err
	}
	return toLogResponse(logged), nil
}

// StockChange one stock transition to apply with the product row already locked.
type StockChange struct {
	Type      string // IN, OUT
	Reason    string
	Quantity  int64 // positive
	Reference string
	Notes     string
	UserID    string
	Now       time.Time
}

// ApplyStockChangeInTx mutates product stock and writes the paired ledger row
// using the caller's transaction-bound repositories. The billing use case
// calls this per invoice line inside the invoice transaction, so an
// out-of-stock line rolls back the whole invoice.
func ApplyStockChangeInTx(
	productRepo repository.ProductRepository,
	logRepo repository.StockLogRepository,
	product *entity.Product,
	change StockChange,
) (*entity.StockLog, error) {
	if change.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}

	oldStock := product.Stock
	var newStock int64
	switch change.Type {
	case entity.StockTypeIn:
		newStock = oldStock + change.Quantity
	case entity.StockTypeOut:
		newStock = oldStock - change.Quantity
		if newStock < 0 {
			// Rejected before any write: a ledger row must never record a
			// negative resulting stock.
			return nil, domain.ErrInsufficientStock
		}
	default:
		return nil, domain.ErrInvalidInput
	}

	if err := productRepo.UpdateStock(product.ID, newStock); err != nil {
		return nil, err
	}
	log := &entity.StockLog{
		ID:          uuid.New().String(),
		ProductID:   product.ID,
		ProductName: product.Name,
		Type:        change.Type,
		Reason:      change.Reason,
		Quantity:    change.Quantity,
		OldStock:    oldStock,
		NewStock:    newStock,
		Reference:   change.Reference,
		Notes:       change.Notes,
		CreatedBy:   change.UserID,
		CreatedAt:   change.Now,
	}
	if err := logRepo.Create(log); err != nil {
		return nil, err
	}
	product.Stock = newStock
	return log, nil
}

// ListLogs returns ledger rows, optionally filtered by product.
func (uc *StockUseCase) ListLogs(productID string, limit, offset int) (*dto.StockLogListResponse, error) {
	var (
		logs []*entity.StockLog
		err  error
	)
	if productID != "" {
		logs, err = uc.logRepo.ListByProduct(productID, limit, offset)
	} else {
		logs, err = uc.logRepo.List(limit, offset)
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.StockLogResponse, 0, len(logs))
	for _, l := range logs {
		items = append(items, *toLogResponse(l))
	}
	return &dto.StockLogListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toLogResponse(l *entity.StockLog) *dto.StockLogResponse {
	if l == nil {
		return nil
	}
	return &dto.StockLogResponse{
		ID:          l.ID,
		ProductID:   l.ProductID,
		ProductName: l.ProductName,
		Type:        l.Type,
		Reason:      l.Reason,
		Quantity:    l.Quantity,
		OldStock:    l.OldStock,
		NewStock:    l.NewStock,
		Reference:   l.Reference,
		Notes:       l.Notes,
		CreatedBy:   l.CreatedBy,
		CreatedAt:   l.CreatedAt,
	}
}
