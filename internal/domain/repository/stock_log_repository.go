package repository

import "github.com/vyapari/billing-api/internal/domain/entity"

// StockLogRepository persistence port for the append-only stock ledger.
// There is no update or delete: ledger rows are immutable once written.
type StockLogRepository interface {
	Create(log *entity.StockLog) error
	List(limit, offset int) ([]*entity.StockLog, error)
	ListByProduct(productID string, limit, offset int) ([]*entity.StockLog, error)
}
