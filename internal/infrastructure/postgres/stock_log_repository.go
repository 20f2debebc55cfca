package postgres

import (
	"context"
	"fmt"

	"github.com/vyapari/billing-api/internal/domain/entity"
	"github.com/vyapari/billing-api/internal/domain/repository"
)

var _ repository.StockLogRepository = (*StockLogRepo)(nil)

const stockLogColumns = `id, product_id, product_name, type, reason, quantity,
	old_stock, new_stock, reference, notes, created_by, created_at`

// StockLogRepo implements StockLogRepository on PostgreSQL (usable with pool or tx).
// The table is append-only: no update or delete statements exist here.
type StockLogRepo struct {
	q Querier
}

// NewStockLogRepository builds the stock ledger adapter. Pass a pool or tx (Querier).
func NewStockLogRepository(q Querier) *StockLogRepo {
	return &StockLogRepo{q: q}
}

func (r *StockLogRepo) Create(log *entity.StockLog) error {
	query := `
		INSERT INTO stock_logs (id, product_id, product_name, type, reason, quantity,
			old_stock, new_stock, reference, notes, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		log.ID, log.ProductID, log.ProductName, log.Type, log.Reason, log.Quantity,
		log.OldStock, log.NewStock, log.Reference, log.Notes, log.CreatedBy, log.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert stock log: %w", err)
	}
	return nil
}

func (r *StockLogRepo) List(limit, offset int) ([]*entity.StockLog, error) {
	query := `SELECT ` + stockLogColumns + ` FROM stock_logs ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	return r.scanMany(query, limit, offset)
}

func (r *StockLogRepo) ListByProduct(productID string, limit, offset int) ([]*entity.StockLog, error) {
	query := `SELECT ` + stockLogColumns + ` FROM stock_logs
		WHERE product_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	return r.scanMany(query, productID, limit, offset)
}

func (r *StockLogRepo) scanMany(query string, args ...any) ([]*entity.StockLog, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock logs: %w", err)
	}
	defer rows.Close()

	var list []*entity.StockLog
	for rows.Next() {
		var l entity.StockLog
		if err := rows.Scan(
			&l.ID, &l.ProductID, &l.ProductName, &l.Type, &l.Reason, &l.Quantity,
			&l.OldStock, &l.NewStock, &l.Reference, &l.Notes, &l.CreatedBy, &l.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan stock log: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}
