package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vyapari/billing-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo implements the read-only aggregation queries behind the
// dashboard and the stock report. Always pool-backed; never used in a tx.
type ReportRepo struct {
	q Querier
}

func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

func (r *ReportRepo) GetSalesTotals(ctx context.Context, start, end time.Time) (revenue, collected decimal.Decimal, invoices int, err error) {
	query := `
		SELECT COALESCE(SUM(grand_total), 0), COALESCE(SUM(paid_amount), 0), COUNT(*)
		FROM invoices WHERE date >= $1 AND date <= $2`
	err = r.q.QueryRow(ctx, query, start, end).Scan(&revenue, &collected, &invoices)
	if err != nil {
		return decimal.Zero, decimal.Zero, 0, fmt.Errorf("sales totals: %w", err)
	}
	return revenue, collected, invoices, nil
}

func (r *ReportRepo) GetTopProducts(ctx context.Context, start, end time.Time, limit int) ([]repository.TopProductResult, error) {
	query := `
		SELECT ii.product_id, ii.product_name, COALESCE(p.category, ''),
			SUM(ii.quantity) AS units, SUM(ii.amount) AS revenue
		FROM invoice_items ii
		JOIN invoices i ON i.id = ii.invoice_id
		LEFT JOIN products p ON p.id = ii.product_id
		WHERE i.date >= $1 AND i.date <= $2
		GROUP BY ii.product_id, ii.product_name, p.category
		ORDER BY revenue DESC
		LIMIT $3`
	rows, err := r.q.Query(ctx, query, start, end, limit)
	if err != nil {
		return nil, fmt.Errorf("top products: %w", err)
	}
	defer rows.Close()

	var results []repository.TopProductResult
	for rows.Next() {
		var t repository.TopProductResult
		if err := rows.Scan(&t.ProductID, &t.Name, &t.Category, &t.UnitsSold, &t.Revenue); err != nil {
			return nil, fmt.Errorf("scan top product: %w", err)
		}
		results = append(results, t)
	}
	return results, rows.Err()
}

func (r *ReportRepo) GetCategorySummary(ctx context.Context) ([]repository.CategorySummaryResult, error) {
	query := `
		SELECT COALESCE(category, ''), COUNT(*), COALESCE(SUM(stock), 0),
			COALESCE(SUM(stock * price), 0),
			COUNT(*) FILTER (WHERE status = 'active' AND stock <= min_stock)
		FROM products
		GROUP BY category
		ORDER BY category`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("category summary: %w", err)
	}
	defer rows.Close()

	var results []repository.CategorySummaryResult
	for rows.Next() {
		var c repository.CategorySummaryResult
		if err := rows.Scan(&c.Category, &c.Products, &c.TotalStock, &c.StockValue, &c.LowStock); err != nil {
			return nil, fmt.Errorf("scan category summary: %w", err)
		}
		results = append(results, c)
	}
	return results, rows.Err()
}

func (r *ReportRepo) CountLowStock(ctx context.Context) (int, error) {
	var n int
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM products WHERE status = 'active' AND stock <= min_stock`,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count low stock: %w", err)
	}
	return n, nil
}
