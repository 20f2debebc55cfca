package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// TopProductResult is one row of the top-selling-products query.
type TopProductResult struct {
	ProductID string
	Name      string
	Category  string
	UnitsSold int64
	Revenue   decimal.Decimal
}

// CategorySummaryResult aggregates the catalog per category.
type CategorySummaryResult struct {
	Category   string
	Products   int
	TotalStock int64
	StockValue decimal.Decimal // sum(stock * price)
	LowStock   int
}

// ReportRepository read-only aggregation queries for dashboards and exports.
type ReportRepository interface {
	// GetSalesTotals returns revenue (sum of grand totals), collected
	// (sum of paid amounts) and the invoice count for the period.
	GetSalesTotals(ctx context.Context, start, end time.Time) (revenue, collected decimal.Decimal, invoices int, err error)
	GetTopProducts(ctx context.Context, start, end time.Time, limit int) ([]TopProductResult, error)
	GetCategorySummary(ctx context.Context) ([]CategorySummaryResult, error)
	CountLowStock(ctx context.Context) (int, error)
}
