package dto

import "github.com/shopspring/decimal"

// TopProductDTO one row of the top-selling-products widget.
type TopProductDTO struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	UnitsSold int64           `json:"units_sold"`
	Revenue   decimal.Decimal `json:"revenue"`
}

// DashboardSummaryDTO today/month sales plus stock alerts for the dashboard.
type DashboardSummaryDTO struct {
	TodaySales       decimal.Decimal `json:"today_sales"`
	TodayCollected   decimal.Decimal `json:"today_collected"`
	TodayInvoices    int             `json:"today_invoices"`
	MonthlySales     decimal.Decimal `json:"monthly_sales"`
	MonthlyCollected decimal.Decimal `json:"monthly_collected"`
	MonthlyInvoices  int             `json:"monthly_invoices"`
	LowStockCount    int             `json:"low_stock_count"`
	TopProducts      []TopProductDTO `json:"top_products"`
	DateLabel        string          `json:"date_label"`
}
