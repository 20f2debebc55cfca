// Package reports aggregates sales and stock data for the dashboard and the
// Excel stock report.
package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vyapari/billing-api/internal/application/dto"
	"github.com/vyapari/billing-api/internal/domain/entity"
	"github.com/vyapari/billing-api/internal/domain/repository"
)

const (
	topProductsLimit = 5
	movementRows     = 500 // most recent ledger rows included in the export
)

// StockReportData is everything the Excel renderer needs for one report.
type StockReportData struct {
	GeneratedAt     time.Time
	Products        []*entity.Product
	Movements       []*entity.StockLog
	Categories      []repository.CategorySummaryResult
	TotalStockValue decimal.Decimal
	LowStockCount   int
}

// StockReportGenerator renders the multi-sheet stock workbook.
type StockReportGenerator interface {
	GenerateStockReport(ctx context.Context, data StockReportData) ([]byte, error)
}

// ReportUseCase builds the dashboard summary and the stock report export.
type ReportUseCase struct {
	reportRepo  repository.ReportRepository
	productRepo repository.ProductRepository
	logRepo     repository.StockLogRepository
	generator   StockReportGenerator
}

func NewReportUseCase(
	reportRepo repository.ReportRepository,
	productRepo repository.ProductRepository,
	logRepo repository.StockLogRepository,
	generator StockReportGenerator,
) *ReportUseCase {
	return &ReportUseCase{
		reportRepo:  reportRepo,
		productRepo: productRepo,
		logRepo:     logRepo,
		generator:   generator,
	}
}

// GetDashboard returns today's and the current month's sales totals, the
// low-stock count and the top products. The four queries are independent, so
// they run in parallel.
func (uc *ReportUseCase) GetDashboard(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	now := time.Now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	type totalsResult struct {
		revenue   decimal.Decimal
		collected decimal.Decimal
		invoices  int
		err       error
	}
	type countResult struct {
		n   int
		err error
	}
	type topResult struct {
		rows []repository.TopProductResult
		err  error
	}

	todayCh := make(chan totalsResult, 1)
	monthCh := make(chan totalsResult, 1)
	lowCh := make(chan countResult, 1)
	topCh := make(chan topResult, 1)

	go func() {
		revenue, collected, invoices, err := uc.reportRepo.GetSalesTotals(ctx, todayStart, now)
		todayCh <- totalsResult{revenue, collected, invoices, err}
	}()
	go func() {
		revenue, collected, invoices, err := uc.reportRepo.GetSalesTotals(ctx, monthStart, now)
		monthCh <- totalsResult{revenue, collected, invoices, err}
	}()
	go func() {
		n, err := uc.reportRepo.CountLowStock(ctx)
		lowCh <- countResult{n, err}
	}()
	go func() {
		rows, err := uc.reportRepo.GetTopProducts(ctx, monthStart, now, topProductsLimit)
		topCh <- topResult{rows, err}
	}()

	today := <-todayCh
	month := <-monthCh
	low := <-lowCh
	top := <-topCh

	if today.err != nil {
		return nil, fmt.Errorf("dashboard: today totals: %w", today.err)
	}
	if month.err != nil {
		return nil, fmt.Errorf("dashboard: month totals: %w", month.err)
	}
	if low.err != nil {
		return nil, fmt.Errorf("dashboard: low stock: %w", low.err)
	}
	if top.err != nil {
		return nil, fmt.Errorf("dashboard: top products: %w", top.err)
	}

	topProducts := make([]dto.TopProductDTO, 0, len(top.rows))
	for _, r := range top.rows {
		topProducts = append(topProducts, dto.TopProductDTO{
			ProductID: r.ProductID,
			Name:      r.Name,
			Category:  r.Category,
			UnitsSold: r.UnitsSold,
			Revenue:   r.Revenue.Round(2),
		})
	}

	return &dto.DashboardSummaryDTO{
		TodaySales:       today.revenue.Round(2),
		TodayCollected:   today.collected.Round(2),
		TodayInvoices:    today.invoices,
		MonthlySales:     month.revenue.Round(2),
		MonthlyCollected: month.collected.Round(2),
		MonthlyInvoices:  month.invoices,
		LowStockCount:    low.n,
		TopProducts:      topProducts,
		DateLabel:        now.Format("2006-01-02"),
	}, nil
}

// ExportStockExcel gathers the full catalog, the recent ledger and the
// category aggregates and renders the workbook. Returns the file bytes and the
// download filename.
func (uc *ReportUseCase) ExportStockExcel(ctx context.Context) (fileBytes []byte, filename string, err error) {
	products, err := uc.productRepo.ListAll()
	if err != nil {
		return nil, "", fmt.Errorf("stock report: products: %w", err)
	}
	movements, err := uc.logRepo.List(movementRows, 0)
	if err != nil {
		return nil, "", fmt.Errorf("stock report: movements: %w", err)
	}
	categories, err := uc.reportRepo.GetCategorySummary(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("stock report: categories: %w", err)
	}
	lowStock, err := uc.reportRepo.CountLowStock(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("stock report: low stock: %w", err)
	}

	var stockValue decimal.Decimal
	for _, p := range products {
		stockValue = stockValue.Add(p.Price.Mul(decimal.NewFromInt(p.Stock)))
	}

	now := time.Now()
	fileBytes, err = uc.generator.GenerateStockReport(ctx, StockReportData{
		GeneratedAt:     now,
		Products:        products,
		Movements:       movements,
		Categories:      categories,
		TotalStockValue: stockValue,
		LowStockCount:   lowStock,
	})
	if err != nil {
		return nil, "", fmt.Errorf("stock report: render: %w", err)
	}

	filename = fmt.Sprintf("Stock_Report_%s.xlsx", now.Format("2006-01-02"))
	return fileBytes, filename, nil
}
