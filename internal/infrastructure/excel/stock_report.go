// Package excel renders the stock report workbook with excelize.
package excel

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/vyapari/billing-api/internal/application/reports"
)

const (
	sheetSummary   = "Summary"
	sheetStock     = "Stock Details"
	sheetMovements = "Stock Movements"
	sheetCategory  = "Category Analysis"
)

// StockReportGenerator implements reports.StockReportGenerator.
type StockReportGenerator struct{}

func NewStockReportGenerator() *StockReportGenerator { return &StockReportGenerator{} }

// GenerateStockReport builds the four-sheet workbook and returns the xlsx bytes.
func (g *StockReportGenerator) GenerateStockReport(_ context.Context, data reports.StockReportData) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	// The default sheet becomes Summary; the rest are appended.
	if err := f.SetSheetName("Sheet1", sheetSummary); err != nil {
		return nil, fmt.Errorf("excel: rename sheet: %w", err)
	}
	for _, name := range []string{sheetStock, sheetMovements, sheetCategory} {
		if _, err := f.NewSheet(name); err != nil {
			return nil, fmt.Errorf("excel: add sheet %s: %w", name, err)
		}
	}

	writeSummary(f, data)
	writeStockDetails(f, data)
	writeMovements(f, data)
	writeCategoryAnalysis(f, data)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("excel: write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeSummary(f *excelize.File, data reports.StockReportData) {
	activeCount := 0
	var totalStock int64
	for _, p := range data.Products {
		if p.Status == "active" {
			activeCount++
		}
		totalStock += p.Stock
	}

	rows := [][]interface{}{
		{"Stock Report"},
		{"Generated", data.GeneratedAt.Format("2006-01-02 15:04")},
		{},
		{"Total Products", len(data.Products)},
		{"Active Products", activeCount},
		{"Total Units In Stock", totalStock},
		{"Stock Value", data.TotalStockValue.StringFixed(2)},
		{"Low Stock Products", data.LowStockCount},
		{"Categories", len(data.Categories)},
	}
	writeRows(f, sheetSummary, rows)
}

func writeStockDetails(f *excelize.File, data reports.StockReportData) {
	rows := [][]interface{}{
		{"Name", "Brand", "Category", "Unit", "Price", "Stock", "Min Stock", "Stock Value", "Status", "HSN", "Branch"},
	}
	for _, p := range data.Products {
		value := p.Price.Mul(decimal.NewFromInt(p.Stock))
		rows = append(rows, []interface{}{
			p.Name, p.Brand, p.Category, p.Unit, p.Price.StringFixed(2),
			p.Stock, p.MinStock, value.StringFixed(2), p.Status, p.HSNCode, p.Branch,
		})
	}
	writeRows(f, sheetStock, rows)
}

func writeMovements(f *excelize.File, data reports.StockReportData) {
	rows := [][]interface{}{
		{"Date", "Product", "Type", "Reason", "Quantity", "Old Stock", "New Stock", "Reference", "Notes"},
	}
	for _, l := range data.Movements {
		rows = append(rows, []interface{}{
			l.CreatedAt.Format("2006-01-02 15:04"), l.ProductName, l.Type, l.Reason,
			l.Quantity, l.OldStock, l.NewStock, l.Reference, l.Notes,
		})
	}
	writeRows(f, sheetMovements, rows)
}

func writeCategoryAnalysis(f *excelize.File, data reports.StockReportData) {
	rows := [][]interface{}{
		{"Category", "Products", "Total Stock", "Stock Value", "Low Stock"},
	}
	for _, c := range data.Categories {
		rows = append(rows, []interface{}{
			c.Category, c.Products, c.TotalStock, c.StockValue.StringFixed(2), c.LowStock,
		})
	}
	writeRows(f, sheetCategory, rows)
}

// writeRows writes each row starting at A1.
func writeRows(f *excelize.File, sheet string, rows [][]interface{}) {
	for i, cells := range rows {
		for j, v := range cells {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+1)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}
}
