package entity

import "github.com/shopspring/decimal"

// InvoiceItem is one line of an invoice. ProductName and HSNCode are copied
// from the product at billing time so the printed invoice stays stable when
// the catalog changes later.
type InvoiceItem struct {
	ID          string
	InvoiceID   string
	ProductID   string
	ProductName string
	HSNCode     string
	Quantity    int64
	Rate        decimal.Decimal // unit price at billing time
	DiscountPct decimal.Decimal // 0..100
	Amount      decimal.Decimal // Rate * Quantity * (1 - DiscountPct/100)
}
