package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment modes accepted on an invoice.
const (
	PaymentModeCash   = "Cash"
	PaymentModeUPI    = "UPI"
	PaymentModeCard   = "Card"
	PaymentModeCredit = "Credit"
)

// Invoice is the header of a sales invoice. Number is the date-prefixed daily
// sequence (YYMMDD + 4-digit suffix), unique across the table.
//
// Balance is always GrandTotal - PaidAmount; it is computed server-side and
// persisted for querying, never accepted from the caller.
type Invoice struct {
	ID            string
	InvoiceNumber string
	CustomerID    string
	Date          time.Time
	Subtotal      decimal.Decimal
	CGST          decimal.Decimal // zero in the active flow, kept in the model
	SGST          decimal.Decimal // zero in the active flow, kept in the model
	RoundOff      decimal.Decimal // GrandTotal - (Subtotal + CGST + SGST)
	GrandTotal    decimal.Decimal // rounded to the nearest rupee
	PaidAmount    decimal.Decimal
	Balance       decimal.Decimal
	PaymentMode   string
	DueDate       *time.Time // set when PaymentMode is Credit
	Branch        string
	CreatedBy     string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
