package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceItemRequest one line of a new invoice. Rate zero means "use the
// catalog price".
type InvoiceItemRequest struct {
	ProductID   string          `json:"product_id" validate:"required"`
	Quantity    int64           `json:"quantity" validate:"required,min=1"`
	Rate        decimal.Decimal `json:"rate"`
	DiscountPct decimal.Decimal `json:"discount_pct"`
}

// CreateInvoiceRequest input for creating an invoice.
type CreateInvoiceRequest struct {
	CustomerID  string               `json:"customer_id" validate:"required"`
	Items       []InvoiceItemRequest `json:"items" validate:"required,min=1,dive"`
	PaidAmount  decimal.Decimal      `json:"paid_amount"`
	PaymentMode string               `json:"payment_mode" validate:"omitempty,oneof=Cash UPI Card Credit"`
	DueDate     *time.Time           `json:"due_date"`
}

// InvoiceItemResponse one persisted invoice line.
type InvoiceItemResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	HSNCode     string          `json:"hsn_code"`
	Quantity    int64           `json:"quantity"`
	Rate        decimal.Decimal `json:"rate"`
	DiscountPct decimal.Decimal `json:"discount_pct"`
	Amount      decimal.Decimal `json:"amount"`
}

// InvoiceResponse full invoice output.
type InvoiceResponse struct {
	ID            string                `json:"id"`
	InvoiceNumber string                `json:"invoice_number"`
	CustomerID    string                `json:"customer_id"`
	CustomerName  string                `json:"customer_name"`
	Date          string                `json:"date"`
	Subtotal      decimal.Decimal       `json:"subtotal"`
	CGST          decimal.Decimal       `json:"cgst"`
	SGST          decimal.Decimal       `json:"sgst"`
	RoundOff      decimal.Decimal       `json:"round_off"`
	GrandTotal    decimal.Decimal       `json:"grand_total"`
	PaidAmount    decimal.Decimal       `json:"paid_amount"`
	Balance       decimal.Decimal       `json:"balance"`
	PaymentMode   string                `json:"payment_mode"`
	DueDate       *time.Time            `json:"due_date,omitempty"`
	Branch        string                `json:"branch"`
	AmountInWords string                `json:"amount_in_words"`
	Items         []InvoiceItemResponse `json:"items"`
}

// InvoiceSummaryResponse compact row for invoice listings.
type InvoiceSummaryResponse struct {
	ID            string          `json:"id"`
	InvoiceNumber string          `json:"invoice_number"`
	CustomerID    string          `json:"customer_id"`
	Date          string          `json:"date"`
	GrandTotal    decimal.Decimal `json:"grand_total"`
	PaidAmount    decimal.Decimal `json:"paid_amount"`
	Balance       decimal.Decimal `json:"balance"`
	PaymentMode   string          `json:"payment_mode"`
}

// InvoiceListResponse paginated invoice list.
type InvoiceListResponse struct {
	Items []InvoiceSummaryResponse `json:"items"`
	Page  PageResponse             `json:"page"`
}
