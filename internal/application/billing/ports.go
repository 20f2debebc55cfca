package billing

import (
	"context"

	"github.com/vyapari/billing-api/internal/domain/entity"
	"github.com/vyapari/billing-api/internal/domain/repository"
)

// BillingTxRunner runs a function inside a transaction spanning catalog,
// ledger, invoice and customer repositories, so invoice creation commits
// stock deductions, ledger rows, the invoice and the customer stats together.
type BillingTxRunner interface {
	RunBilling(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		logRepo repository.StockLogRepository,
		invoiceRepo repository.InvoiceRepository,
		customerRepo repository.CustomerRepository,
	) error) error
}

// SellerProfile is the bill-from block printed on every invoice, sourced from
// configuration (single-company deployment).
type SellerProfile struct {
	Name    string
	Address string
	Phone   string
	Email   string
	GSTIN   string

	BankName    string
	BankAccount string
	BankIFSC    string
	UPIID       string
}

// InvoicePDFGenerator renders the printable document for an invoice.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(
		ctx context.Context,
		invoice *entity.Invoice,
		customer *entity.Customer,
		items []entity.InvoiceItem,
		seller SellerProfile,
	) ([]byte, error)
}
