package repository

import "github.com/vyapari/billing-api/internal/domain/entity"

// InvoiceRepository persistence port for invoice headers and line items.
type InvoiceRepository interface {
	Create(invoice *entity.Invoice) error
	CreateItem(item *entity.InvoiceItem) error
	GetByID(id string) (*entity.Invoice, error)
	GetItemsByInvoiceID(invoiceID string) ([]*entity.InvoiceItem, error)
	List(limit, offset int) ([]*entity.Invoice, error)
	ListByCustomer(customerID string) ([]*entity.Invoice, error)
	// ListNumbersByPrefix returns the invoice numbers starting with the given
	// YYMMDD prefix; the number generator scans these inside the create
	// transaction.
	ListNumbersByPrefix(prefix string) ([]string, error)
}
