package billing

import (
	"context"
	"fmt"
	"strings"

	"github.com/vyapari/billing-api/internal/domain"
	"github.com/vyapari/billing-api/internal/domain/entity"
	"github.com/vyapari/billing-api/internal/domain/repository"
)

// PDFUseCase generates the printable document for a stored invoice.
type PDFUseCase struct {
	invoiceRepo  repository.InvoiceRepository
	customerRepo repository.CustomerRepository
	generator    InvoicePDFGenerator
	seller       SellerProfile
}

func NewPDFUseCase(
	invoiceRepo repository.InvoiceRepository,
	customerRepo repository.CustomerRepository,
	generator InvoicePDFGenerator,
	seller SellerProfile,
) *PDFUseCase {
	return &PDFUseCase{
		invoiceRepo:  invoiceRepo,
		customerRepo: customerRepo,
		generator:    generator,
		seller:       seller,
	}
}

// DownloadInvoicePDF loads the invoice with its lines and customer and renders
// the PDF. Returns (pdfBytes, filename, nil) on success, domain.ErrNotFound if
// the invoice does not exist.
func (uc *PDFUseCase) DownloadInvoicePDF(ctx context.Context, invoiceID string) (pdfBytes []byte, filename string, err error) {
	inv, err := uc.invoiceRepo.GetByID(invoiceID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: load invoice: %w", err)
	}
	if inv == nil {
		return nil, "", domain.ErrNotFound
	}

	customer, err := uc.customerRepo.GetByID(inv.CustomerID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: load customer: %w", err)
	}
	if customer == nil {
		return nil, "", fmt.Errorf("pdf: invoice %s references missing customer %s", inv.InvoiceNumber, inv.CustomerID)
	}

	itemPtrs, err := uc.invoiceRepo.GetItemsByInvoiceID(invoiceID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: load items: %w", err)
	}
	items := make([]entity.InvoiceItem, 0, len(itemPtrs))
	for _, it := range itemPtrs {
		items = append(items, *it)
	}

	pdfBytes, err = uc.generator.GenerateInvoicePDF(ctx, inv, customer, items, uc.seller)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: render: %w", err)
	}

	filename = fmt.Sprintf("Invoice_%s_%s.pdf", inv.InvoiceNumber, SanitizeFilename(customer.Name))
	return pdfBytes, filename, nil
}

// SanitizeFilename keeps letters, digits, dashes and underscores, mapping
// everything else (spaces included) to underscores so the name survives
// Content-Disposition headers and every filesystem.
func SanitizeFilename(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
