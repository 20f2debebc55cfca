package billing

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"

	"github.com/vyapari/billing-api/internal/domain"
	"github.com/vyapari/billing-api/internal/domain/entity"
	"github.com/vyapari/billing-api/internal/domain/repository"
)

// BatchExportUseCase packages every invoice of a customer as one ZIP of PDFs.
// Rendering is sequential: one invoice in memory at a time keeps the peak
// footprint flat no matter how many invoices the customer has.
type BatchExportUseCase struct {
	invoiceRepo  repository.InvoiceRepository
	customerRepo repository.CustomerRepository
	generator    InvoicePDFGenerator
	seller       SellerProfile
}

func NewBatchExportUseCase(
	invoiceRepo repository.InvoiceRepository,
	customerRepo repository.CustomerRepository,
	generator InvoicePDFGenerator,
	seller SellerProfile,
) *BatchExportUseCase {
	return &BatchExportUseCase{
		invoiceRepo:  invoiceRepo,
		customerRepo: customerRepo,
		generator:    generator,
		seller:       seller,
	}
}

// ProgressFunc receives (done, total) after each invoice is rendered. May be nil.
type ProgressFunc func(done, total int)

// ExportCustomerInvoices renders all invoices of the customer and returns the
// ZIP bytes plus the download filename. A failed render skips that invoice
// rather than aborting the batch; a cancelled context aborts immediately.
func (uc *BatchExportUseCase) ExportCustomerInvoices(
	ctx context.Context,
	customerID string,
	progress ProgressFunc,
) (zipBytes []byte, filename string, err error) {
	customer, err := uc.customerRepo.GetByID(customerID)
	if err != nil {
		return nil, "", fmt.Errorf("export: load customer: %w", err)
	}
	if customer == nil {
		return nil, "", domain.ErrNotFound
	}

	invoices, err := uc.invoiceRepo.ListByCustomer(customerID)
	if err != nil {
		return nil, "", fmt.Errorf("export: list invoices: %w", err)
	}
	if len(invoices) == 0 {
		return nil, "", domain.ErrNotFound
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	total := len(invoices)
	for i, inv := range invoices {
		if err := ctx.Err(); err != nil {
			return nil, "", err
		}

		pdfBytes, renderErr := uc.renderOne(ctx, inv, customer)
		if renderErr != nil {
			// A corrupt invoice must not block the rest of the archive.
			if progress != nil {
				progress(i+1, total)
			}
			continue
		}

		entryName := fmt.Sprintf("Invoice_%s_%s.pdf", inv.InvoiceNumber, SanitizeFilename(customer.Name))
		w, err := zw.Create(entryName)
		if err != nil {
			return nil, "", fmt.Errorf("export: zip entry %s: %w", entryName, err)
		}
		if _, err := w.Write(pdfBytes); err != nil {
			return nil, "", fmt.Errorf("export: write %s: %w", entryName, err)
		}

		if progress != nil {
			progress(i+1, total)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, "", fmt.Errorf("export: close zip: %w", err)
	}

	filename = fmt.Sprintf("%s_All_Invoices.zip", SanitizeFilename(customer.Name))
	return buf.Bytes(), filename, nil
}

func (uc *BatchExportUseCase) renderOne(ctx context.Context, inv *entity.Invoice, customer *entity.Customer) ([]byte, error) {
	itemPtrs, err := uc.invoiceRepo.GetItemsByInvoiceID(inv.ID)
	if err != nil {
		return nil, err
	}
	items := make([]entity.InvoiceItem, 0, len(itemPtrs))
	for _, it := range itemPtrs {
		items = append(items, *it)
	}
	return uc.generator.GenerateInvoicePDF(ctx, inv, customer, items, uc.seller)
}
