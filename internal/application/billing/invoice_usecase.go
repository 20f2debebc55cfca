package billing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vyapari/billing-api/internal/application/dto"
	"github.com/vyapari/billing-api/internal/application/inventory"
	"github.com/vyapari/billing-api/internal/domain"
	"github.com/vyapari/billing-api/internal/domain/billing"
	"github.com/vyapari/billing-api/internal/domain/entity"
	"github.com/vyapari/billing-api/internal/domain/repository"
	"github.com/vyapari/billing-api/pkg/validate"
)

var decimalHundred = decimal.NewFromInt(100)

// InvoiceUseCase creates and reads invoices. Creation runs in a single
// transaction: number generation, stock deduction with ledger rows, the
// invoice header with its items and the customer purchase stats commit
// together or not at all.
type InvoiceUseCase struct {
	txRunner     BillingTxRunner
	invoiceRepo  repository.InvoiceRepository
	customerRepo repository.CustomerRepository
	branch       string
}

func NewInvoiceUseCase(
	txRunner BillingTxRunner,
	invoiceRepo repository.InvoiceRepository,
	customerRepo repository.CustomerRepository,
	branch string,
) *InvoiceUseCase {
	return &InvoiceUseCase{
		txRunner:     txRunner,
		invoiceRepo:  invoiceRepo,
		customerRepo: customerRepo,
		branch:       branch,
	}
}

func (uc *InvoiceUseCase) Create(ctx context.Context, userID string, req dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if err := validate.Struct(req); err != nil {
		return nil, domain.ErrInvalidInput
	}
	if req.PaidAmount.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	for _, line := range req.Items {
		if line.Rate.IsNegative() || line.DiscountPct.IsNegative() || line.DiscountPct.GreaterThan(decimalHundred) {
			return nil, domain.ErrInvalidInput
		}
	}
	paymentMode := req.PaymentMode
	if paymentMode == "" {
		paymentMode = entity.PaymentModeCash
	}
	if paymentMode == entity.PaymentModeCredit && req.DueDate == nil {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	invoice := &entity.Invoice{
		ID:          uuid.New().String(),
		CustomerID:  req.CustomerID,
		Date:        now,
		PaidAmount:  req.PaidAmount,
		PaymentMode: paymentMode,
		DueDate:     req.DueDate,
		Branch:      uc.branch,
		CreatedBy:   userID,
	}
	var items []entity.InvoiceItem
	var customer *entity.Customer

	err := uc.txRunner.RunBilling(ctx, func(
		productRepo repository.ProductRepository,
		logRepo repository.StockLogRepository,
		invoiceRepo repository.InvoiceRepository,
		customerRepo repository.CustomerRepository,
	) error {
		var err error
		customer, err = customerRepo.GetByID(req.CustomerID)
		if err != nil {
			return err
		}
		if customer == nil {
			return domain.ErrNotFound
		}

		// The daily sequence scans existing numbers inside the transaction;
		// the unique index on invoice_number backstops concurrent creators.
		prefix := billing.NumberPrefix(now)
		numbers, err := invoiceRepo.ListNumbersByPrefix(prefix)
		if err != nil {
			return err
		}
		invoice.InvoiceNumber = billing.NextNumber(prefix, numbers)

		items = items[:0]
		for _, line := range req.Items {
			product, err := productRepo.GetForUpdate(line.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return domain.ErrNotFound
			}
			if product.Status != entity.ProductStatusActive {
				return domain.ErrInactiveProduct
			}

			rate := line.Rate
			if rate.IsZero() {
				rate = product.Price
			}

			if _, err := inventory.ApplyStockChangeInTx(productRepo, logRepo, product, inventory.StockChange{
				Type:      entity.StockTypeOut,
				Reason:    entity.StockReasonBilling,
				Quantity:  line.Quantity,
				Reference: invoice.InvoiceNumber,
				UserID:    userID,
				Now:       now,
			}); err != nil {
				return err
			}

			items = append(items, entity.InvoiceItem{
				ID:          uuid.New().String(),
				InvoiceID:   invoice.ID,
				ProductID:   product.ID,
				ProductName: product.Name,
				HSNCode:     product.HSNCode,
				Quantity:    line.Quantity,
				Rate:        rate,
				DiscountPct: line.DiscountPct,
				Amount:      billing.LineAmount(rate, line.Quantity, line.DiscountPct),
			})
		}

		totals := billing.ComputeTotals(items)
		invoice.Subtotal = totals.Subtotal
		invoice.CGST = totals.CGST
		invoice.SGST = totals.SGST
		invoice.RoundOff = totals.RoundOff
		invoice.GrandTotal = totals.GrandTotal
		invoice.Balance = billing.Balance(totals.GrandTotal, invoice.PaidAmount)

		if err := invoiceRepo.Create(invoice); err != nil {
			return err
		}
		for i := range items {
			if err := invoiceRepo.CreateItem(&items[i]); err != nil {
				return err
			}
		}
		return customerRepo.AddPurchase(customer.ID, invoice.GrandTotal, now)
	})
	if err != nil {
		return nil, err
	}

	return toInvoiceResponse(invoice, customer.Name, items), nil
}

func (uc *InvoiceUseCase) GetByID(ctx context.Context, id string) (*dto.InvoiceResponse, error) {
	invoice, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, domain.ErrNotFound
	}

	itemPtrs, err := uc.invoiceRepo.GetItemsByInvoiceID(invoice.ID)
	if err != nil {
		return nil, err
	}
	items := make([]entity.InvoiceItem, 0, len(itemPtrs))
	for _, it := range itemPtrs {
		items = append(items, *it)
	}

	customerName := ""
	customer, err := uc.customerRepo.GetByID(invoice.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer != nil {
		customerName = customer.Name
	}

	return toInvoiceResponse(invoice, customerName, items), nil
}

func (uc *InvoiceUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.InvoiceListResponse, error) {
	page.DefaultPage()
	invoices, err := uc.invoiceRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return toInvoiceListResponse(invoices, page), nil
}

func (uc *InvoiceUseCase) ListByCustomer(ctx context.Context, customerID string) (*dto.InvoiceListResponse, error) {
	customer, err := uc.customerRepo.GetByID(customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}

	invoices, err := uc.invoiceRepo.ListByCustomer(customerID)
	if err != nil {
		return nil, err
	}
	return toInvoiceListResponse(invoices, dto.PageRequest{Limit: len(invoices)}), nil
}

func toInvoiceResponse(inv *entity.Invoice, customerName string, items []entity.InvoiceItem) *dto.InvoiceResponse {
	lines := make([]dto.InvoiceItemResponse, 0, len(items))
	for _, it := range items {
		lines = append(lines, dto.InvoiceItemResponse{
			ID:          it.ID,
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			HSNCode:     it.HSNCode,
			Quantity:    it.Quantity,
			Rate:        it.Rate,
			DiscountPct: it.DiscountPct,
			Amount:      it.Amount,
		})
	}
	return &dto.InvoiceResponse{
		ID:            inv.ID,
		InvoiceNumber: inv.InvoiceNumber,
		CustomerID:    inv.CustomerID,
		CustomerName:  customerName,
		Date:          inv.Date.Format("2006-01-02"),
		Subtotal:      inv.Subtotal,
		CGST:          inv.CGST,
		SGST:          inv.SGST,
		RoundOff:      inv.RoundOff,
		GrandTotal:    inv.GrandTotal,
		PaidAmount:    inv.PaidAmount,
		Balance:       inv.Balance,
		PaymentMode:   inv.PaymentMode,
		DueDate:       inv.DueDate,
		Branch:        inv.Branch,
		AmountInWords: billing.AmountInWords(inv.GrandTotal),
		Items:         lines,
	}
}

func toInvoiceListResponse(invoices []*entity.Invoice, page dto.PageRequest) *dto.InvoiceListResponse {
	items := make([]dto.InvoiceSummaryResponse, 0, len(invoices))
	for _, inv := range invoices {
		items = append(items, dto.InvoiceSummaryResponse{
			ID:            inv.ID,
			InvoiceNumber: inv.InvoiceNumber,
			CustomerID:    inv.CustomerID,
			Date:          inv.Date.Format("2006-01-02"),
			GrandTotal:    inv.GrandTotal,
			PaidAmount:    inv.PaidAmount,
			Balance:       inv.Balance,
			PaymentMode:   inv.PaymentMode,
		})
	}
	return &dto.InvoiceListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
}
