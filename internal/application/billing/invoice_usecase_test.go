package billing_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appbilling "github.com/vyapari/billing-api/internal/application/billing"
	"github.com/vyapari/billing-api/internal/application/dto"
	"github.com/vyapari/billing-api/internal/domain"
	domainbilling "github.com/vyapari/billing-api/internal/domain/billing"
	"github.com/vyapari/billing-api/internal/domain/entity"
	"github.com/vyapari/billing-api/internal/domain/repository"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

type memProductRepo struct {
	products map[string]*entity.Product
}

func (r *memProductRepo) Create(p *entity.Product) error                    { r.products[p.ID] = p; return nil }
func (r *memProductRepo) GetByID(id string) (*entity.Product, error)        { return r.products[id], nil }
func (r *memProductRepo) GetForUpdate(id string) (*entity.Product, error)   { return r.products[id], nil }
func (r *memProductRepo) List(limit, offset int) ([]*entity.Product, error) { return nil, nil }
func (r *memProductRepo) ListLowStock() ([]*entity.Product, error)          { return nil, nil }
func (r *memProductRepo) ListAll() ([]*entity.Product, error)               { return nil, nil }
func (r *memProductRepo) Update(p *entity.Product) error                    { return nil }
func (r *memProductRepo) Delete(id string) error                            { delete(r.products, id); return nil }

func (r *memProductRepo) UpdateStock(productID string, newStock int64) error {
	p, ok := r.products[productID]
	if !ok {
		return domain.ErrNotFound
	}
	p.Stock = newStock
	return nil
}

type memLogRepo struct {
	logs []*entity.StockLog
}

func (r *memLogRepo) Create(l *entity.StockLog) error                    { r.logs = append(r.logs, l); return nil }
func (r *memLogRepo) List(limit, offset int) ([]*entity.StockLog, error) { return r.logs, nil }
func (r *memLogRepo) ListByProduct(productID string, limit, offset int) ([]*entity.StockLog, error) {
	return r.logs, nil
}

type memCustomerRepo struct {
	customers map[string]*entity.Customer
	purchases []decimal.Decimal
}

func (r *memCustomerRepo) Create(c *entity.Customer) error                    { r.customers[c.ID] = c; return nil }
func (r *memCustomerRepo) GetByID(id string) (*entity.Customer, error)        { return r.customers[id], nil }
func (r *memCustomerRepo) List(limit, offset int) ([]*entity.Customer, error) { return nil, nil }
func (r *memCustomerRepo) Update(c *entity.Customer) error                    { return nil }
func (r *memCustomerRepo) Delete(id string) error                             { delete(r.customers, id); return nil }

func (r *memCustomerRepo) GetByPhone(phone string) (*entity.Customer, error) {
	for _, c := range r.customers {
		if c.Phone == phone {
			return c, nil
		}
	}
	return nil, nil
}

func (r *memCustomerRepo) AddPurchase(customerID string, amount decimal.Decimal, purchasedAt time.Time) error {
	c, ok := r.customers[customerID]
	if !ok {
		return domain.ErrNotFound
	}
	c.TotalPurchases = c.TotalPurchases.Add(amount)
	c.TotalOrders++
	c.LastPurchaseDate = &purchasedAt
	r.purchases = append(r.purchases, amount)
	return nil
}

type memInvoiceRepo struct {
	invoices []*entity.Invoice
	items    []*entity.InvoiceItem
}

func (r *memInvoiceRepo) Create(inv *entity.Invoice) error       { r.invoices = append(r.invoices, inv); return nil }
func (r *memInvoiceRepo) CreateItem(it *entity.InvoiceItem) error { r.items = append(r.items, it); return nil }

func (r *memInvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	for _, inv := range r.invoices {
		if inv.ID == id {
			return inv, nil
		}
	}
	return nil, nil
}

func (r *memInvoiceRepo) GetItemsByInvoiceID(invoiceID string) ([]*entity.InvoiceItem, error) {
	var out []*entity.InvoiceItem
	for _, it := range r.items {
		if it.InvoiceID == invoiceID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (r *memInvoiceRepo) List(limit, offset int) ([]*entity.Invoice, error) { return r.invoices, nil }

func (r *memInvoiceRepo) ListByCustomer(customerID string) ([]*entity.Invoice, error) {
	var out []*entity.Invoice
	for _, inv := range r.invoices {
		if inv.CustomerID == customerID {
			out = append(out, inv)
		}
	}
	return out, nil
}

func (r *memInvoiceRepo) ListNumbersByPrefix(prefix string) ([]string, error) {
	var out []string
	for _, inv := range r.invoices {
		if len(inv.InvoiceNumber) >= len(prefix) && inv.InvoiceNumber[:len(prefix)] == prefix {
			out = append(out, inv.InvoiceNumber)
		}
	}
	return out, nil
}

type memBillingRunner struct {
	productRepo  *memProductRepo
	logRepo      *memLogRepo
	invoiceRepo  *memInvoiceRepo
	customerRepo *memCustomerRepo
}

func (r *memBillingRunner) RunBilling(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	logRepo repository.StockLogRepository,
	invoiceRepo repository.InvoiceRepository,
	customerRepo repository.CustomerRepository,
) error) error {
	return fn(r.productRepo, r.logRepo, r.invoiceRepo, r.customerRepo)
}

type billingFixture struct {
	uc           *appbilling.InvoiceUseCase
	productRepo  *memProductRepo
	logRepo      *memLogRepo
	invoiceRepo  *memInvoiceRepo
	customerRepo *memCustomerRepo
}

func newBillingFixture() *billingFixture {
	productRepo := &memProductRepo{products: map[string]*entity.Product{
		"p1": {
			ID:      "p1",
			Name:    "Boat Airdopes 141",
			Price:   d("1299"),
			Stock:   20,
			Status:  entity.ProductStatusActive,
			HSNCode: "8518",
		},
		"p2": {
			ID:      "p2",
			Name:    "Mi Power Bank 10000mAh",
			Price:   d("999.50"),
			Stock:   5,
			Status:  entity.ProductStatusActive,
			HSNCode: "8507",
		},
	}}
	logRepo := &memLogRepo{}
	invoiceRepo := &memInvoiceRepo{}
	customerRepo := &memCustomerRepo{customers: map[string]*entity.Customer{
		"c1": {ID: "c1", Name: "Ramesh Traders", Phone: "9876543210", Status: "active"},
	}}
	runner := &memBillingRunner{
		productRepo:  productRepo,
		logRepo:      logRepo,
		invoiceRepo:  invoiceRepo,
		customerRepo: customerRepo,
	}
	return &billingFixture{
		uc:           appbilling.NewInvoiceUseCase(runner, invoiceRepo, customerRepo, "Main"),
		productRepo:  productRepo,
		logRepo:      logRepo,
		invoiceRepo:  invoiceRepo,
		customerRepo: customerRepo,
	}
}

func TestCreateInvoice_TotalsNumberAndStock(t *testing.T) {
	fx := newBillingFixture()

	resp, err := fx.uc.Create(context.Background(), "u1", dto.CreateInvoiceRequest{
		CustomerID: "c1",
		Items: []dto.InvoiceItemRequest{
			{ProductID: "p1", Quantity: 2, Rate: d("1299"), DiscountPct: d("10")},
			{ProductID: "p2", Quantity: 1},
		},
		PaidAmount: d("1000"),
	})
	require.NoError(t, err)

	prefix := domainbilling.NumberPrefix(time.Now())
	assert.Equal(t, prefix+"0001", resp.InvoiceNumber)
	assert.Equal(t, "Ramesh Traders", resp.CustomerName)
	assert.Equal(t, entity.PaymentModeCash, resp.PaymentMode)

	// 1299*2*0.9 = 2338.20; p2 falls back to product price 999.50
	assert.True(t, d("3337.70").Equal(resp.Subtotal), "subtotal %s", resp.Subtotal)
	assert.True(t, d("3338").Equal(resp.GrandTotal), "grand %s", resp.GrandTotal)
	assert.True(t, d("0.30").Equal(resp.RoundOff), "round-off %s", resp.RoundOff)
	assert.True(t, d("2338").Equal(resp.Balance), "balance %s", resp.Balance)
	assert.NotEmpty(t, resp.AmountInWords)

	// Stock deducted and ledgered under the invoice number
	assert.Equal(t, int64(18), fx.productRepo.products["p1"].Stock)
	assert.Equal(t, int64(4), fx.productRepo.products["p2"].Stock)
	require.Len(t, fx.logRepo.logs, 2)
	for _, l := range fx.logRepo.logs {
		assert.Equal(t, entity.StockTypeOut, l.Type)
		assert.Equal(t, entity.StockReasonBilling, l.Reason)
		assert.Equal(t, resp.InvoiceNumber, l.Reference)
	}

	// Customer stats accumulated
	cust := fx.customerRepo.customers["c1"]
	assert.True(t, d("3338").Equal(cust.TotalPurchases))
	assert.Equal(t, 1, cust.TotalOrders)
	require.NotNil(t, cust.LastPurchaseDate)

	require.Len(t, fx.invoiceRepo.invoices, 1)
	require.Len(t, fx.invoiceRepo.items, 2)
}

func TestCreateInvoice_SequenceIncrements(t *testing.T) {
	fx := newBillingFixture()

	first, err := fx.uc.Create(context.Background(), "u1", dto.CreateInvoiceRequest{
		CustomerID: "c1",
		Items:      []dto.InvoiceItemRequest{{ProductID: "p1", Quantity: 1}},
	})
	require.NoError(t, err)

	second, err := fx.uc.Create(context.Background(), "u1", dto.CreateInvoiceRequest{
		CustomerID: "c1",
		Items:      []dto.InvoiceItemRequest{{ProductID: "p1", Quantity: 1}},
	})
	require.NoError(t, err)

	prefix := domainbilling.NumberPrefix(time.Now())
	assert.Equal(t, prefix+"0001", first.InvoiceNumber)
	assert.Equal(t, prefix+"0002", second.InvoiceNumber)
}

func TestCreateInvoice_InsufficientStock(t *testing.T) {
	fx := newBillingFixture()

	_, err := fx.uc.Create(context.Background(), "u1", dto.CreateInvoiceRequest{
		CustomerID: "c1",
		Items:      []dto.InvoiceItemRequest{{ProductID: "p2", Quantity: 6}},
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Empty(t, fx.invoiceRepo.invoices)
	assert.Empty(t, fx.logRepo.logs)
}

func TestCreateInvoice_InactiveProduct(t *testing.T) {
	fx := newBillingFixture()
	fx.productRepo.products["p1"].Status = "inactive"

	_, err := fx.uc.Create(context.Background(), "u1", dto.CreateInvoiceRequest{
		CustomerID: "c1",
		Items:      []dto.InvoiceItemRequest{{ProductID: "p1", Quantity: 1}},
	})
	require.ErrorIs(t, err, domain.ErrInactiveProduct)
	assert.Empty(t, fx.invoiceRepo.invoices)
}

func TestCreateInvoice_UnknownCustomer(t *testing.T) {
	fx := newBillingFixture()

	_, err := fx.uc.Create(context.Background(), "u1", dto.CreateInvoiceRequest{
		CustomerID: "missing",
		Items:      []dto.InvoiceItemRequest{{ProductID: "p1", Quantity: 1}},
	})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateInvoice_CreditNeedsDueDate(t *testing.T) {
	fx := newBillingFixture()

	_, err := fx.uc.Create(context.Background(), "u1", dto.CreateInvoiceRequest{
		CustomerID:  "c1",
		Items:       []dto.InvoiceItemRequest{{ProductID: "p1", Quantity: 1}},
		PaymentMode: entity.PaymentModeCredit,
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	due := time.Now().AddDate(0, 0, 15)
	resp, err := fx.uc.Create(context.Background(), "u1", dto.CreateInvoiceRequest{
		CustomerID:  "c1",
		Items:       []dto.InvoiceItemRequest{{ProductID: "p1", Quantity: 1}},
		PaymentMode: entity.PaymentModeCredit,
		DueDate:     &due,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentModeCredit, resp.PaymentMode)
}

func TestCreateInvoice_RejectsBadAmounts(t *testing.T) {
	fx := newBillingFixture()

	cases := []dto.CreateInvoiceRequest{
		{CustomerID: "c1", Items: []dto.InvoiceItemRequest{{ProductID: "p1", Quantity: 1}}, PaidAmount: d("-1")},
		{CustomerID: "c1", Items: []dto.InvoiceItemRequest{{ProductID: "p1", Quantity: 1, Rate: d("-5")}}},
		{CustomerID: "c1", Items: []dto.InvoiceItemRequest{{ProductID: "p1", Quantity: 1, DiscountPct: d("101")}}},
		{CustomerID: "c1", Items: nil},
	}
	for _, req := range cases {
		_, err := fx.uc.Create(context.Background(), "u1", req)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}
