package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/vyapari/billing-api/internal/domain"
	"github.com/vyapari/billing-api/internal/domain/entity"
	"github.com/vyapari/billing-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

const invoiceColumns = `id, invoice_number, customer_id, date, subtotal, cgst, sgst, round_off,
	grand_total, paid_amount, balance, payment_mode, due_date, branch, created_by, created_at, updated_at`

// InvoiceRepo implements InvoiceRepository on PostgreSQL (usable with pool or tx).
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository builds the invoice persistence adapter. Pass a pool or tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

func (r *InvoiceRepo) Create(invoice *entity.Invoice) error {
	query := `
		INSERT INTO invoices (id, invoice_number, customer_id, date, subtotal, cgst, sgst, round_off,
			grand_total, paid_amount, balance, payment_mode, due_date, branch, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, now(), now())`
	_, err := r.q.Exec(context.Background(), query,
		invoice.ID, invoice.InvoiceNumber, invoice.CustomerID, invoice.Date,
		invoice.Subtotal, invoice.CGST, invoice.SGST, invoice.RoundOff,
		invoice.GrandTotal, invoice.PaidAmount, invoice.Balance,
		invoice.PaymentMode, invoice.DueDate, invoice.Branch, invoice.CreatedBy,
	)
	if err != nil {
		// The unique index on invoice_number backstops the daily sequence
		// against concurrent creators.
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

func (r *InvoiceRepo) CreateItem(item *entity.InvoiceItem) error {
	query := `
		INSERT INTO invoice_items (id, invoice_id, product_id, product_name, hsn_code, quantity, rate, discount_pct, amount)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.InvoiceID, item.ProductID, item.ProductName, item.HSNCode,
		item.Quantity, item.Rate, item.DiscountPct, item.Amount,
	)
	if err != nil {
		return fmt.Errorf("insert invoice item: %w", err)
	}
	return nil
}

func (r *InvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE id = $1`
	var inv entity.Invoice
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&inv.ID, &inv.InvoiceNumber, &inv.CustomerID, &inv.Date,
		&inv.Subtotal, &inv.CGST, &inv.SGST, &inv.RoundOff,
		&inv.GrandTotal, &inv.PaidAmount, &inv.Balance,
		&inv.PaymentMode, &inv.DueDate, &inv.Branch, &inv.CreatedBy,
		&inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return &inv, nil
}

func (r *InvoiceRepo) GetItemsByInvoiceID(invoiceID string) ([]*entity.InvoiceItem, error) {
	query := `
		SELECT id, invoice_id, product_id, product_name, hsn_code, quantity, rate, discount_pct, amount
		FROM invoice_items WHERE invoice_id = $1 ORDER BY product_name`
	rows, err := r.q.Query(context.Background(), query, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("list invoice items: %w", err)
	}
	defer rows.Close()

	var list []*entity.InvoiceItem
	for rows.Next() {
		var it entity.InvoiceItem
		if err := rows.Scan(
			&it.ID, &it.InvoiceID, &it.ProductID, &it.ProductName, &it.HSNCode,
			&it.Quantity, &it.Rate, &it.DiscountPct, &it.Amount,
		); err != nil {
			return nil, fmt.Errorf("scan invoice item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

func (r *InvoiceRepo) List(limit, offset int) ([]*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices ORDER BY date DESC, invoice_number DESC LIMIT $1 OFFSET $2`
	return r.scanMany(query, "list invoices", limit, offset)
}

func (r *InvoiceRepo) ListByCustomer(customerID string) ([]*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE customer_id = $1 ORDER BY date DESC, invoice_number DESC`
	return r.scanMany(query, "list customer invoices", customerID)
}

// ListNumbersByPrefix returns the invoice numbers for one day's prefix. Called
// inside the create transaction so the scan and the insert see the same state.
func (r *InvoiceRepo) ListNumbersByPrefix(prefix string) ([]string, error) {
	query := `SELECT invoice_number FROM invoices WHERE invoice_number LIKE $1 || '%'`
	rows, err := r.q.Query(context.Background(), query, prefix)
	if err != nil {
		return nil, fmt.Errorf("list invoice numbers: %w", err)
	}
	defer rows.Close()

	var numbers []string
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, fmt.Errorf("scan invoice number: %w", err)
		}
		numbers = append(numbers, n)
	}
	return numbers, rows.Err()
}

func (r *InvoiceRepo) scanMany(query, op string, args ...any) ([]*entity.Invoice, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var list []*entity.Invoice
	for rows.Next() {
		var inv entity.Invoice
		if err := rows.Scan(
			&inv.ID, &inv.InvoiceNumber, &inv.CustomerID, &inv.Date,
			&inv.Subtotal, &inv.CGST, &inv.SGST, &inv.RoundOff,
			&inv.GrandTotal, &inv.PaidAmount, &inv.Balance,
			&inv.PaymentMode, &inv.DueDate, &inv.Branch, &inv.CreatedBy,
			&inv.CreatedAt, &inv.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, &inv)
	}
	return list, rows.Err()
}
