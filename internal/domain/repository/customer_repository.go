package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/vyapari/billing-api/internal/domain/entity"
)

// CustomerRepository persistence port for customers.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	GetByPhone(phone string) (*entity.Customer, error)
	List(limit, offset int) ([]*entity.Customer, error)
	Update(customer *entity.Customer) error
	// AddPurchase accumulates purchase totals: total_purchases += amount,
	// total_orders += 1, last_purchase_date = purchasedAt.
	AddPurchase(customerID string, amount decimal.Decimal, purchasedAt time.Time) error
	Delete(id string) error
}
