package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer types.
const (
	CustomerTypeRetail    = "Retail"
	CustomerTypeWholesale = "Wholesale"
)

// Customer represents a billing customer. TotalPurchases, TotalOrders and
// LastPurchaseDate are maintained by the invoice use case, not by the client.
type Customer struct {
	ID               string
	Name             string
	Phone            string
	Address          string
	Email            string
	GSTIN            string // optional; empty for unregistered buyers
	CustomerType     string // Retail, Wholesale
	Status           string // active, inactive
	TotalPurchases   decimal.Decimal
	TotalOrders      int
	LastPurchaseDate *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
