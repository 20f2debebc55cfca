package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product statuses.
const (
	ProductStatusActive   = "active"
	ProductStatusInactive = "inactive"
)

// Product represents a catalog item. Stock is the on-hand quantity at the
// product's branch; every change to it goes through the stock ledger.
type Product struct {
	ID           string
	Name         string
	Brand        string
	Category     string
	Price        decimal.Decimal // selling price per unit, inclusive of nothing (GST zeroed in the active flow)
	Stock        int64
	MinStock     int64 // low-stock threshold for reports
	Unit         string
	Status       string          // active, inactive
	GSTRate      decimal.Decimal // percent, e.g. 18; carried but zero-applied in billing
	HSNCode      string
	SerialNumber string
	Warranty     string
	Model        string
	Branch       string
	CreatedBy    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
