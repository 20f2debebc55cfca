package entity

import "time"

// Stock movement directions.
const (
	StockTypeIn  = "IN"
	StockTypeOut = "OUT"
)

// Stock movement reasons.
const (
	StockReasonPurchase   = "Purchase"
	StockReasonReturn     = "Return"
	StockReasonAdjustment = "Adjustment"
	StockReasonBilling    = "Billing"
	StockReasonDamage     = "Damage"
)

// StockLog is an append-only ledger entry recording one oldStock -> newStock
// transition. A row is written in the same transaction as the product stock
// update; a stock change without its ledger row must not be observable.
type StockLog struct {
	ID          string
	ProductID   string
	ProductName string
	Type        string // IN, OUT
	Reason      string // Purchase, Return, Adjustment, Billing, Damage
	Quantity    int64  // always positive; Type carries the direction
	OldStock    int64
	NewStock    int64
	Reference   string // invoice number for Billing rows, free text otherwise
	Notes       string
	CreatedBy   string
	CreatedAt   time.Time
}

// ValidStockReason reports whether reason is one of the ledger reasons.
func ValidStockReason(reason string) bool {
	switch reason {
	case StockReasonPurchase, StockReasonReturn, StockReasonAdjustment,
		StockReasonBilling, StockReasonDamage:
		return true
	}
	return false
}
