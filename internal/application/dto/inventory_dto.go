package dto

import "time"

// StockMovementRequest input for a manual stock change.
type StockMovementRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Type      string `json:"type" validate:"required,oneof=IN OUT"`
	Reason    string `json:"reason" validate:"required,oneof=Purchase Return Adjustment Billing Damage"`
	Quantity  int64  `json:"quantity" validate:"required,min=1"`
	Reference string `json:"reference"`
	Notes     string `json:"notes"`
}

// StockLogResponse one ledger row.
type StockLogResponse struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"product_id"`
	ProductName string    `json:"product_name"`
	Type        string    `json:"type"`
	Reason      string    `json:"reason"`
	Quantity    int64     `json:"quantity"`
	OldStock    int64     `json:"old_stock"`
	NewStock    int64     `json:"new_stock"`
	Reference   string    `json:"reference"`
	Notes       string    `json:"notes"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
}

// StockLogListResponse paginated ledger listing.
type StockLogListResponse struct {
	Items []StockLogResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
