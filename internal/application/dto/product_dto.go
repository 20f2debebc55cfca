package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest input for creating a product.
type CreateProductRequest struct {
	Name         string          `json:"name" validate:"required,min=1,max=200"`
	Brand        string          `json:"brand"`
	Category     string          `json:"category" validate:"required"`
	Price        decimal.Decimal `json:"price"`
	Stock        int64           `json:"stock" validate:"min=0"`
	MinStock     int64           `json:"min_stock" validate:"min=0"`
	Unit         string          `json:"unit"`
	GSTRate      decimal.Decimal `json:"gst_rate"`
	HSNCode      string          `json:"hsn_code"`
	SerialNumber string          `json:"serial_number"`
	Warranty     string          `json:"warranty"`
	Model        string          `json:"model"`
	Branch       string          `json:"branch"`
}

// UpdateProductRequest input for updating a product. Stock is absent on
// purpose: stock changes go through inventory movements so the ledger stays
// paired with every transition.
type UpdateProductRequest struct {
	Name         *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Brand        *string          `json:"brand"`
	Category     *string          `json:"category"`
	Price        *decimal.Decimal `json:"price"`
	MinStock     *int64           `json:"min_stock" validate:"omitempty,min=0"`
	Unit         *string          `json:"unit"`
	Status       *string          `json:"status" validate:"omitempty,oneof=active inactive"`
	GSTRate      *decimal.Decimal `json:"gst_rate"`
	HSNCode      *string          `json:"hsn_code"`
	SerialNumber *string          `json:"serial_number"`
	Warranty     *string          `json:"warranty"`
	Model        *string          `json:"model"`
	Branch       *string          `json:"branch"`
}

// ProductResponse product output.
type ProductResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Brand        string          `json:"brand"`
	Category     string          `json:"category"`
	Price        decimal.Decimal `json:"price"`
	Stock        int64           `json:"stock"`
	MinStock     int64           `json:"min_stock"`
	Unit         string          `json:"unit"`
	Status       string          `json:"status"`
	GSTRate      decimal.Decimal `json:"gst_rate"`
	HSNCode      string          `json:"hsn_code"`
	SerialNumber string          `json:"serial_number"`
	Warranty     string          `json:"warranty"`
	Model        string          `json:"model"`
	Branch       string          `json:"branch"`
	CreatedBy    string          `json:"created_by"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ProductListResponse paginated product list.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
