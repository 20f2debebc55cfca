package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateCustomerRequest input for creating a customer.
type CreateCustomerRequest struct {
	Name         string `json:"name" validate:"required,min=1,max=200"`
	Phone        string `json:"phone" validate:"required,min=6,max=20"`
	Address      string `json:"address"`
	Email        string `json:"email" validate:"omitempty,email"`
	GSTIN        string `json:"gstin" validate:"omitempty,len=15"`
	CustomerType string `json:"customer_type" validate:"omitempty,oneof=Retail Wholesale"`
}

// UpdateCustomerRequest input for updating a customer. Purchase stats are
// excluded; only the invoice use case writes those.
type UpdateCustomerRequest struct {
	Name         *string `json:"name" validate:"omitempty,min=1,max=200"`
	Phone        *string `json:"phone" validate:"omitempty,min=6,max=20"`
	Address      *string `json:"address"`
	Email        *string `json:"email" validate:"omitempty,email"`
	GSTIN        *string `json:"gstin" validate:"omitempty,len=15"`
	CustomerType *string `json:"customer_type" validate:"omitempty,oneof=Retail Wholesale"`
	Status       *string `json:"status" validate:"omitempty,oneof=active inactive"`
}

// CustomerResponse customer output.
type CustomerResponse struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Phone            string          `json:"phone"`
	Address          string          `json:"address"`
	Email            string          `json:"email"`
	GSTIN            string          `json:"gstin"`
	CustomerType     string          `json:"customer_type"`
	Status           string          `json:"status"`
	TotalPurchases   decimal.Decimal `json:"total_purchases"`
	TotalOrders      int             `json:"total_orders"`
	LastPurchaseDate *time.Time      `json:"last_purchase_date,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// CustomerListResponse paginated customer list.
type CustomerListResponse struct {
	Items []CustomerResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
