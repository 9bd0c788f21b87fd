package dto

import "github.com/shopspring/decimal"

// ─── Checkout ────────────────────────────────────────────────────────────────

type CartItemRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	Quantity  int    `json:"quantity"   validate:"required,min=1"`
}

type CheckoutRequest struct {
	// CustomerID is empty for walk-in customers.
	CustomerID string            `json:"customer_id"  validate:"omitempty,uuid"`
	Items      []CartItemRequest `json:"items"        validate:"dive"`
	// Discounts: an explicit amount wins over an explicit percentage, which
	// wins over the loyalty-derived percentage.
	DiscountPct    *decimal.Decimal `json:"discount_pct"    validate:"omitempty,gte=0,lte=100"`
	DiscountAmount *decimal.Decimal `json:"discount_amount" validate:"omitempty,gte=0"`
	PaymentMethod  string           `json:"payment_method"  validate:"omitempty,oneof=cash card mobile"`
	AmountReceived *decimal.Decimal `json:"amount_received" validate:"omitempty,gte=0"`
}

type TransactionItemResponse struct {
	ProductID string          `json:"product_id"`
	Product   string          `json:"product"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

type TransactionResponse struct {
	ID             string                    `json:"id"`
	CustomerID     *string                   `json:"customer_id"`
	CustomerName   string                    `json:"customer_name"`
	Items          []TransactionItemResponse `json:"items"`
	Subtotal       decimal.Decimal           `json:"subtotal"`
	DiscountAmount decimal.Decimal           `json:"discount_amount"`
	TaxAmount      decimal.Decimal           `json:"tax_amount"`
	TotalAmount    decimal.Decimal           `json:"total_amount"`
	Change         *decimal.Decimal          `json:"change,omitempty"`
	PaymentMethod  string                    `json:"payment_method"`
	Status         string                    `json:"status"`
	CreatedAt      string                    `json:"created_at"`
}

type TransactionListResponse struct {
	Data  []TransactionResponse `json:"data"`
	Total int64                 `json:"total"`
	Page  int                   `json:"page"`
	Limit int                   `json:"limit"`
}

type TransactionFilter struct {
	Page  int `form:"page,default=1"   validate:"min=1"`
	Limit int `form:"limit,default=50" validate:"min=1,max=200"`
}
