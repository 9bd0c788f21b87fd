package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateProductRequest struct {
	Name        string           `json:"name"        validate:"required,min=1,max=120"`
	Description *string          `json:"description"`
	Price       decimal.Decimal  `json:"price"       validate:"required,gt=0"`
	Cost        *decimal.Decimal `json:"cost"        validate:"omitempty,gte=0"`
	Quantity    int              `json:"quantity"    validate:"min=0"`
	Barcode     *string          `json:"barcode"     validate:"omitempty,min=4,max=18"`
}

type UpdateProductRequest struct {
	Name        *string          `json:"name"        validate:"omitempty,min=1,max=120"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"       validate:"omitempty,gt=0"`
	Cost        *decimal.Decimal `json:"cost"        validate:"omitempty,gte=0"`
	Quantity    *int             `json:"quantity"    validate:"omitempty,min=0"`
	Barcode     *string          `json:"barcode"     validate:"omitempty,min=4,max=18"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProductResponse struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description *string          `json:"description"`
	Price       decimal.Decimal  `json:"price"`
	Cost        *decimal.Decimal `json:"cost"`
	Quantity    int              `json:"quantity"`
	Barcode     *string          `json:"barcode"`
	CreatedAt   string           `json:"created_at"`
}
