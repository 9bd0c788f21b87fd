package dto

import "github.com/shopspring/decimal"

type PurchaseOrderItemRequest struct {
	ProductID string          `json:"product_id" validate:"required,uuid"`
	Quantity  int             `json:"quantity"   validate:"required,min=1"`
	UnitPrice decimal.Decimal `json:"unit_price" validate:"required,gt=0"`
}

type CreatePurchaseOrderRequest struct {
	SupplierID string                     `json:"supplier_id" validate:"required,uuid"`
	Items      []PurchaseOrderItemRequest `json:"items"       validate:"required,min=1,dive"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending received cancelled"`
}

type PurchaseOrderItemResponse struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

type PurchaseOrderResponse struct {
	ID           string                      `json:"id"`
	SupplierID   string                      `json:"supplier_id"`
	SupplierName string                      `json:"supplier_name"`
	Items        []PurchaseOrderItemResponse `json:"items"`
	TotalCost    decimal.Decimal             `json:"total_cost"`
	Status       string                      `json:"status"`
	CreatedAt    string                      `json:"created_at"`
}
