package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Purchase order statuses.
const (
	OrderPending   = "pending"
	OrderReceived  = "received"
	OrderCancelled = "cancelled"
)

// PurchaseOrder lives in Redis only — purchase orders are not persisted in
// the relational store in this revision. No gorm tags, JSON is the wire and
// storage shape.
type PurchaseOrder struct {
	ID           uuid.UUID           `json:"id"`
	SupplierID   uuid.UUID           `json:"supplier_id"`
	SupplierName string              `json:"supplier_name"`
	Items        []PurchaseOrderItem `json:"items"`
	Status       string              `json:"status"` // pending | received | cancelled
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}

// PurchaseOrderItem is a single line of a purchase order.
type PurchaseOrderItem struct {
	ProductID   uuid.UUID       `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}
