package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction is a completed sale. CustomerID is nil for walk-in customers;
// CustomerName then carries the display fallback.
//
// The header and its items are written in two separate inserts; if the item
// insert fails after the header insert succeeds, the header persists as an
// orphan. See the transaction service for details.
type Transaction struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CustomerID     *uuid.UUID `gorm:"type:uuid;index"`
	CustomerName   string     `gorm:"not null"`
	TotalAmount    decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	DiscountAmount decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	TaxAmount      decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	PaymentMethod  string          `gorm:"type:varchar(20);not null;default:'cash'"`
	Status         string          `gorm:"type:varchar(20);not null;default:'completed'"`
	CreatedAt      time.Time       `gorm:"index"`

	Customer *Customer         `gorm:"foreignKey:CustomerID"`
	Items    []TransactionItem `gorm:"foreignKey:TransactionID"`
}

// TransactionItem is a single cart line frozen at sale time.
type TransactionItem struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TransactionID uuid.UUID       `gorm:"type:uuid;index;not null"`
	ProductID     uuid.UUID       `gorm:"type:uuid;not null"`
	Quantity      int             `gorm:"not null"`
	Price         decimal.Decimal `gorm:"type:decimal(12,2);not null"`

	Product *Product `gorm:"foreignKey:ProductID"`
}
