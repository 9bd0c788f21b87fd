package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a catalog entry managed from the inventory screen.
// Price must be positive and quantity non-negative; both are enforced at the
// service boundary before any write reaches the store.
type Product struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string    `gorm:"index;not null"`
	Description *string
	Price       decimal.Decimal  `gorm:"type:decimal(12,2);not null"`
	Cost        *decimal.Decimal `gorm:"type:decimal(12,2)"`
	Quantity    int              `gorm:"not null;default:0"`
	Barcode     *string          `gorm:"uniqueIndex"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
