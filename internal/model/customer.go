package model

import (
	"time"

	"github.com/google/uuid"
)

// Customer is a registry entry. LoyaltyPoints derive an ad hoc checkout
// discount (1% per 100 points, capped at 10%) — the derivation is never
// persisted.
type Customer struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name          string    `gorm:"index;not null"`
	Phone         *string
	Email         *string
	Address       *string
	LoyaltyPoints int `gorm:"not null;default:0"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
