package dto

type CreateCustomerRequest struct {
	Name          string  `json:"name"           validate:"required,min=1,max=120"`
	Phone         *string `json:"phone"          validate:"omitempty,max=30"`
	Email         *string `json:"email"          validate:"omitempty,email"`
	Address       *string `json:"address"`
	LoyaltyPoints int     `json:"loyalty_points" validate:"min=0"`
}

type UpdateCustomerRequest struct {
	Name          *string `json:"name"           validate:"omitempty,min=1,max=120"`
	Phone         *string `json:"phone"          validate:"omitempty,max=30"`
	Email         *string `json:"email"          validate:"omitempty,email"`
	Address       *string `json:"address"`
	LoyaltyPoints *int    `json:"loyalty_points" validate:"omitempty,min=0"`
}

type CustomerResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Phone         *string `json:"phone"`
	Email         *string `json:"email"`
	Address       *string `json:"address"`
	LoyaltyPoints int     `json:"loyalty_points"`
	// LoyaltyDiscountPct is the derived checkout discount (1% per 100 points,
	// capped at 10) — computed per response, never persisted.
	LoyaltyDiscountPct int `json:"loyalty_discount_pct"`
}
