package dto

type CreateSupplierRequest struct {
	Name          string  `json:"name"           validate:"required,min=1,max=120"`
	ContactPerson *string `json:"contact_person" validate:"omitempty,max=120"`
	Phone         *string `json:"phone"          validate:"omitempty,max=30"`
	Email         *string `json:"email"          validate:"omitempty,email"`
	Address       *string `json:"address"`
}

type SupplierResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	ContactPerson *string `json:"contact_person"`
	Phone         *string `json:"phone"`
	Email         *string `json:"email"`
	Address       *string `json:"address"`
}
