package dto

type NavigateRequest struct {
	Screen string `json:"screen" validate:"required"`
}

type SetLanguageRequest struct {
	Language string `json:"language" validate:"required,oneof=en sw ar"`
}

type SessionStateResponse struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Screen   string `json:"screen"`
	Language string `json:"language"`
	RTL      bool   `json:"rtl"`
}
