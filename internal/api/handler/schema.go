package handler

import (
	"github.com/vigilia/contracts-api/internal/app"
	"github.com/vigilia/contracts-api/internal/core/domain"
)

type registerRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

type createAddressRequest struct {
	Alias  string `json:"alias" validate:"required"`
	Street string `json:"street" validate:"required"`
	City   string `json:"city" validate:"required"`
}

type createContractRequest struct {
	ServiceIDs []string `json:"service_ids" validate:"required,min=1"`
	AddressID  string   `json:"address_id" validate:"required"`
}

type navigateRequest struct {
	View string `json:"view" validate:"required"`
}

type navigateResponse struct {
	View app.View `json:"view"`
}

type toggleCartRequest struct {
	ServiceID string `json:"service_id" validate:"required"`
}

type toggleCartResponse struct {
	Selected bool     `json:"selected"`
	Total    int64    `json:"total"`
	Services []string `json:"services"`
}

type messageResponse struct {
	Message string `json:"message"`
}
