package auth

import (
	"time"

	"emptyleg-marketplace/constants"
	"emptyleg-marketplace/models/user"
	"emptyleg-marketplace/types"
)

// RegisterRequest carries the signup payload. Customers supply first/last
// name, operators a company name; admins are never self-registered.
type RegisterRequest struct {
	Email       string `json:"email" validate:"required,email,max=255"`
	Password    string `json:"password" validate:"required,min=8,max=72"`
	Role        string `json:"role" validate:"required,oneof=customer operator"`
	FirstName   string `json:"first_name" validate:"omitempty,max=255"`
	LastName    string `json:"last_name" validate:"omitempty,max=255"`
	Phone       string `json:"phone" validate:"omitempty,max=20"`
	CompanyName string `json:"company_name" validate:"omitempty,max=255"`
}

func (r RegisterRequest) Validate() error {
	if err := types.ValidateStruct(r); err != nil {
		return err
	}
	switch r.Role {
	case constants.RoleCustomer:
		if r.FirstName == "" || r.LastName == "" {
			return types.NewValidationError("first_name and last_name are required for customers")
		}
	case constants.RoleOperator:
		if r.CompanyName == "" {
			return types.NewValidationError("company_name is required for operators")
		}
	}
	return nil
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (r LoginRequest) Validate() error {
	return types.ValidateStruct(r)
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

func (r RefreshRequest) Validate() error {
	return types.ValidateStruct(r)
}

// TokenPair is the short-lived access token plus the opaque refresh token.
type TokenPair struct {
	AccessToken      string    `json:"access_token"`
	AccessExpiresAt  time.Time `json:"access_expires_at"`
	RefreshToken     string    `json:"refresh_token"`
	RefreshExpiresAt time.Time `json:"refresh_expires_at"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	User   user.User `json:"user"`
	Tokens TokenPair `json:"tokens"`
}
