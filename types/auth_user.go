package types

import (
	"emptyleg-marketplace/constants"
)

// AuthUser is the resolved identity of an authenticated caller, attached to
// the request context by the auth middleware. A nil *AuthUser means the
// caller is anonymous.
type AuthUser struct {
	UserID uint   `json:"user_id"`
	Role   string `json:"role"`
}

// IsAdmin reports whether the caller may moderate flights and airports.
func (a *AuthUser) IsAdmin() bool {
	return a != nil && constants.IsAdminRole(a.Role)
}

// IsOperator reports whether the caller is an operator account.
func (a *AuthUser) IsOperator() bool {
	return a != nil && a.Role == constants.RoleOperator
}
