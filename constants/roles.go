package constants

// User roles
const (
	RoleCustomer   = "customer"
	RoleOperator   = "operator"
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super_admin"

	// Special role marker: any authenticated caller
	RoleAny = "any"
)

// Role groups for convenience
var (
	AdminRoles = []string{
		RoleAdmin,
		RoleSuperAdmin,
	}

	RegistrableRoles = []string{
		RoleCustomer,
		RoleOperator,
	}
)

// IsAdminRole reports whether the given role carries moderation privileges.
func IsAdminRole(role string) bool {
	return role == RoleAdmin || role == RoleSuperAdmin
}
