package model

// Role is the closed set of user roles.
type Role string

const (
	RoleAdministrator   Role = "ADMINISTRATOR"
	RoleWarehouseKeeper Role = "WAREHOUSE_KEEPER"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdministrator, RoleWarehouseKeeper:
		return true
	}
	return false
}

// Principal is the verified acting identity, extracted from JWT claims by
// the auth middleware and passed explicitly into service calls that need an
// authorization decision.
type Principal struct {
	UserID   string
	Username string
	Role     Role
}

func (p Principal) IsAdministrator() bool {
	return p.Role == RoleAdministrator
}

// Authorization policy table (role x operation). Everything not listed here
// is decided inline as "administrator or self".
func (p Principal) CanListUsers() bool       { return p.IsAdministrator() }
func (p Principal) CanCreateUsers() bool     { return p.IsAdministrator() }
func (p Principal) CanDeactivateUsers() bool { return p.IsAdministrator() }
