// Package authorization holds the role model and caller-side policy checks.
// The lifecycle engine itself is authorization-agnostic; routes enforce
// policy before invoking it.
package authorization

type UserRole string

const (
	RoleAdmin        UserRole = "admin"
	RoleReceptionist UserRole = "receptionist"
	RoleOwner        UserRole = "owner"
	RoleTenant       UserRole = "tenant"
)

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) IsAdmin() bool {
	return r == RoleAdmin
}

// IsStaff reports whether the role may operate tickets (dispatch, start,
// complete, close, reopen).
func (r UserRole) IsStaff() bool {
	return r == RoleAdmin || r == RoleReceptionist
}

func (r UserRole) IsValid() bool {
	switch r {
	case RoleAdmin, RoleReceptionist, RoleOwner, RoleTenant:
		return true
	}
	return false
}

func ParseUserRole(s string) UserRole {
	role := UserRole(s)
	if role.IsValid() {
		return role
	}
	return RoleTenant
}
