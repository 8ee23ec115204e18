package constant

// Role is the dashboard-wide user role carried in the JWT payload. Admin and
// SuperAdmin gate project mutations; User is read-only.
type Role string

const (
	RoleAdmin      Role = "Admin"
	RoleSuperAdmin Role = "SuperAdmin"
	RoleUser       Role = "User"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleSuperAdmin, RoleUser:
		return true
	}
	return false
}
