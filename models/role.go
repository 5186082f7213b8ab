package models

// Role identifies the concrete kind of account and drives both the
// provisioning dispatch and the per-endpoint authorization checks.
type Role string

// The complete set of roles known to the system. Every persisted account
// carries exactly one of these values.
const (
	RoleStudent Role = "STUDENT"
	RoleParent  Role = "PARENT"
	RoleTeacher Role = "TEACHER"
	RoleAdmin   Role = "ADMIN"
	RoleChef    Role = "CHEF"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleParent, RoleTeacher, RoleAdmin, RoleChef:
		return true
	default:
		return false
	}
}

// In reports whether r is a member of the given role set.
func (r Role) In(roles ...Role) bool {
	for _, candidate := range roles {
		if r == candidate {
			return true
		}
	}
	return false
}

// String returns the string representation of the role.
// It implements the [fmt.Stringer] interface.
func (r Role) String() string {
	return string(r)
}
