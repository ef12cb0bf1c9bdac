package models

type UserRole string

const (
	UserRoleAdmin UserRole = "admin"
	UserRoleUser  UserRole = "user"
)

// IsValid reports whether the role is one of the closed set of roles.
func (r UserRole) IsValid() bool {
	return r == UserRoleAdmin || r == UserRoleUser
}
