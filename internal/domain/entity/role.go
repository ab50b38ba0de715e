package entity

// Role represents the marketplace role assigned to a user.
type Role string

const (
	// RoleUser is a regular collector.
	RoleUser Role = "USER"
	// RoleCreator is a verified creator account.
	RoleCreator Role = "CREATOR"
	// RoleAdmin can moderate listings.
	RoleAdmin Role = "ADMIN"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleCreator, RoleAdmin:
		return true
	default:
		return false
	}
}
