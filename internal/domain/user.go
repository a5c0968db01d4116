package domain

import "time"

// Role is a user's authorization role
type Role string

const (
	RoleUser  Role = "user"
	RoleOwner Role = "owner"
	RoleAdmin Role = "admin"
)

// User is the read-side identity record. Account management lives in a
// separate system; this service only consumes id, role and contact data.
type User struct {
	ID        int64
	Name      string
	Email     string
	Phone     *string
	Role      Role
	CreatedAt time.Time
}

// IsAdmin returns true for admin users
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// CanManageListings returns true for owners and admins
func (u *User) CanManageListings() bool {
	return u.Role == RoleOwner || u.Role == RoleAdmin
}
