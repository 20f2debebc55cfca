package entity

import "time"

// User roles.
const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// User represents an operator account. PasswordHash is a bcrypt hash; the
// plain password never leaves the login request.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	Name         string
	Role         string // admin, staff
	Branch       string
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
