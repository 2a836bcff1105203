package user

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"    // Full access, can view all attendance, decide leave, edit payroll
	RoleEmployee Role = "employee" // Regular employee
)

type User struct {
	ID                string
	Email             string
	PasswordHash      *string
	Role              Role
	Phone             *string
	Address           *string
	ProfilePictureURL *string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// IsAdmin checks if user holds the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
