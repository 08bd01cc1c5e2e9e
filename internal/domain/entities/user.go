package entities

import (
	"github.com/google/uuid"
)

// UserRole represents administrative account roles
type UserRole string

const (
	UserRoleAdmin UserRole = "admin"
	UserRoleUser  UserRole = "user"
)

// User represents an administrative account. The admin login endpoint
// currently checks a fixed credential pair instead of this table; the
// table is kept and seeded so the schema matches the admin panel's
// expectations.
type User struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Password string    `json:"-"`
	Role     UserRole  `json:"role"`
}

// AdminLoginInput is the admin panel login request. No binding rules:
// anything other than the fixed pair is rejected with 401, empty strings
// included.
type AdminLoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AdminLoginResponse carries the placeholder session token
type AdminLoginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
	Message string `json:"message"`
}
