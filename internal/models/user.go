package models

import "time"

// Role is the account role fixed at registration
type Role string

const (
	RoleMentor Role = "mentor"
	RoleMentee Role = "mentee"
)

// Valid reports whether the role is one of the accepted account roles
func (r Role) Valid() bool {
	return r == RoleMentor || r == RoleMentee
}

// User is a registered account. The password hash is excluded from JSON so it
// can never leak into a response body.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Identity is the authenticated caller attached to a request by the auth
// gate and passed explicitly into every service method that needs it.
type Identity struct {
	ID    string
	Email string
	Role  Role
}

// RegisterRequest is the payload for POST /api/auth/register
type RegisterRequest struct {
	Name     string `json:"name" binding:"required,max=255"`
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,max=72"`
	Role     string `json:"role" binding:"required,oneof=mentor mentee"`
}

// LoginRequest is the payload for POST /api/auth/login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,max=255"`
	Password string `json:"password" binding:"required,max=72"`
}

// AuthResponse is returned by register and login
type AuthResponse struct {
	Message string `json:"message"`
	User    *User  `json:"user"`
	Token   string `json:"token"`
}

// ProfileResponse is returned by GET /api/auth/profile
type ProfileResponse struct {
	User *User `json:"user"`
}
