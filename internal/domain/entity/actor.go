package entity

import (
	"github.com/golang-jwt/jwt/v5"
)

// Actor is the authenticated identity attached to a request after the auth
// middleware has verified the token and reloaded the account. It never
// carries the password hash.
type Actor struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Role        Role   `json:"role"`
	Status      Status `json:"status"`
	InstituteID string `json:"instituteId,omitempty"`
}

// IsAdmin reports whether the actor holds the admin role.
func (a *Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// Claims are the JWT claims carried by access tokens.
type Claims struct {
	UserID string `json:"user_id"`
	Role   Role   `json:"role"`
	jwt.RegisteredClaims
}
