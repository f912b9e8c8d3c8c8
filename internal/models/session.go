package models

import "github.com/golang-jwt/jwt/v5"

// SessionClaims is the payload of the bearer token issued by the SGI API
// and forwarded by the browser on every request.
type SessionClaims struct {
	UserID   string `json:"user_id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}
