package types

import "github.com/golang-jwt/jwt/v5"

// Claims represents the admin session JWT claims
type Claims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}
