package services

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"laptop-service-center/config"
	"laptop-service-center/types"
	"laptop-service-center/utils"
)

const RoleAdmin = "administrator"

// AdminUser is the identity returned by a successful login
type AdminUser struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Authenticator checks an admin credential pair
type Authenticator interface {
	Authenticate(ctx context.Context, username, password string) (*AdminUser, error)
}

// StaticAuthenticator accepts a single configured username and bcrypt hash
type StaticAuthenticator struct {
	username     string
	passwordHash string
}

// NewStaticAuthenticator uses cfg.PasswordHash when set and otherwise hashes cfg.Password
func NewStaticAuthenticator(cfg config.AdminConfig) (*StaticAuthenticator, error) {
	hash := cfg.PasswordHash
	if hash == "" {
		var err error
		hash, err = utils.HashPassword(cfg.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash admin password: %w", err)
		}
	}
	return &StaticAuthenticator{username: cfg.Username, passwordHash: hash}, nil
}

func (a *StaticAuthenticator) Authenticate(_ context.Context, username, password string) (*AdminUser, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.username)) == 1
	passOK := utils.CheckPasswordHash(password, a.passwordHash)
	if !userOK || !passOK {
		return nil, ErrInvalidCredentials
	}
	return &AdminUser{Username: a.username, Role: RoleAdmin}, nil
}

// TokenIssuer signs and verifies admin session tokens
type TokenIssuer struct {
	secret string
	ttl    time.Duration
}

func NewTokenIssuer(cfg config.JWTConfig) *TokenIssuer {
	return &TokenIssuer{
		secret: cfg.Secret,
		ttl:    time.Duration(cfg.ExpiryHours) * time.Hour,
	}
}

func (t *TokenIssuer) Issue(user *AdminUser) (string, error) {
	return utils.GenerateToken(user.Username, user.Role, t.secret, t.ttl)
}

func (t *TokenIssuer) Verify(token string) (*types.Claims, error) {
	return utils.VerifyToken(token, t.secret)
}
