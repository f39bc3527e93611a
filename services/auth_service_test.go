package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laptop-service-center/config"
	"laptop-service-center/utils"
)

func TestStaticAuthenticatorPlaintextPassword(t *testing.T) {
	auth, err := NewStaticAuthenticator(config.AdminConfig{Username: "admin", Password: "admin123"})
	require.NoError(t, err)

	user, err := auth.Authenticate(context.Background(), "admin", "admin123")
	require.NoError(t, err)
	assert.Equal(t, &AdminUser{Username: "admin", Role: "administrator"}, user)

	for _, pair := range [][2]string{{"admin", "wrong"}, {"root", "admin123"}, {"", ""}, {"Admin", "admin123"}} {
		_, err := auth.Authenticate(context.Background(), pair[0], pair[1])
		assert.ErrorIs(t, err, ErrInvalidCredentials, "%v", pair)
	}
}

func TestStaticAuthenticatorPasswordHash(t *testing.T) {
	hash, err := utils.HashPassword("s3cret")
	require.NoError(t, err)

	auth, err := NewStaticAuthenticator(config.AdminConfig{Username: "owner", Password: "ignored", PasswordHash: hash})
	require.NoError(t, err)

	_, err = auth.Authenticate(context.Background(), "owner", "s3cret")
	assert.NoError(t, err)
	_, err = auth.Authenticate(context.Background(), "owner", "ignored")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestTokenIssuerRoundTrip(t *testing.T) {
	issuer := NewTokenIssuer(config.JWTConfig{Secret: "secret", ExpiryHours: 1})

	token, err := issuer.Issue(&AdminUser{Username: "admin", Role: RoleAdmin})
	require.NoError(t, err)

	claims, err := issuer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, RoleAdmin, claims.Role)

	other := NewTokenIssuer(config.JWTConfig{Secret: "different", ExpiryHours: 1})
	_, err = other.Verify(token)
	assert.Error(t, err)
}
