package jwt

import (
	"context"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAccessToken(t *testing.T) {
	service := NewJWTService("test-secret-key", "1h")

	token, expiresAt, err := service.GenerateAccessToken("user-123", "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	assert.InDelta(t, time.Now().Add(time.Hour).Unix(), expiresAt, 5)

	decoded, err := jwtauth.VerifyToken(service.JWTAuth(), token)
	require.NoError(t, err)

	claims, err := decoded.AsMap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims["user_id"])
	assert.Equal(t, "admin", claims["username"])
	assert.Equal(t, "access", claims["type"])
}

func TestGenerateAccessTokenBadDuration(t *testing.T) {
	service := NewJWTService("test-secret-key", "not-a-duration")

	_, _, err := service.GenerateAccessToken("user-123", "admin")
	assert.Error(t, err)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	issuer := NewJWTService("secret-one", "1h")
	verifier := NewJWTService("secret-two", "1h")

	token, _, err := issuer.GenerateAccessToken("user-123", "admin")
	require.NoError(t, err)

	_, err = jwtauth.VerifyToken(verifier.JWTAuth(), token)
	assert.Error(t, err)
}

func TestRevokeToken(t *testing.T) {
	service := NewJWTService("test-secret-key", "1h")

	token, _, err := service.GenerateAccessToken("user-123", "admin")
	require.NoError(t, err)

	assert.False(t, service.IsTokenRevoked(token))
	service.RevokeToken(token)
	assert.True(t, service.IsTokenRevoked(token))
}
