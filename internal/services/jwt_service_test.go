package services

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(t *testing.T) *JWTService {
	t.Setenv("JWT_SECRET", "unit-test-secret")
	return NewJWTService()
}

func TestJWT_GenerateAndValidate(t *testing.T) {
	s := newTestJWTService(t)

	token, err := s.GenerateToken(42, "alice@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := s.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, 42, claims.UserID)
	assert.Equal(t, "alice@example.com", claims.Email)
}

func TestJWT_TamperedTokenRejected(t *testing.T) {
	s := newTestJWTService(t)

	token, err := s.GenerateToken(42, "alice@example.com")
	require.NoError(t, err)

	_, err = s.ValidateToken(token + "x")
	assert.Error(t, err)
}

func TestJWT_WrongSecretRejected(t *testing.T) {
	s := newTestJWTService(t)
	token, err := s.GenerateToken(1, "bob@example.com")
	require.NoError(t, err)

	os.Setenv("JWT_SECRET", "another-secret")
	other := NewJWTService()

	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}
