package security_test

import (
	"testing"
	"time"

	"prospace-backend/internal/security"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	tm := security.NewTokenManager("unit-test-secret-key", time.Hour)

	token, err := tm.GenerateAccessToken("user-1", "alice@example.com", "ADMIN")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := tm.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, "ADMIN", claims.Role)
	assert.Equal(t, "prospace", claims.Issuer)
}

func TestValidateToken_Expired(t *testing.T) {
	tm := security.NewTokenManager("unit-test-secret-key", -time.Minute)

	token, err := tm.GenerateAccessToken("user-1", "alice@example.com", "USER")
	require.NoError(t, err)

	_, err = tm.ValidateToken(token)
	assert.ErrorIs(t, err, security.ErrExpiredToken)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	tm := security.NewTokenManager("unit-test-secret-key", time.Hour)
	other := security.NewTokenManager("a-different-secret", time.Hour)

	token, err := tm.GenerateAccessToken("user-1", "alice@example.com", "USER")
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.ErrorIs(t, err, security.ErrInvalidToken)
}

func TestValidateToken_Garbage(t *testing.T) {
	tm := security.NewTokenManager("unit-test-secret-key", time.Hour)

	_, err := tm.ValidateToken("not.a.token")
	assert.ErrorIs(t, err, security.ErrInvalidToken)
}
