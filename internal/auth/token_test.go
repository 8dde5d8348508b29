package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	m := NewTokenManager("test-secret", 7*24*time.Hour)

	token, err := m.GenerateToken("user-1", "a@b.com")
	require.NoError(t, err)

	claims, err := m.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "a@b.com", claims.Email)
	assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestValidateTokenRejectsWrongKey(t *testing.T) {
	token, err := NewTokenManager("one", time.Hour).GenerateToken("u", "e")
	require.NoError(t, err)

	_, err = NewTokenManager("two", time.Hour).ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	m := NewTokenManager("secret", -time.Minute)
	token, err := m.GenerateToken("u", "e")
	require.NoError(t, err)

	_, err = m.ValidateToken(token)
	var vErr *jwt.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.NotZero(t, vErr.Errors&jwt.ValidationErrorExpired)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("hunter2")
	require.NoError(t, err)
	assert.True(t, CheckPassword(hash, "hunter2"))
	assert.False(t, CheckPassword(hash, "hunter3"))
}
