package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": 1,
		"exp":     exp.Unix(),
	})
	s, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return s
}

func TestTokenExpired(t *testing.T) {
	assert.False(t, TokenExpired(signedToken(t, time.Now().Add(time.Hour))))
	assert.True(t, TokenExpired(signedToken(t, time.Now().Add(-time.Minute))))
}

func TestTokenExpiredWithoutExpClaim(t *testing.T) {
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"user_id": 1})
	s, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	assert.False(t, TokenExpired(s), "tokens without exp are left to the server")
}

func TestTokenExpiredToleratesGarbage(t *testing.T) {
	assert.False(t, TokenExpired(""))
	assert.False(t, TokenExpired("not.a.jwt"))
	assert.False(t, TokenExpired("complete garbage"))
}
