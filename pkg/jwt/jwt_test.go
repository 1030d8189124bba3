package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var secret = []byte("test-secret")

func TestGenerateAndParse(t *testing.T) {
	token, err := GenerateToken(secret, 42, TokenAccess, time.Minute)
	require.NoError(t, err)

	claims, err := ParseToken(secret, TokenAccess, token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, TokenAccess, claims.Type)
}

func TestParseToken_Rejects(t *testing.T) {
	token, err := GenerateToken(secret, 42, "refresh", time.Minute)
	require.NoError(t, err)
	_, err = ParseToken(secret, TokenAccess, token)
	assert.EqualError(t, err, "invalid token type")

	_, err = ParseToken([]byte("other"), "refresh", token)
	assert.Error(t, err)

	expired, err := GenerateToken(secret, 42, TokenAccess, -time.Minute)
	require.NoError(t, err)
	_, err = ParseToken(secret, TokenAccess, expired)
	assert.Error(t, err)
}
