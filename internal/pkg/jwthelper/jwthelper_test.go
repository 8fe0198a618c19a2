package jwthelper_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mzawadzki/ludoteka-api/internal/pkg/jwthelper"
)

var signingKey = []byte("test-signing-key")

func TestGenerateAndParseToken(t *testing.T) {
	token, err := jwthelper.GenerateToken(signingKey, 42, true)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := jwthelper.ParseToken(signingKey, token)
	require.NoError(t, err)

	assert.Equal(t, uint(42), claims.UserID)
	assert.True(t, claims.IsAdmin)
	assert.WithinDuration(t, time.Now().Add(jwthelper.TokenTTL), claims.ExpiresAt.Time, time.Minute)
}

func TestParseToken_Expired(t *testing.T) {
	token, err := jwthelper.GenerateTokenWithTTL(signingKey, 1, false, -time.Minute)
	require.NoError(t, err)

	_, err = jwthelper.ParseToken(signingKey, token)
	assert.ErrorIs(t, err, jwthelper.ErrTokenExpired)
}

func TestParseToken_WrongKey(t *testing.T) {
	token, err := jwthelper.GenerateToken(signingKey, 1, false)
	require.NoError(t, err)

	_, err = jwthelper.ParseToken([]byte("another-key"), token)
	assert.ErrorIs(t, err, jwthelper.ErrInvalidToken)
}

func TestParseToken_Garbage(t *testing.T) {
	_, err := jwthelper.ParseToken(signingKey, "not.a.token")
	assert.ErrorIs(t, err, jwthelper.ErrInvalidToken)
}
