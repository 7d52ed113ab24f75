package models

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseToken_JWT(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "42",
		ExpiresAt: jwt.NewNumericDate(exp),
	}).SignedString([]byte("server-secret"))
	require.NoError(t, err)

	token, err := ParseToken(raw)
	require.NoError(t, err)
	assert.Equal(t, raw, token.String())
	assert.Equal(t, "42", token.Subject)
	assert.True(t, exp.Equal(token.Expiry()))
	assert.False(t, token.Expired(time.Now()))
	assert.True(t, token.Expired(exp.Add(time.Minute)))
}

func TestParseToken_Opaque(t *testing.T) {
	token, err := ParseToken("not-a-jwt")
	assert.Error(t, err)
	assert.Equal(t, "not-a-jwt", token.String())
	assert.True(t, token.Expiry().IsZero())
	assert.False(t, token.Expired(time.Now()))
}

func TestParseToken_Empty(t *testing.T) {
	_, err := ParseToken("")
	assert.ErrorIs(t, err, ErrEmptyToken)
}
