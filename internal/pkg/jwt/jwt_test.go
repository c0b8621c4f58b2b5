package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignAndParse(t *testing.T) {
	token, err := Sign("alice@example.com", TokenTTL)
	require.NoError(t, err)

	claims, err := Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", claims.Email)
}

func TestParseExpiredToken(t *testing.T) {
	token, err := Sign("alice@example.com", -time.Minute)
	require.NoError(t, err)

	_, err = Parse(token)
	assert.Error(t, err)
}

func TestParseGarbage(t *testing.T) {
	_, err := Parse("")
	assert.Error(t, err)

	_, err = Parse("not.a.token")
	assert.Error(t, err)
}

func TestParseRejectsForeignSecret(t *testing.T) {
	SetSecret("secret-one")
	token, err := Sign("alice@example.com", TokenTTL)
	require.NoError(t, err)

	SetSecret("secret-two")
	defer SetSecret("secret-one")

	_, err = Parse(token)
	assert.Error(t, err)
}
