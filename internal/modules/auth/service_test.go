package auth

import (
	"testing"

	"github.com/mindhaven/core/internal/pkg/jwt"
	"github.com/mindhaven/core/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	svc := NewService(testutil.OpenDB(t))

	u, err := svc.Register(&RegisterDTO{Username: "alice", Email: "alice@example.com", Password: "hunter22"})
	require.NoError(t, err)
	require.NotZero(t, u.ID)
	assert.NotEqual(t, "hunter22", u.Password, "password must be stored hashed")

	t.Run("DuplicateEmail", func(t *testing.T) {
		_, err := svc.Register(&RegisterDTO{Username: "other", Email: "alice@example.com", Password: "different"})
		assert.ErrorIs(t, err, errEmailTaken)
	})

	t.Run("LoginSuccess", func(t *testing.T) {
		token, err := svc.Login("alice@example.com", "hunter22")
		require.NoError(t, err)

		claims, err := jwt.Parse(token)
		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", claims.Email)
	})

	t.Run("LoginWrongPassword", func(t *testing.T) {
		_, err := svc.Login("alice@example.com", "different")
		assert.ErrorIs(t, err, errBadCredentials)
	})

	t.Run("LoginUnknownEmail", func(t *testing.T) {
		_, err := svc.Login("nobody@example.com", "hunter22")
		assert.ErrorIs(t, err, errBadCredentials)
	})

	t.Run("OriginalPasswordStillValidAfterDuplicateAttempt", func(t *testing.T) {
		_, err := svc.Login("alice@example.com", "hunter22")
		assert.NoError(t, err)
	})
}

func TestUserByEmail(t *testing.T) {
	svc := NewService(testutil.OpenDB(t))

	_, err := svc.Register(&RegisterDTO{Username: "bob", Email: "bob@example.com", Password: "secret12"})
	require.NoError(t, err)

	u, err := svc.UserByEmail("bob@example.com")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "bob", u.Username)

	missing, err := svc.UserByEmail("ghost@example.com")
	require.NoError(t, err)
	assert.Nil(t, missing)
}
