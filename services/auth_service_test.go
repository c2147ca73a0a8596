package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"questionnaire/forms"
)

func newTestAuthService(t *testing.T) (*AuthService, *memorySessionStore) {
	t.Helper()
	db := openTestDB(t)
	sessions := newMemorySessionStore()
	access := NewAccessService(db)
	require.NoError(t, access.EnsureQuestionPermissions(context.Background()))
	return NewAuthService(db, sessions, access, "test-secret", time.Hour), sessions
}

func TestAuthServiceRegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	service, sessions := newTestAuthService(t)

	form := forms.RegisterForm{Username: "test", Password: "testtest1"}
	user, errs, err := service.Register(ctx, &form)
	require.NoError(t, err)
	require.True(t, errs.IsValid())
	require.NotNil(t, user)
	assert.NotEqual(t, "testtest1", user.Password, "password is stored hashed")

	t.Run("DuplicateUsername", func(t *testing.T) {
		form := forms.RegisterForm{Username: "test", Password: "testtest1"}
		_, errs, err := service.Register(ctx, &form)
		require.NoError(t, err)
		assert.Contains(t, errs, "username")
	})

	t.Run("LoginAndAuthenticate", func(t *testing.T) {
		token, err := service.Login(ctx, "test", "testtest1")
		require.NoError(t, err)
		require.NotEmpty(t, token)
		assert.Len(t, sessions.sessions, 1)

		authenticated, err := service.Authenticate(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, user.ID, authenticated.ID)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		_, err := service.Login(ctx, "test", "wrongpassword")
		assert.ErrorIs(t, err, ErrBadCredentials)
	})

	t.Run("UnknownUser", func(t *testing.T) {
		_, err := service.Login(ctx, "nobody", "testtest1")
		assert.ErrorIs(t, err, ErrBadCredentials)
	})

	t.Run("LogoutRevokesSession", func(t *testing.T) {
		token, err := service.Login(ctx, "test", "testtest1")
		require.NoError(t, err)

		require.NoError(t, service.Logout(ctx, token))

		_, err = service.Authenticate(ctx, token)
		assert.ErrorIs(t, err, ErrNotAuthenticated)
	})

	t.Run("GarbageToken", func(t *testing.T) {
		_, err := service.Authenticate(ctx, "not-a-token")
		assert.ErrorIs(t, err, ErrNotAuthenticated)
	})
}
