package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gymtrack/internal/auth"
	"gymtrack/internal/domain"
	"gymtrack/internal/store"
)

func newAuthenticator(t *testing.T) (*auth.Authenticator, *store.Memory) {
	t.Helper()
	mem := store.NewMemory()
	return auth.New(mem.Users, auth.NewPasswordHasher()), mem
}

func TestRegisterThenAuthenticate(t *testing.T) {
	a, _ := newAuthenticator(t)
	ctx := context.Background()

	user, err := a.Register(ctx, "alice", "open sesame 123")
	require.NoError(t, err)
	assert.False(t, user.ID.IsZero())
	assert.Empty(t, user.GymSessions)

	identity, err := a.Authenticate(ctx, "alice", "open sesame 123")
	require.NoError(t, err)
	assert.Equal(t, "alice", identity.Name)
	assert.Equal(t, user.ID.Hex(), identity.ID)
	assert.Equal(t, user.PasswordHash, identity.Fingerprint)
}

func TestAuthenticateRejections(t *testing.T) {
	a, _ := newAuthenticator(t)
	ctx := context.Background()

	_, err := a.Register(ctx, "alice", "open sesame 123")
	require.NoError(t, err)

	// Wrong password and unknown user are the same outcome; nothing may
	// leak which one happened.
	_, wrongPass := a.Authenticate(ctx, "alice", "open sesame 124")
	_, unknownUser := a.Authenticate(ctx, "bob", "open sesame 123")
	assert.ErrorIs(t, wrongPass, domain.ErrInvalidCredentials)
	assert.ErrorIs(t, unknownUser, domain.ErrInvalidCredentials)
	assert.Equal(t, wrongPass, unknownUser)

	_, err = a.Authenticate(ctx, "", "")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthenticateMalformedStoredSalt(t *testing.T) {
	a, mem := newAuthenticator(t)
	ctx := context.Background()

	_, err := a.Register(ctx, "alice", "open sesame 123")
	require.NoError(t, err)

	user, err := mem.Users.GetByName(ctx, "alice")
	require.NoError(t, err)
	require.NoError(t, mem.Users.UpdatePassword(ctx, "alice", user.PasswordHash, user.Salt[:4]))

	_, err = a.Authenticate(ctx, "alice", "open sesame 123")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestRegisterValidation(t *testing.T) {
	a, _ := newAuthenticator(t)
	ctx := context.Background()

	_, err := a.Register(ctx, "", "open sesame 123")
	assert.ErrorIs(t, err, auth.ErrEmptyCredential)

	_, err = a.Register(ctx, "alice", "short")
	assert.ErrorIs(t, err, auth.ErrPasswordLength)

	_, err = a.Register(ctx, "alice", "open sesame 123")
	require.NoError(t, err)
	_, err = a.Register(ctx, "alice", "another password")
	assert.ErrorIs(t, err, domain.ErrUserExists)
}

func TestChangePassword(t *testing.T) {
	a, _ := newAuthenticator(t)
	ctx := context.Background()

	_, err := a.Register(ctx, "alice", "open sesame 123")
	require.NoError(t, err)

	err = a.ChangePassword(ctx, "alice", "not my password", "a new password 456")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	err = a.ChangePassword(ctx, "alice", "open sesame 123", "short")
	assert.ErrorIs(t, err, auth.ErrPasswordLength)

	require.NoError(t, a.ChangePassword(ctx, "alice", "open sesame 123", "a new password 456"))

	_, err = a.Authenticate(ctx, "alice", "open sesame 123")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	_, err = a.Authenticate(ctx, "alice", "a new password 456")
	assert.NoError(t, err)
}
