// Package auth verifies credentials against the user store and manages
// password material. Every outcome a caller can observe collapses "no such
// user" and "wrong password" into domain.ErrInvalidCredentials.
package auth

import (
	"context"
	"errors"
	"fmt"

	"gymtrack/internal/domain"
	"gymtrack/internal/store"
)

var (
	ErrEmptyCredential = errors.New("empty name or password")
	ErrPasswordLength  = errors.New("password must be at least 8 characters")
)

const minPasswordLength = 8

// dummySalt keeps the unknown-user path doing the same argon2 work as the
// wrong-password path, so the two cannot be told apart by timing.
var dummySalt = make([]byte, SaltLength)

type Authenticator struct {
	users  store.UserStore
	hasher *PasswordHasher
}

func New(users store.UserStore, hasher *PasswordHasher) *Authenticator {
	return &Authenticator{users: users, hasher: hasher}
}

// Authenticate verifies a name/password pair. It returns the identity on
// success, domain.ErrInvalidCredentials on any credential problem, and a
// wrapped store error when the store itself failed.
func (a *Authenticator) Authenticate(ctx context.Context, name, password string) (*domain.Identity, error) {
	if name == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	user, err := a.users.GetByName(ctx, name)
	if errors.Is(err, domain.ErrUserNotFound) {
		a.hasher.Verify(password, dummySalt, dummySalt)
		return nil, domain.ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	if !a.hasher.Verify(password, user.Salt, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}
	return user.Identity(), nil
}

// Register creates a new user with freshly derived password material.
// Duplicate names surface as domain.ErrUserExists from the store's
// uniqueness constraint.
func (a *Authenticator) Register(ctx context.Context, name, password string) (*domain.User, error) {
	if name == "" || password == "" {
		return nil, ErrEmptyCredential
	}
	if len(password) < minPasswordLength {
		return nil, ErrPasswordLength
	}
	hash, salt, err := a.hasher.Hash(password)
	if err != nil {
		return nil, err
	}
	user := &domain.User{
		Name:         name,
		PasswordHash: hash,
		Salt:         salt,
		GymSessions:  []domain.GymSession{},
	}
	if err := a.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// ChangePassword rotates the stored hash and salt after verifying the old
// password. Sessions bound to the old fingerprint die on their next
// validation.
func (a *Authenticator) ChangePassword(ctx context.Context, name, oldPassword, newPassword string) error {
	if _, err := a.Authenticate(ctx, name, oldPassword); err != nil {
		return err
	}
	if len(newPassword) < minPasswordLength {
		return ErrPasswordLength
	}
	hash, salt, err := a.hasher.Hash(newPassword)
	if err != nil {
		return err
	}
	return a.users.UpdatePassword(ctx, name, hash, salt)
}
