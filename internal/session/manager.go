// Package session binds unguessable tokens to authenticated identities for
// the lifetime of the process. A restart logs everyone out, which is the
// intended behavior.
package session

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"sync"
	"time"

	"gymtrack/internal/domain"
	"gymtrack/internal/store"
)

const tokenBytes = 32

type record struct {
	userID      string
	name        string
	fingerprint []byte
	expiresAt   time.Time
}

// Manager is the process-wide session map. Validations far outnumber
// logins and logouts, so lookups take the read lock only, and the store
// round-trip in Validate runs with no lock held at all.
type Manager struct {
	users store.UserStore
	ttl   time.Duration

	mu       sync.RWMutex
	sessions map[string]record

	nowTime func() time.Time
}

type Option func(*Manager)

// WithNowTime overrides the clock (for tests).
func WithNowTime(now func() time.Time) Option {
	return func(m *Manager) { m.nowTime = now }
}

func NewManager(users store.UserStore, ttl time.Duration, options ...Option) *Manager {
	m := &Manager{
		users:    users,
		ttl:      ttl,
		sessions: make(map[string]record),
		nowTime:  time.Now,
	}
	for _, opt := range options {
		opt(m)
	}
	return m
}

// Login mints a fresh token for an already-authenticated identity. Each call
// produces an independent session; concurrent logins by one user coexist.
func (m *Manager) Login(identity *domain.Identity) (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("session token: %w", err)
	}
	token := base64.RawURLEncoding.EncodeToString(buf)

	m.mu.Lock()
	m.sessions[token] = record{
		userID:      identity.ID,
		name:        identity.Name,
		fingerprint: append([]byte(nil), identity.Fingerprint...),
		expiresAt:   m.nowTime().Add(m.ttl),
	}
	m.mu.Unlock()
	return token, nil
}

// Validate resolves a token to its identity. Unknown and expired tokens are
// invalid; so is a token whose bound fingerprint no longer matches the
// user's current password hash, which is how a password change revokes
// every session the user had open.
func (m *Manager) Validate(ctx context.Context, token string) (*domain.Identity, error) {
	m.mu.RLock()
	rec, ok := m.sessions[token]
	m.mu.RUnlock()
	if !ok {
		return nil, domain.ErrInvalidSession
	}
	if m.nowTime().After(rec.expiresAt) {
		m.Logout(token)
		return nil, domain.ErrInvalidSession
	}

	user, err := m.users.GetByName(ctx, rec.name)
	if errors.Is(err, domain.ErrUserNotFound) {
		m.Logout(token)
		return nil, domain.ErrInvalidSession
	}
	if err != nil {
		return nil, fmt.Errorf("validate session: %w", err)
	}
	if !bytes.Equal(rec.fingerprint, user.PasswordHash) {
		m.Logout(token)
		return nil, domain.ErrInvalidSession
	}
	return user.Identity(), nil
}

// Logout removes the session. Removing an unknown token is a no-op.
func (m *Manager) Logout(token string) {
	m.mu.Lock()
	delete(m.sessions, token)
	m.mu.Unlock()
}
