// Package store persists the user and exercise documents. The Mongo backend
// is the production one; the memory backend exists for tests and local runs
// and implements the same contract, including error translation into the
// domain sentinels.
package store

import (
	"context"

	"gymtrack/internal/domain"
	"gymtrack/internal/dto"
)

// UserStore owns every persisted user document. Implementations translate
// driver-level errors into domain errors at this boundary so callers match
// with errors.Is only.
type UserStore interface {
	// Create inserts a new user. Name uniqueness is enforced by the store
	// itself (unique index), never by a lookup-then-insert sequence.
	Create(ctx context.Context, user *domain.User) error
	GetByName(ctx context.Context, name string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	// AppendSession appends one gym session to the named user's history as a
	// single document-level update; readers never observe a partial append.
	AppendSession(ctx context.Context, name string, session domain.GymSession) error
	UpdatePassword(ctx context.Context, name string, hash, salt []byte) error
	// LastSets returns up to n set projections for the named exercise,
	// ordered by session date descending; ties on equal dates keep their
	// insertion order. Zero matching sets is an empty slice, not an error;
	// domain.ErrUserNotFound is reserved for an unknown user.
	LastSets(ctx context.Context, name, exercise string, n int) ([]dto.SetProjection, error)
}

// ExerciseStore manages the flat exercise catalog, separate from the
// per-user nested documents.
type ExerciseStore interface {
	Add(ctx context.Context, ex domain.Exercise) error
	List(ctx context.Context) ([]domain.Exercise, error)
}
