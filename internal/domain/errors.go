package domain

import "errors"

var (
	// ErrInvalidCredentials covers both "no such user" and "wrong password";
	// callers must never be able to tell the two apart.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidSession     = errors.New("invalid session")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
)
