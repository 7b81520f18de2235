package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"errors"

	"golang.org/x/crypto/argon2"
)

// Argon2id parameters. Fixed work factor; the derived key is recomputed
// from the stored salt on every verify, so nothing else needs persisting.
const (
	SaltLength = 16

	argonTime    = 3
	argonMemory  = 64 * 1024 // KiB
	argonThreads = 1
	argonKeyLen  = 32
)

var ErrEmptyPassword = errors.New("empty password")

type PasswordHasher struct{}

func NewPasswordHasher() *PasswordHasher { return &PasswordHasher{} }

// Hash derives an argon2id key from the password under a fresh random salt.
func (PasswordHasher) Hash(password string) (hash, salt []byte, err error) {
	if password == "" {
		return nil, nil, ErrEmptyPassword
	}
	salt = make([]byte, SaltLength)
	if _, err = rand.Read(salt); err != nil {
		return nil, nil, err
	}
	hash = argon2.IDKey([]byte(password), salt, argonTime, argonMemory, argonThreads, argonKeyLen)
	return hash, salt, nil
}

// Verify derives a comparison hash from the supplied password and the stored
// salt. A salt of the wrong length can never match anything; that is an
// authentication failure for the record's owner, not an error.
func (PasswordHasher) Verify(password string, salt, hash []byte) bool {
	if len(salt) != SaltLength || len(hash) == 0 {
		return false
	}
	derived := argon2.IDKey([]byte(password), salt, argonTime, argonMemory, argonThreads, argonKeyLen)
	return subtle.ConstantTimeCompare(derived, hash) == 1
}
