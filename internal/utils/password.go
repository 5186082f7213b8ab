package utils

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrPasswordMismatch is returned by CheckPassword when the supplied
// plaintext does not correspond to the stored hash.
var ErrPasswordMismatch = errors.New("password does not match")

// HashPassword hashes the given plaintext password with bcrypt.
//
// bcrypt embeds a per-hash random salt in its output, so two hashes of the
// same password never compare equal and no separate salt column is needed.
// The plaintext must never be persisted; only the returned hash is stored.
//
// Returns an error if the password exceeds bcrypt's 72-byte input limit or
// hashing fails.
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// CheckPassword compares a stored bcrypt hash against a candidate plaintext
// password.
//
// Returns nil on match, ErrPasswordMismatch when the plaintext is wrong, or
// a wrapped error for malformed hashes.
func CheckPassword(hash, plain string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
	if err == nil {
		return nil
	}

	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrPasswordMismatch
	}

	return fmt.Errorf("error comparing password hash: %w", err)
}
