package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// resetTokenBytes is the entropy of a generated reset token. 32 random bytes
// hex-encode to a 64-character opaque string.
const resetTokenBytes = 32

// NewOpaqueToken generates a cryptographically random opaque token string
// suitable for one-time credentials such as password-reset tokens.
//
// Returns an error only if the operating system's entropy source fails.
func NewOpaqueToken() (string, error) {
	buf := make([]byte, resetTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("error generating random token: %w", err)
	}

	return hex.EncodeToString(buf), nil
}
