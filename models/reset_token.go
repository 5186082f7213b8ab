package models

import "time"

// PasswordResetToken is a short-lived one-time credential bound to exactly
// one account. It authorizes a single password change and nothing else.
//
// Lifecycle: created at issuance, mutated only to flip Used to true,
// deleted when superseded by a newer token for the same account or when the
// owning account is deleted.
type PasswordResetToken struct {
	// ID is the internal unique identifier of the token row.
	ID int64 `json:"-"`

	// AccountID references the owning account. An account owns at most one
	// live token at a time.
	AccountID int64 `json:"-"`

	// Token is the opaque random token string handed to the account holder.
	Token string `json:"token"`

	// ExpiryDate is the fixed point in time after which the token no longer
	// authorizes anything.
	ExpiryDate time.Time `json:"expiry_date"`

	// Used marks the token as consumed. Consumption is terminal: a used
	// token never authorizes a password change again.
	Used bool `json:"-"`
}

// IsExpired reports whether the token's expiry window has elapsed at now.
func (t PasswordResetToken) IsExpired(now time.Time) bool {
	return !now.Before(t.ExpiryDate)
}

// IsValid reports whether the token may still authorize a password change:
// it has not been consumed and its expiry window has not elapsed.
func (t PasswordResetToken) IsValid(now time.Time) bool {
	return !t.Used && !t.IsExpired(now)
}

// TableName returns the name of the database table
// associated with the PasswordResetToken model.
func (t PasswordResetToken) TableName() string {
	return "password_reset_tokens"
}
