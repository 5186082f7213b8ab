package models

import (
	"testing"
	"time"
)

func TestPasswordResetTokenIsValid(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name  string
		token PasswordResetToken
		want  bool
	}{
		{"live token", PasswordResetToken{ExpiryDate: now.Add(10 * time.Minute)}, true},
		{"expired token", PasswordResetToken{ExpiryDate: now.Add(-time.Second)}, false},
		{"used token", PasswordResetToken{ExpiryDate: now.Add(10 * time.Minute), Used: true}, false},
		{"used and expired", PasswordResetToken{ExpiryDate: now.Add(-time.Minute), Used: true}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.token.IsValid(now); got != tt.want {
				t.Errorf("IsValid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPasswordResetTokenIsExpired(t *testing.T) {
	now := time.Now()

	token := PasswordResetToken{ExpiryDate: now.Add(time.Minute)}
	if token.IsExpired(now) {
		t.Error("expected token not to be expired one minute before its expiry")
	}
	if !token.IsExpired(now.Add(2 * time.Minute)) {
		t.Error("expected token to be expired past its expiry date")
	}
}
