package utils

import (
	"testing"
	"time"

	"github.com/avasilcai/school-admin/models"
)

func TestGenerateSessionToken_Success(t *testing.T) {
	issuer := "test-issuer"
	username := "maria.popescu.prof"
	duration := time.Hour
	key := "secret-key"

	token, err := GenerateSessionToken(issuer, username, models.RoleTeacher, duration, key)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}
	if token.Token == nil {
		t.Error("expected non-nil jwt.Token object")
	}

	if token.Issuer != issuer {
		t.Errorf("expected issuer %s, got %s", issuer, token.Issuer)
	}
	if token.Subject != username {
		t.Errorf("expected subject %s, got %s", username, token.Subject)
	}
	if token.Role != models.RoleTeacher {
		t.Errorf("expected role %s, got %s", models.RoleTeacher, token.Role)
	}
}

func TestGenerateSessionToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		username string
		role     models.Role
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", "user", models.RoleStudent, time.Hour, "key"},
		{"empty username", "iss", "", models.RoleStudent, time.Hour, "key"},
		{"unknown role", "iss", "user", models.Role("JANITOR"), time.Hour, "key"},
		{"zero duration", "iss", "user", models.RoleStudent, 0, "key"},
		{"empty key", "iss", "user", models.RoleStudent, time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateSessionToken(tt.issuer, tt.username, tt.role, tt.duration, tt.key)
			if err == nil {
				t.Error("expected error for invalid parameters, got nil")
			}
		})
	}
}

func TestValidateAndParseSessionToken_Success(t *testing.T) {
	issuer := "test-issuer"
	username := "ion.ionescu"
	key := "secret-key"
	duration := time.Minute * 5

	genToken, err := GenerateSessionToken(issuer, username, models.RoleStudent, duration, key)
	if err != nil {
		t.Fatalf("could not generate token: %v", err)
	}

	parsedToken, err := ValidateAndParseSessionToken(genToken.SignedString, key, issuer)

	if err != nil {
		t.Fatalf("expected token to be valid, got error: %v", err)
	}
	gotUsername, err := parsedToken.Username()
	if err != nil {
		t.Fatalf("expected subject, got error: %v", err)
	}
	if gotUsername != username {
		t.Errorf("expected username %s, got %s", username, gotUsername)
	}
	if parsedToken.Role != models.RoleStudent {
		t.Errorf("expected role %s, got %s", models.RoleStudent, parsedToken.Role)
	}
}

func TestValidateAndParseSessionToken_WrongKey(t *testing.T) {
	genToken, _ := GenerateSessionToken("iss", "user", models.RoleAdmin, time.Hour, "right-key")

	_, err := ValidateAndParseSessionToken(genToken.SignedString, "wrong-key", "iss")

	if err == nil {
		t.Fatal("expected signature verification error, got nil")
	}
}

func TestValidateAndParseSessionToken_WrongIssuer(t *testing.T) {
	genToken, _ := GenerateSessionToken("real-issuer", "user", models.RoleAdmin, time.Hour, "key")

	_, err := ValidateAndParseSessionToken(genToken.SignedString, "key", "other-issuer")

	if err == nil {
		t.Fatal("expected issuer mismatch error, got nil")
	}
}

func TestValidateAndParseSessionToken_Expired(t *testing.T) {
	genToken, _ := GenerateSessionToken("iss", "user", models.RoleParent, -time.Minute, "key")

	_, err := ValidateAndParseSessionToken(genToken.SignedString, "key", "iss")

	if err == nil {
		t.Fatal("expected expiry error, got nil")
	}
}

func TestValidateAndParseSessionToken_Garbage(t *testing.T) {
	_, err := ValidateAndParseSessionToken("not.a.jwt", "key", "iss")

	if err == nil {
		t.Fatal("expected parse error, got nil")
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"valid bearer", "Bearer abc123", "abc123", false},
		{"missing token", "Bearer", "", true},
		{"empty token", "Bearer ", "", true},
		{"empty header", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
