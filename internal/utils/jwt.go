package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/avasilcai/school-admin/models"
	"github.com/golang-jwt/jwt/v5"
)

// GenerateSessionToken creates a signed HMAC-SHA256 session JWT for the
// given account.
//
// The token includes the following claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the account username
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//   - role           : the account role, used by the authorization layer
//
// All parameters are required. Returns an error if any of them are empty or
// zero, or if signing fails.
//
// Example usage:
//
//	token, err := utils.GenerateSessionToken("school-admin", "maria.popescu.prof", models.RoleTeacher, time.Hour, "secret")
func GenerateSessionToken(issuer, username string, role models.Role, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || username == "" || !role.Valid() || tokenDuration == 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating session token")
	}

	now := time.Now()
	claims := models.SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   username,
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Role: role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing session token: %w", err)
	}

	return models.Token{Token: token, SessionClaims: claims, SignedString: tokenString}, nil
}

// ValidateAndParseSessionToken validates the given session JWT string and
// extracts its claims.
//
// Validation includes:
//   - Signature verification using the provided sign key
//   - Issuer (iss) claim check against the provided tokenIssuer
//   - Expiration (exp) claim check
//   - Subject (sub) claim presence (the account username)
//   - Role claim membership in the known role set
//
// Returns the decoded token on success, or a non-nil error if validation
// fails, claims are missing, or the role is unknown.
func ValidateAndParseSessionToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	parsed := &models.Token{}
	token, err := jwt.ParseWithClaims(tokenString, parsed, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing session token: %w", err)
	}

	username, err := token.Claims.GetSubject()
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during getting subject from token: %w", err)
	}
	if username == "" {
		return models.Token{}, errors.New("empty subject in session token")
	}

	if !parsed.Role.Valid() {
		return models.Token{}, fmt.Errorf("unknown role %q in session token", parsed.Role)
	}

	parsed.Token = token
	parsed.SignedString = tokenString

	return *parsed, nil
}

// ParseBearerToken extracts the token value from an "Authorization" header
// of the form "Bearer <token>".
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Split(strings.TrimSpace(authorizationHeader), " ")
	if len(parts) != 2 || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
