package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims is the JWT claim set carried by every session token.
// It extends the standard registered claims (sub, exp, iat, iss) with the
// account role so that authorization checks do not need a database lookup.
type SessionClaims struct {
	jwt.RegisteredClaims

	// Role is the account role embedded at issuance time.
	Role Role `json:"role"`
}

// Token wraps a signed session JWT with convenience accessors used by the
// authentication flow.
//
// It embeds [jwt.Token] for low-level operations (signing, parsing) and
// [SessionClaims] for claim access. SignedString holds the compact serialized
// form (header.payload.signature) ready to be transmitted in HTTP headers.
//
// Session tokens are stateless: they are never persisted server-side and
// there is no revocation list. Logout is a client-side operation; any
// correctly signed, unexpired token remains valid until natural expiry.
type Token struct {
	// Token is the underlying JWT token used for signing and claim
	// inspection. Excluded from JSON serialization because only the compact
	// string form is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// SessionClaims provides access to the claim set (sub, exp, iat, iss,
	// role).
	SessionClaims

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`
}

// Username extracts the account username from the token's "sub" (subject)
// claim. Returns an error if the subject claim is missing.
func (t *Token) Username() (string, error) {
	return t.GetSubject()
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
