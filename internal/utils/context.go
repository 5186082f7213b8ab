// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, password hashing,
// HTTP response writing, session token generation and validation, and other
// common operations.
package utils

import (
	"context"

	"github.com/avasilcai/school-admin/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// Principal is the authenticated caller identity extracted from a validated
// session token. It is attached to the request context by the authentication
// middleware and consumed by the role-authorization layer and handlers.
type Principal struct {
	Username string
	Role     models.Role
}

// PrincipalCtxKey is the key used to store the authenticated [Principal] in
// the context. Used together with GetPrincipalFromContext for type-safe
// retrieval.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.PrincipalCtxKey, utils.Principal{Username: "u", Role: models.RoleAdmin})
var PrincipalCtxKey = contextKey("principal")

// GetPrincipalFromContext retrieves the authenticated caller identity from
// the context.
//
// Returns the principal and an ok flag:
//   - ok == true  — value is found and has the correct type
//   - ok == false — value is missing or has an unexpected type
func GetPrincipalFromContext(ctx context.Context) (Principal, bool) {
	principal, ok := ctx.Value(PrincipalCtxKey).(Principal)
	return principal, ok
}
