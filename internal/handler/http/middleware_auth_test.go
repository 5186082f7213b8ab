package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/avasilcai/school-admin/internal/service"
	"github.com/avasilcai/school-admin/internal/utils"
	"github.com/avasilcai/school-admin/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubToken builds a parsed session token the way ParseToken would return it.
func stubToken(username string, role models.Role) models.Token {
	return models.Token{
		SessionClaims: models.SessionClaims{
			RegisteredClaims: jwt.RegisteredClaims{Subject: username},
			Role:             role,
		},
	}
}

// executeAuth drives the auth middleware with the given Authorization header
// and returns the recorder plus whether next ran.
func executeAuth(h *Handler, authHeader string, onNext func(r *http.Request)) (*httptest.ResponseRecorder, bool) {
	nextCalled := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
		if onNext != nil {
			onNext(r)
		}
	})

	req := injectNopLogger(httptest.NewRequest(http.MethodGet, "/api/classes", nil))
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()

	h.auth(next).ServeHTTP(rec, req)
	return rec, nextCalled
}

func TestAuth_MissingHeader(t *testing.T) {
	h := newTestHandler(&service.Services{})

	rec, nextCalled := executeAuth(h, "", nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, nextCalled)
}

func TestAuth_MalformedHeader(t *testing.T) {
	h := newTestHandler(&service.Services{})

	tests := []struct {
		name   string
		header string
	}{
		{"scheme only", "Bearer"},
		{"empty token", "Bearer "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, nextCalled := executeAuth(h, tt.header, nil)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.False(t, nextCalled)
		})
	}
}

func TestAuth_ExpiredOrForgedToken(t *testing.T) {
	h := newTestHandler(&service.Services{
		AuthService: &mockAuthService{
			parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
				return models.Token{}, service.ErrTokenIsExpiredOrInvalid
			},
		},
	})

	rec, nextCalled := executeAuth(h, "Bearer some.expired.jwt", nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, nextCalled)
}

func TestAuth_ValidToken_PrincipalReachesNextHandler(t *testing.T) {
	h := newTestHandler(&service.Services{
		AuthService: &mockAuthService{
			parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
				assert.Equal(t, "valid.jwt.token", tokenString)
				return stubToken("maria.popescu.prof", models.RoleTeacher), nil
			},
		},
	})

	var principal utils.Principal
	var found bool
	rec, nextCalled := executeAuth(h, "Bearer valid.jwt.token", func(r *http.Request) {
		principal, found = utils.GetPrincipalFromContext(r.Context())
	})

	require.True(t, nextCalled)
	assert.Equal(t, http.StatusOK, rec.Code)
	require.True(t, found, "principal must be stored in the request context")
	assert.Equal(t, "maria.popescu.prof", principal.Username)
	assert.Equal(t, models.RoleTeacher, principal.Role)
}

func TestGetTokenFromAuthHeader(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr error
	}{
		{"bearer token", "Bearer abc.def.ghi", "abc.def.ghi", nil},
		{"no space", "abcdefghi", "", ErrInvalidAuthorizationHeader},
		{"empty second part", "Bearer ", "", ErrEmptyToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := getTokenFromAuthHeader(tt.header)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
