package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/avasilcai/school-admin/internal/service"
	"github.com/avasilcai/school-admin/internal/utils"
	"github.com/avasilcai/school-admin/models"
	"github.com/stretchr/testify/assert"
)

// executeRequireRole drives the role middleware with an optional principal
// already placed in the context.
func executeRequireRole(h *Handler, principal *utils.Principal, allowed ...models.Role) (*httptest.ResponseRecorder, bool) {
	nextCalled := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
	})

	req := injectNopLogger(httptest.NewRequest(http.MethodPost, "/api/grades", nil))
	if principal != nil {
		ctx := context.WithValue(req.Context(), utils.PrincipalCtxKey, *principal)
		req = req.WithContext(ctx)
	}
	rec := httptest.NewRecorder()

	h.requireRole(allowed...)(next).ServeHTTP(rec, req)
	return rec, nextCalled
}

func TestRequireRole_AllowedRolePasses(t *testing.T) {
	h := newTestHandler(&service.Services{})

	for _, role := range []models.Role{models.RoleTeacher, models.RoleAdmin} {
		principal := &utils.Principal{Username: "someone", Role: role}

		rec, nextCalled := executeRequireRole(h, principal, models.RoleTeacher, models.RoleAdmin)

		assert.True(t, nextCalled, "role %s must pass", role)
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestRequireRole_WrongRole_Forbidden(t *testing.T) {
	h := newTestHandler(&service.Services{})
	principal := &utils.Principal{Username: "ion.ionescu", Role: models.RoleStudent}

	rec, nextCalled := executeRequireRole(h, principal, models.RoleTeacher, models.RoleAdmin)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, nextCalled)
}

func TestRequireRole_NoPrincipal_Unauthorized(t *testing.T) {
	h := newTestHandler(&service.Services{})

	rec, nextCalled := executeRequireRole(h, nil, models.RoleAdmin)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, nextCalled)
}
