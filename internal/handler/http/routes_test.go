// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Vasilcai

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/avasilcai/school-admin/internal/service"
	"github.com/avasilcai/school-admin/models"
	"github.com/stretchr/testify/assert"
)

// newTestRouter wires the full chi router over mocked services. ParseToken
// accepts tokens of the form "as-<role>" so each test request can pick a
// caller role through the Authorization header alone.
func newTestRouter() http.Handler {
	auth := &mockAuthService{
		parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
			role := models.Role(strings.ToUpper(strings.TrimPrefix(tokenString, "as-")))
			if !role.Valid() {
				return models.Token{}, service.ErrTokenIsExpiredOrInvalid
			}
			return stubToken("caller", role), nil
		},
	}
	return newTestHandler(&service.Services{AuthService: auth}).Init()
}

func TestRoutes_RoleMatrix(t *testing.T) {
	router := newTestRouter()

	tests := []struct {
		name   string
		method string
		path   string
		token  string
		body   string
		want   int
	}{
		// public surface needs no token
		{"register is public", http.MethodPost, "/api/users/register", "", `{"username":"x","email":"x@scoala.ro","password":"p","role":"ADMIN"}`, http.StatusCreated},
		{"login is public", http.MethodPost, "/api/auth/login", "", `{"username":"x","password":"p"}`, http.StatusUnauthorized},
		{"reset password is public", http.MethodPost, "/api/auth/reset-password", "", `{"token":"t","new_password":"p"}`, http.StatusNotFound},

		// the gate itself
		{"classes need a token", http.MethodGet, "/api/classes", "", "", http.StatusUnauthorized},
		{"garbage token is rejected", http.MethodGet, "/api/classes", "as-nobody", "", http.StatusUnauthorized},

		// classes: everyone reads, only admins write
		{"student reads classes", http.MethodGet, "/api/classes", "as-student", "", http.StatusOK},
		{"chef reads classes", http.MethodGet, "/api/classes", "as-chef", "", http.StatusOK},
		{"admin creates class", http.MethodPost, "/api/classes", "as-admin", `{"name":"5A","year":2026}`, http.StatusCreated},
		{"teacher cannot create class", http.MethodPost, "/api/classes", "as-teacher", `{"name":"5A"}`, http.StatusForbidden},

		// sessions: teachers and admins only
		{"teacher creates session", http.MethodPost, "/api/sessions", "as-teacher", `{"class_id":1,"teacher_id":2,"subject":"Mathematics","held_at":"2026-03-09T10:00:00Z"}`, http.StatusCreated},
		{"student cannot create session", http.MethodPost, "/api/sessions", "as-student", `{}`, http.StatusForbidden},
		{"parent cannot read session", http.MethodGet, "/api/sessions/1", "as-parent", "", http.StatusForbidden},

		// grades: parents may read, never write
		{"parent reads grades", http.MethodGet, "/api/grades", "as-parent", "", http.StatusOK},
		{"parent cannot record grade", http.MethodPost, "/api/grades", "as-parent", `{}`, http.StatusForbidden},
		{"teacher records grade", http.MethodPost, "/api/grades", "as-teacher", `{"session_id":1,"student_id":2,"value":9}`, http.StatusCreated},

		// absences mirror grades
		{"parent reads absences", http.MethodGet, "/api/absences", "as-parent", "", http.StatusOK},
		{"student cannot record absence", http.MethodPost, "/api/absences", "as-student", `{}`, http.StatusForbidden},

		// menu: everyone reads, chefs and admins write
		{"student reads menu", http.MethodGet, "/api/menu", "as-student", "", http.StatusOK},
		{"chef adds menu item", http.MethodPost, "/api/menu", "as-chef", `{"name":"Sarmale","weekday":5,"price_cents":1800}`, http.StatusCreated},
		{"teacher cannot add menu item", http.MethodPost, "/api/menu", "as-teacher", `{}`, http.StatusForbidden},
		{"chef removes menu item", http.MethodDelete, "/api/menu/6", "as-chef", "", http.StatusNoContent},

		// wrong methods on known routes are hidden as 404
		{"wrong method looks like missing route", http.MethodPut, "/api/classes", "as-admin", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body *strings.Reader
			if tt.body != "" {
				body = strings.NewReader(tt.body)
			} else {
				body = strings.NewReader("")
			}

			req := httptest.NewRequest(tt.method, tt.path, body)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
