package http

import (
	"net/http"

	"github.com/avasilcai/school-admin/internal/logger"
	"github.com/avasilcai/school-admin/internal/utils"
	"github.com/avasilcai/school-admin/models"
)

// requireRole returns an HTTP middleware that allows the request through only
// if the authenticated caller's role is in the allowed set.
//
// It must run after the auth middleware: a missing principal means the route
// was wired without authentication and is rejected with 401. A caller with a
// role outside the set receives 403. The check has no side effects and runs
// before any business logic.
func (h *Handler) requireRole(roles ...models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := logger.FromRequest(r)

			principal, ok := utils.GetPrincipalFromContext(r.Context())
			if !ok {
				log.Error().Msg("no principal in context; auth middleware missing")
				utils.WriteJSONError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}

			if !principal.Role.In(roles...) {
				log.Warn().
					Str("username", principal.Username).
					Str("role", string(principal.Role)).
					Str("uri", r.RequestURI).
					Msg("role not allowed for route")
				utils.WriteJSONError(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
