package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/avasilcai/school-admin/models"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/users/register", h.register)
		r.Post("/api/auth/login", h.login)
		r.Get("/api/auth/reset-password", h.validateResetToken)
		r.Post("/api/auth/reset-password", h.resetPassword)
	})

	// authenticated routes; write access is narrowed per resource
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/classes", h.listClasses)
		r.With(h.requireRole(models.RoleAdmin)).Post("/api/classes", h.createClass)

		r.Route("/api/sessions", func(r chi.Router) {
			r.Use(h.requireRole(models.RoleTeacher, models.RoleAdmin))
			r.Post("/", h.createSession)
			r.Get("/{sessionID}", h.getSession)
		})

		r.Route("/api/grades", func(r chi.Router) {
			r.With(h.requireRole(models.RoleTeacher, models.RoleAdmin, models.RoleParent)).Get("/", h.listGrades)
			r.With(h.requireRole(models.RoleTeacher, models.RoleAdmin)).Post("/", h.recordGrade)
		})

		r.Route("/api/absences", func(r chi.Router) {
			r.With(h.requireRole(models.RoleTeacher, models.RoleAdmin, models.RoleParent)).Get("/", h.listAbsences)
			r.With(h.requireRole(models.RoleTeacher, models.RoleAdmin)).Post("/", h.recordAbsence)
		})

		r.Route("/api/menu", func(r chi.Router) {
			r.Get("/", h.listMenu)
			r.With(h.requireRole(models.RoleChef, models.RoleAdmin)).Post("/", h.addMenuItem)
			r.With(h.requireRole(models.RoleChef, models.RoleAdmin)).Delete("/{itemID}", h.removeMenuItem)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
