package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/avasilcai/school-admin/internal/logger"
	"github.com/avasilcai/school-admin/internal/store"
	"github.com/avasilcai/school-admin/internal/utils"
	"github.com/avasilcai/school-admin/models"
)

func (h *Handler) createClass(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var class models.SchoolClass
	if err := json.NewDecoder(r.Body).Decode(&class); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSONError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.CatalogService.CreateClass(ctx, class)
	if err != nil {
		log.Err(err).Msg("class creation failed")
		utils.WriteJSONError(w, "class creation failed", statusFromError(err))
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) listClasses(w http.ResponseWriter, r *http.Request) {
	classes, err := h.services.CatalogService.ListClasses(r.Context())
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("class listing failed")
		utils.WriteJSONError(w, "class listing failed", statusFromError(err))
		return
	}

	utils.WriteJSON(w, classes, http.StatusOK)
}

func (h *Handler) createSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var session models.ClassSession
	if err := json.NewDecoder(r.Body).Decode(&session); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSONError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.CatalogService.CreateSession(ctx, session)
	if err != nil {
		log.Err(err).Int64("class_id", session.ClassID).Msg("session creation failed")
		utils.WriteJSONError(w, "session creation failed", statusFromError(err))
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) getSession(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	sessionID, err := strconv.ParseInt(chi.URLParam(r, "sessionID"), 10, 64)
	if err != nil {
		log.Err(err).Msg("invalid session id")
		utils.WriteJSONError(w, "invalid session id", http.StatusBadRequest)
		return
	}

	session, err := h.services.CatalogService.GetSession(r.Context(), sessionID)
	if err != nil {
		log.Err(err).Int64("session_id", sessionID).Msg("session lookup failed")
		utils.WriteJSONError(w, "session lookup failed", statusFromError(err))
		return
	}

	utils.WriteJSON(w, session, http.StatusOK)
}

func (h *Handler) recordGrade(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var grade models.Grade
	if err := json.NewDecoder(r.Body).Decode(&grade); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSONError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	recorded, err := h.services.CatalogService.RecordGrade(ctx, grade)
	if err != nil {
		log.Err(err).Int64("session_id", grade.SessionID).Msg("grade recording failed")
		utils.WriteJSONError(w, "grade recording failed", statusFromError(err))
		return
	}

	utils.WriteJSON(w, recorded, http.StatusCreated)
}

func (h *Handler) recordAbsence(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var absence models.Absence
	if err := json.NewDecoder(r.Body).Decode(&absence); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSONError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	recorded, err := h.services.CatalogService.RecordAbsence(ctx, absence)
	if err != nil {
		log.Err(err).Int64("session_id", absence.SessionID).Msg("absence recording failed")
		utils.WriteJSONError(w, "absence recording failed", statusFromError(err))
		return
	}

	utils.WriteJSON(w, recorded, http.StatusCreated)
}

func (h *Handler) listGrades(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	filter, err := gradeFilterFromQuery(r)
	if err != nil {
		log.Err(err).Msg("invalid grade filter")
		utils.WriteJSONError(w, "invalid filter parameters", http.StatusBadRequest)
		return
	}

	grades, err := h.services.CatalogService.ListGrades(r.Context(), filter)
	if err != nil {
		log.Err(err).Msg("grade listing failed")
		utils.WriteJSONError(w, "grade listing failed", statusFromError(err))
		return
	}

	utils.WriteJSON(w, grades, http.StatusOK)
}

func (h *Handler) listAbsences(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	filter, err := absenceFilterFromQuery(r)
	if err != nil {
		log.Err(err).Msg("invalid absence filter")
		utils.WriteJSONError(w, "invalid filter parameters", http.StatusBadRequest)
		return
	}

	absences, err := h.services.CatalogService.ListAbsences(r.Context(), filter)
	if err != nil {
		log.Err(err).Msg("absence listing failed")
		utils.WriteJSONError(w, "absence listing failed", statusFromError(err))
		return
	}

	utils.WriteJSON(w, absences, http.StatusOK)
}

func gradeFilterFromQuery(r *http.Request) (store.GradeFilter, error) {
	var filter store.GradeFilter
	var err error

	if filter.StudentID, err = int64QueryParam(r, "student_id"); err != nil {
		return store.GradeFilter{}, err
	}
	if filter.SessionID, err = int64QueryParam(r, "session_id"); err != nil {
		return store.GradeFilter{}, err
	}

	return filter, nil
}

func absenceFilterFromQuery(r *http.Request) (store.AbsenceFilter, error) {
	var filter store.AbsenceFilter
	var err error

	if filter.StudentID, err = int64QueryParam(r, "student_id"); err != nil {
		return store.AbsenceFilter{}, err
	}
	if filter.SessionID, err = int64QueryParam(r, "session_id"); err != nil {
		return store.AbsenceFilter{}, err
	}
	filter.ExcusedOnly = r.URL.Query().Get("excused") == "true"

	return filter, nil
}

// int64QueryParam parses an optional numeric query parameter; absence is
// reported as zero, not an error.
func int64QueryParam(r *http.Request, name string) (int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	return strconv.ParseInt(raw, 10, 64)
}
