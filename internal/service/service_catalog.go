package service

import (
	"context"
	"fmt"

	"github.com/avasilcai/school-admin/internal/logger"
	"github.com/avasilcai/school-admin/internal/store"
	"github.com/avasilcai/school-admin/models"
)

// catalogService is the concrete implementation of [CatalogService].
type catalogService struct {
	catalogRepository store.CatalogRepository

	logger *logger.Logger
}

// NewCatalogService constructs a [CatalogService] wired to the given catalog
// repository.
func NewCatalogService(catalogRepository store.CatalogRepository, logger *logger.Logger) CatalogService {
	return &catalogService{
		catalogRepository: catalogRepository,
		logger:            logger,
	}
}

// CreateClass registers a new school class and returns it with its generated
// identifier.
func (c *catalogService) CreateClass(ctx context.Context, class models.SchoolClass) (models.SchoolClass, error) {
	log := logger.FromContext(ctx)

	if class.Name == "" {
		log.Error().Msg("invalid class data provided")
		return models.SchoolClass{}, ErrInvalidDataProvided
	}

	created, err := c.catalogRepository.CreateClass(ctx, class)
	if err != nil {
		log.Err(err).Str("name", class.Name).Msg("class creation ended with error")
		return models.SchoolClass{}, fmt.Errorf("class creation ended with error: %w", err)
	}

	return created, nil
}

// ListClasses returns every registered class.
func (c *catalogService) ListClasses(ctx context.Context) ([]models.SchoolClass, error) {
	classes, err := c.catalogRepository.ListClasses(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("class listing ended with error")
		return nil, fmt.Errorf("class listing ended with error: %w", err)
	}

	return classes, nil
}

// CreateSession schedules a class session held by a teacher for a class.
// An unknown class surfaces as store.ErrClassNotFound.
func (c *catalogService) CreateSession(ctx context.Context, session models.ClassSession) (models.ClassSession, error) {
	log := logger.FromContext(ctx)

	if session.ClassID == 0 || session.TeacherID == 0 || session.Subject == "" || session.HeldAt.IsZero() {
		log.Error().Int64("class_id", session.ClassID).Msg("invalid session data provided")
		return models.ClassSession{}, ErrInvalidDataProvided
	}

	created, err := c.catalogRepository.CreateSession(ctx, session)
	if err != nil {
		log.Err(err).Int64("class_id", session.ClassID).Msg("session creation ended with error")
		return models.ClassSession{}, err
	}

	return created, nil
}

// GetSession returns a single class session by its identifier. An unknown
// session surfaces as store.ErrSessionNotFound.
func (c *catalogService) GetSession(ctx context.Context, sessionID int64) (models.ClassSession, error) {
	if sessionID == 0 {
		return models.ClassSession{}, ErrInvalidDataProvided
	}

	session, err := c.catalogRepository.FindSessionByID(ctx, sessionID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("session_id", sessionID).Msg("session lookup ended with error")
		return models.ClassSession{}, err
	}

	return session, nil
}

// RecordGrade records a grade for a student in a class session. The value
// must lie on the 1-10 scale; an unknown session surfaces as
// store.ErrSessionNotFound.
func (c *catalogService) RecordGrade(ctx context.Context, grade models.Grade) (models.Grade, error) {
	log := logger.FromContext(ctx)

	if grade.StudentID == 0 {
		return models.Grade{}, ErrValidationNoStudent
	}
	if grade.SessionID == 0 {
		return models.Grade{}, ErrValidationNoSession
	}
	if grade.Value < 1 || grade.Value > 10 {
		log.Error().Int("value", grade.Value).Msg("grade value out of range")
		return models.Grade{}, ErrValidationInvalidGradeValue
	}

	recorded, err := c.catalogRepository.CreateGrade(ctx, grade)
	if err != nil {
		log.Err(err).Int64("session_id", grade.SessionID).Int64("student_id", grade.StudentID).Msg("grade recording ended with error")
		return models.Grade{}, err
	}

	return recorded, nil
}

// RecordAbsence records an absence for a student in a class session. An
// unknown session surfaces as store.ErrSessionNotFound.
func (c *catalogService) RecordAbsence(ctx context.Context, absence models.Absence) (models.Absence, error) {
	log := logger.FromContext(ctx)

	if absence.StudentID == 0 {
		return models.Absence{}, ErrValidationNoStudent
	}
	if absence.SessionID == 0 {
		return models.Absence{}, ErrValidationNoSession
	}

	recorded, err := c.catalogRepository.CreateAbsence(ctx, absence)
	if err != nil {
		log.Err(err).Int64("session_id", absence.SessionID).Int64("student_id", absence.StudentID).Msg("absence recording ended with error")
		return models.Absence{}, err
	}

	return recorded, nil
}

// ListGrades returns the grades matching the filter.
func (c *catalogService) ListGrades(ctx context.Context, filter store.GradeFilter) ([]models.Grade, error) {
	grades, err := c.catalogRepository.ListGrades(ctx, filter)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("grade listing ended with error")
		return nil, fmt.Errorf("grade listing ended with error: %w", err)
	}

	return grades, nil
}

// ListAbsences returns the absences matching the filter.
func (c *catalogService) ListAbsences(ctx context.Context, filter store.AbsenceFilter) ([]models.Absence, error) {
	absences, err := c.catalogRepository.ListAbsences(ctx, filter)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("absence listing ended with error")
		return nil, fmt.Errorf("absence listing ended with error: %w", err)
	}

	return absences, nil
}
