package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/avasilcai/school-admin/internal/logger"
	"github.com/avasilcai/school-admin/models"
	"github.com/jackc/pgerrcode"
)

// catalogRepository is the PostgreSQL-backed implementation of
// [CatalogRepository]: classes, class sessions, grades and absences.
// Filtered listings are built with squirrel; single-row operations use
// prepared query constants.
type catalogRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCatalogRepository constructs a [CatalogRepository] backed by the
// provided database connection and logger.
func NewCatalogRepository(db *DB, logger *logger.Logger) CatalogRepository {
	logger.Debug().Msg("creating catalog repository")
	return &catalogRepository{
		db:     db,
		logger: logger,
	}
}

// CreateClass persists a new school class and returns it with its
// server-assigned ID.
func (r *catalogRepository) CreateClass(ctx context.Context, class models.SchoolClass) (models.SchoolClass, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createClass, class.Name, class.Year)
	if err := row.Scan(&class.ID); err != nil {
		log.Err(err).Str("func", "*catalogRepository.CreateClass").Msg("error: class insert failed")
		return models.SchoolClass{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return class, nil
}

// ListClasses returns all school classes ordered by year and name.
func (r *catalogRepository) ListClasses(ctx context.Context) ([]models.SchoolClass, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listClasses)
	if err != nil {
		log.Err(err).Str("func", "*catalogRepository.ListClasses").Msg("error: query failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var classes []models.SchoolClass
	for rows.Next() {
		var class models.SchoolClass
		if err := rows.Scan(&class.ID, &class.Name, &class.Year); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		classes = append(classes, class)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return classes, nil
}

// CreateSession persists a held class session. A foreign-key violation on
// the class reference is mapped to [ErrClassNotFound].
func (r *catalogRepository) CreateSession(ctx context.Context, session models.ClassSession) (models.ClassSession, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createSession, session.ClassID, session.TeacherID, session.Subject, session.HeldAt)
	if err := row.Scan(&session.ID); err != nil {
		log.Err(err).Str("func", "*catalogRepository.CreateSession").Msg("error: session insert failed")

		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return models.ClassSession{}, ErrClassNotFound
		}
		return models.ClassSession{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return session, nil
}

// FindSessionByID retrieves a class session by its ID.
//
// Error handling:
//   - No matching row → [ErrSessionNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *catalogRepository) FindSessionByID(ctx context.Context, sessionID int64) (models.ClassSession, error) {
	log := logger.FromContext(ctx)

	var session models.ClassSession
	row := r.db.QueryRowContext(ctx, findSessionByID, sessionID)
	if err := row.Scan(&session.ID, &session.ClassID, &session.TeacherID, &session.Subject, &session.HeldAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.ClassSession{}, ErrSessionNotFound
		}

		log.Err(err).Str("func", "*catalogRepository.FindSessionByID").Msg("error: scanning error")
		return models.ClassSession{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return session, nil
}

// CreateGrade records a grade against a class session. A foreign-key
// violation on the session reference is mapped to [ErrSessionNotFound].
func (r *catalogRepository) CreateGrade(ctx context.Context, grade models.Grade) (models.Grade, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createGrade, grade.SessionID, grade.StudentID, grade.Value)
	if err := row.Scan(&grade.ID, &grade.CreatedAt); err != nil {
		log.Err(err).Str("func", "*catalogRepository.CreateGrade").Msg("error: grade insert failed")

		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return models.Grade{}, ErrSessionNotFound
		}
		return models.Grade{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return grade, nil
}

// CreateAbsence records an absence against a class session. A foreign-key
// violation on the session reference is mapped to [ErrSessionNotFound].
func (r *catalogRepository) CreateAbsence(ctx context.Context, absence models.Absence) (models.Absence, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createAbsence, absence.SessionID, absence.StudentID, absence.Excused)
	if err := row.Scan(&absence.ID, &absence.CreatedAt); err != nil {
		log.Err(err).Str("func", "*catalogRepository.CreateAbsence").Msg("error: absence insert failed")

		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return models.Absence{}, ErrSessionNotFound
		}
		return models.Absence{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return absence, nil
}

// ListGrades returns the grades matching the filter, newest first.
func (r *catalogRepository) ListGrades(ctx context.Context, filter GradeFilter) ([]models.Grade, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListGradesQuery(filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*catalogRepository.ListGrades").Msg("error: query failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var grades []models.Grade
	for rows.Next() {
		var grade models.Grade
		if err := rows.Scan(&grade.ID, &grade.SessionID, &grade.StudentID, &grade.Value, &grade.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		grades = append(grades, grade)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return grades, nil
}

// ListAbsences returns the absences matching the filter, newest first.
func (r *catalogRepository) ListAbsences(ctx context.Context, filter AbsenceFilter) ([]models.Absence, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListAbsencesQuery(filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*catalogRepository.ListAbsences").Msg("error: query failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var absences []models.Absence
	for rows.Next() {
		var absence models.Absence
		if err := rows.Scan(&absence.ID, &absence.SessionID, &absence.StudentID, &absence.Excused, &absence.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		absences = append(absences, absence)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return absences, nil
}
