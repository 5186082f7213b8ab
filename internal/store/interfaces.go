package store

import (
	"context"

	"github.com/avasilcai/school-admin/models"
)

// AccountRepository is the durable store for the polymorphic account
// hierarchy. Creation persists the common account row and the role-specific
// profile row in a single transaction.
type AccountRepository interface {
	CreateAccount(ctx context.Context, account models.Account) (models.Account, error)
	FindAccountByUsername(ctx context.Context, username string) (models.Account, error)
	FindAccountByEmail(ctx context.Context, email string) (models.Account, error)
	UpdatePassword(ctx context.Context, accountID int64, passwordHash string) error
}

// ResetTokenRepository stores password-reset tokens. An account owns at most
// one live token: Replace atomically removes any prior token before
// inserting the new one.
type ResetTokenRepository interface {
	Replace(ctx context.Context, token models.PasswordResetToken) (models.PasswordResetToken, error)
	FindByToken(ctx context.Context, tokenString string) (models.PasswordResetToken, error)
	MarkUsed(ctx context.Context, tokenID int64) error

	// PurgeDead deletes expired and consumed tokens, returning the number
	// of rows removed. Dead tokens never validate, so purging is purely
	// housekeeping.
	PurgeDead(ctx context.Context) (int64, error)
}

// CatalogRepository stores the school catalog: classes, held class sessions,
// and the grades and absences recorded against them.
type CatalogRepository interface {
	CreateClass(ctx context.Context, class models.SchoolClass) (models.SchoolClass, error)
	ListClasses(ctx context.Context) ([]models.SchoolClass, error)
	CreateSession(ctx context.Context, session models.ClassSession) (models.ClassSession, error)
	FindSessionByID(ctx context.Context, sessionID int64) (models.ClassSession, error)
	CreateGrade(ctx context.Context, grade models.Grade) (models.Grade, error)
	CreateAbsence(ctx context.Context, absence models.Absence) (models.Absence, error)
	ListGrades(ctx context.Context, filter GradeFilter) ([]models.Grade, error)
	ListAbsences(ctx context.Context, filter AbsenceFilter) ([]models.Absence, error)
}

// MenuRepository stores the cafeteria menu.
type MenuRepository interface {
	CreateMenuItem(ctx context.Context, item models.MenuItem) (models.MenuItem, error)
	ListMenu(ctx context.Context, weekday int) ([]models.MenuItem, error)
	DeleteMenuItem(ctx context.Context, itemID int64) error
}
