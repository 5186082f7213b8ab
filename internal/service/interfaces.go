package service

import (
	"context"

	"github.com/avasilcai/school-admin/internal/store"
	"github.com/avasilcai/school-admin/models"
)

// ProvisioningService validates and persists new accounts of any role.
type ProvisioningService interface {
	// ProvisionAccount creates the account after uniqueness and
	// role-mapping checks; plainPassword is hashed before persistence.
	ProvisionAccount(ctx context.Context, account models.Account, plainPassword string) (models.Account, error)

	// DeriveUsername derives a free username from the holder's names and
	// role, disambiguating collisions with a counter suffix.
	DeriveUsername(ctx context.Context, firstName, lastName string, role models.Role) (string, error)
}

// AuthService verifies presented credentials and manages the session token
// lifecycle.
type AuthService interface {
	Login(ctx context.Context, username, password string) (models.Account, error)
	CreateToken(ctx context.Context, account models.Account) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// ResetService manages the password-reset token lifecycle: issuance,
// validation, consumption, and the composed password-reset operation.
type ResetService interface {
	Issue(ctx context.Context, account models.Account) (models.PasswordResetToken, error)
	Validate(ctx context.Context, tokenString string) (models.PasswordResetToken, error)
	Consume(ctx context.Context, token models.PasswordResetToken) error
	ResetPassword(ctx context.Context, tokenString, newPassword string) error
}

// CatalogService manages classes, class sessions, and the grades and
// absences recorded against them.
type CatalogService interface {
	CreateClass(ctx context.Context, class models.SchoolClass) (models.SchoolClass, error)
	ListClasses(ctx context.Context) ([]models.SchoolClass, error)
	CreateSession(ctx context.Context, session models.ClassSession) (models.ClassSession, error)
	GetSession(ctx context.Context, sessionID int64) (models.ClassSession, error)
	RecordGrade(ctx context.Context, grade models.Grade) (models.Grade, error)
	RecordAbsence(ctx context.Context, absence models.Absence) (models.Absence, error)
	ListGrades(ctx context.Context, filter store.GradeFilter) ([]models.Grade, error)
	ListAbsences(ctx context.Context, filter store.AbsenceFilter) ([]models.Absence, error)
}

// MenuService manages the cafeteria menu.
type MenuService interface {
	AddMenuItem(ctx context.Context, item models.MenuItem) (models.MenuItem, error)
	ListMenu(ctx context.Context, weekday int) ([]models.MenuItem, error)
	RemoveMenuItem(ctx context.Context, itemID int64) error
}
