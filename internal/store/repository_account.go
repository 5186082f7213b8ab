package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/avasilcai/school-admin/internal/logger"
	"github.com/avasilcai/school-admin/models"
	"github.com/jackc/pgerrcode"
)

// accountRepository is the PostgreSQL-backed implementation of
// [AccountRepository]. It persists the common "accounts" row together with
// the role-specific profile row in a single transaction.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type accountRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAccountRepository constructs an [AccountRepository] backed by the
// provided database connection and logger.
func NewAccountRepository(db *DB, logger *logger.Logger) AccountRepository {
	logger.Debug().Msg("creating account repository")
	return &accountRepository{
		db:     db,
		logger: logger,
	}
}

// CreateAccount persists a new account and returns the fully populated
// [models.Account] with server-assigned fields (ID, CreatedAt).
//
// The account row and the role-specific profile row are written in one
// transaction, so no partial account is ever observable. The uniqueness of
// username and email across all roles is ultimately enforced by the
// database's unique constraints: a constraint violation at insert time —
// including one caused by a concurrent registration that passed the
// service-level pre-check — is mapped to the matching sentinel error
// rather than surfacing as an unexpected failure.
//
// Error handling:
//   - unique_violation on accounts_username_key → [ErrUsernameAlreadyExists].
//   - unique_violation on accounts_email_key → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *accountRepository) CreateAccount(ctx context.Context, account models.Account) (models.Account, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.CreateAccount").Msg("error: cannot begin transaction")
		return models.Account{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	row := tx.QueryRowContext(ctx, createAccount, account.Username, account.Email, account.Password, account.Role)
	if err := row.Scan(&account.ID, &account.CreatedAt); err != nil {
		log.Err(err).Str("func", "*accountRepository.CreateAccount").Msg("error: account insert failed")
		return models.Account{}, classifyAccountInsertError(err)
	}

	// persist the role-specific profile row; the switch is exhaustive over
	// all known roles
	switch account.Role {
	case models.RoleStudent:
		_, err = tx.ExecContext(ctx, createStudentProfile,
			account.ID, account.Student.FirstName, account.Student.LastName, account.Student.ClassID)
	case models.RoleParent:
		_, err = tx.ExecContext(ctx, createParentProfile,
			account.ID, account.Parent.FirstName, account.Parent.LastName,
			account.Parent.MotherName, account.Parent.MotherPhone,
			account.Parent.FatherName, account.Parent.FatherPhone)
	case models.RoleTeacher:
		_, err = tx.ExecContext(ctx, createTeacherProfile,
			account.ID, account.Teacher.FirstName, account.Teacher.LastName,
			account.Teacher.Subject, account.Teacher.Type)
	case models.RoleAdmin, models.RoleChef:
		// no profile row for these roles
	default:
		err = fmt.Errorf("unknown role %q", account.Role)
	}
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.CreateAccount").Msg("error: profile insert failed")
		return models.Account{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*accountRepository.CreateAccount").Msg("error: commit failed")
		return models.Account{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return account, nil
}

// FindAccountByUsername retrieves the account whose username matches exactly,
// together with its role-specific profile.
//
// Error handling:
//   - No matching row → [ErrAccountNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *accountRepository) FindAccountByUsername(ctx context.Context, username string) (models.Account, error) {
	return r.findAccount(ctx, findAccountByUsername, username)
}

// FindAccountByEmail retrieves the account whose email matches exactly,
// together with its role-specific profile.
//
// Error handling mirrors [accountRepository.FindAccountByUsername].
func (r *accountRepository) FindAccountByEmail(ctx context.Context, email string) (models.Account, error) {
	return r.findAccount(ctx, findAccountByEmail, email)
}

// UpdatePassword replaces the stored password hash of the given account.
func (r *accountRepository) UpdatePassword(ctx context.Context, accountID int64, passwordHash string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, updateAccountPassword, accountID, passwordHash)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.UpdatePassword").Msg("error: password update failed")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrAccountNotFound
	}

	return nil
}

func (r *accountRepository) findAccount(ctx context.Context, query, arg string) (models.Account, error) {
	log := logger.FromContext(ctx)

	var account models.Account
	row := r.db.QueryRowContext(ctx, query, arg)
	if err := row.Scan(&account.ID, &account.Username, &account.Email, &account.Password, &account.Role, &account.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Account{}, ErrAccountNotFound
		}

		log.Err(err).Str("func", "*accountRepository.findAccount").Msg("error: scanning error")
		return models.Account{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := r.loadProfile(ctx, &account); err != nil {
		log.Err(err).Str("func", "*accountRepository.findAccount").Msg("error: loading profile failed")
		return models.Account{}, err
	}

	return account, nil
}

// loadProfile populates the role-specific profile of an already scanned
// account row. The switch is exhaustive; admin and chef accounts have no
// profile table.
func (r *accountRepository) loadProfile(ctx context.Context, account *models.Account) error {
	switch account.Role {
	case models.RoleStudent:
		profile := &models.StudentProfile{}
		row := r.db.QueryRowContext(ctx, findStudentProfile, account.ID)
		if err := row.Scan(&profile.FirstName, &profile.LastName, &profile.ClassID); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		account.Student = profile
	case models.RoleParent:
		profile := &models.ParentProfile{}
		row := r.db.QueryRowContext(ctx, findParentProfile, account.ID)
		if err := row.Scan(&profile.FirstName, &profile.LastName,
			&profile.MotherName, &profile.MotherPhone,
			&profile.FatherName, &profile.FatherPhone); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		account.Parent = profile
	case models.RoleTeacher:
		profile := &models.TeacherProfile{}
		row := r.db.QueryRowContext(ctx, findTeacherProfile, account.ID)
		if err := row.Scan(&profile.FirstName, &profile.LastName, &profile.Subject, &profile.Type); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		account.Teacher = profile
	case models.RoleAdmin, models.RoleChef:
		// no profile table
	default:
		return fmt.Errorf("unknown role %q", account.Role)
	}

	return nil
}

// classifyAccountInsertError maps a failed account insert to a sentinel
// error. Unique violations are attributed to the username or email column
// through the violated constraint's name.
func classifyAccountInsertError(err error) error {
	if constraint := uniqueViolationConstraint(err); constraint != "" {
		switch {
		case strings.Contains(constraint, "username"):
			return ErrUsernameAlreadyExists
		case strings.Contains(constraint, "email"):
			return ErrEmailAlreadyExists
		}
	}

	switch postgresError(err) {
	case pgerrcode.UniqueViolation:
		// unique violation on an unrecognised constraint; username is the
		// most common cause
		return ErrUsernameAlreadyExists
	default:
		return fmt.Errorf("unexpected DB error: %w", err)
	}
}
