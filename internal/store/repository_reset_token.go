package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/avasilcai/school-admin/internal/logger"
	"github.com/avasilcai/school-admin/models"
)

// resetTokenRepository is the PostgreSQL-backed implementation of
// [ResetTokenRepository]. It maintains the "at most one live token per
// account" invariant by replacing any previous token inside the same
// transaction that inserts the new one.
type resetTokenRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewResetTokenRepository constructs a [ResetTokenRepository] backed by the
// provided database connection and logger.
func NewResetTokenRepository(db *DB, logger *logger.Logger) ResetTokenRepository {
	logger.Debug().Msg("creating reset token repository")
	return &resetTokenRepository{
		db:     db,
		logger: logger,
	}
}

// Replace atomically removes any prior token owned by the account and
// inserts the new one, returning it with its server-assigned ID.
//
// Two concurrent issuances for the same account race benignly: the last
// write wins, which is acceptable for a short-lived one-time credential.
func (r *resetTokenRepository) Replace(ctx context.Context, token models.PasswordResetToken) (models.PasswordResetToken, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*resetTokenRepository.Replace").Msg("error: cannot begin transaction")
		return models.PasswordResetToken{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	if _, err := tx.ExecContext(ctx, deleteResetTokensByAccount, token.AccountID); err != nil {
		log.Err(err).Str("func", "*resetTokenRepository.Replace").Msg("error: deleting previous token failed")
		return models.PasswordResetToken{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	row := tx.QueryRowContext(ctx, createResetToken, token.AccountID, token.Token, token.ExpiryDate, token.Used)
	if err := row.Scan(&token.ID); err != nil {
		log.Err(err).Str("func", "*resetTokenRepository.Replace").Msg("error: token insert failed")
		return models.PasswordResetToken{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*resetTokenRepository.Replace").Msg("error: commit failed")
		return models.PasswordResetToken{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return token, nil
}

// FindByToken retrieves a token row by its opaque token string.
//
// Error handling:
//   - No matching row → [ErrResetTokenNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *resetTokenRepository) FindByToken(ctx context.Context, tokenString string) (models.PasswordResetToken, error) {
	log := logger.FromContext(ctx)

	var token models.PasswordResetToken
	row := r.db.QueryRowContext(ctx, findResetTokenByToken, tokenString)
	if err := row.Scan(&token.ID, &token.AccountID, &token.Token, &token.ExpiryDate, &token.Used); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.PasswordResetToken{}, ErrResetTokenNotFound
		}

		log.Err(err).Str("func", "*resetTokenRepository.FindByToken").Msg("error: scanning error")
		return models.PasswordResetToken{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return token, nil
}

// MarkUsed flips the used flag of the token to true. The transition is
// terminal; there is no way to un-use a token. Marking an already used
// token again is a state-wise no-op.
func (r *resetTokenRepository) MarkUsed(ctx context.Context, tokenID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, markResetTokenUsed, tokenID)
	if err != nil {
		log.Err(err).Str("func", "*resetTokenRepository.MarkUsed").Msg("error: marking token used failed")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrResetTokenNotFound
	}

	return nil
}

// PurgeDead removes every expired or consumed token in one statement and
// reports how many rows went away.
func (r *resetTokenRepository) PurgeDead(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, purgeDeadResetTokens)
	if err != nil {
		log.Err(err).Str("func", "*resetTokenRepository.PurgeDead").Msg("error: purging dead tokens failed")
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	return affected, nil
}
