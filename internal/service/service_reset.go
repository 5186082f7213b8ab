package service

import (
	"context"
	"fmt"
	"time"

	"github.com/avasilcai/school-admin/internal/logger"
	"github.com/avasilcai/school-admin/internal/store"
	"github.com/avasilcai/school-admin/internal/utils"
	"github.com/avasilcai/school-admin/models"
)

// Notifier delivers a freshly issued password-reset token to the account
// holder through an external channel. Delivery is best-effort: the token is
// valid whether or not the notification goes out.
type Notifier interface {
	SendPasswordResetToken(ctx context.Context, email, token string, expiry time.Time) error
}

// resetService is the concrete implementation of [ResetService]. It manages
// the full password-reset token lifecycle against the token and account
// repositories.
type resetService struct {
	tokenRepository   store.ResetTokenRepository
	accountRepository store.AccountRepository

	// notifier is optional; when nil, issued tokens are not announced
	// anywhere and must be handed over out of band.
	notifier Notifier

	// tokenDuration is the fixed validity window of an issued token.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewResetService constructs a [ResetService]. notifier may be nil to
// disable outbound notifications.
func NewResetService(tokenRepository store.ResetTokenRepository, accountRepository store.AccountRepository, notifier Notifier, tokenDuration time.Duration, logger *logger.Logger) ResetService {
	return &resetService{
		tokenRepository:   tokenRepository,
		accountRepository: accountRepository,
		notifier:          notifier,
		tokenDuration:     tokenDuration,
		logger:            logger,
	}
}

// Issue generates a cryptographically random opaque token bound to the
// account, valid for the configured window (10 minutes by default), and
// persists it. Any previously issued token for the same account is replaced,
// so an account owns at most one live token.
//
// Issuance is not mutually exclusive across concurrent requests for the same
// account; the last write wins, which is acceptable for a low-value,
// short-lived credential.
func (s *resetService) Issue(ctx context.Context, account models.Account) (models.PasswordResetToken, error) {
	log := logger.FromContext(ctx)

	if account.ID == 0 {
		log.Error().Msg("invalid account provided for token issuance")
		return models.PasswordResetToken{}, ErrInvalidDataProvided
	}

	opaque, err := utils.NewOpaqueToken()
	if err != nil {
		log.Err(err).Msg("opaque token generation failed")
		return models.PasswordResetToken{}, fmt.Errorf("opaque token generation failed: %w", err)
	}

	token := models.PasswordResetToken{
		AccountID:  account.ID,
		Token:      opaque,
		ExpiryDate: time.Now().Add(s.tokenDuration),
		Used:       false,
	}

	issued, err := s.tokenRepository.Replace(ctx, token)
	if err != nil {
		log.Err(err).Int64("account_id", account.ID).Msg("token persistence failed")
		return models.PasswordResetToken{}, fmt.Errorf("token persistence failed: %w", err)
	}

	if s.notifier != nil && account.Email != "" {
		if err := s.notifier.SendPasswordResetToken(ctx, account.Email, issued.Token, issued.ExpiryDate); err != nil {
			// best-effort delivery; the token itself is already live
			log.Err(err).Int64("account_id", account.ID).Msg("reset token notification failed")
		}
	}

	return issued, nil
}

// Validate looks up the token by its opaque string and returns it only if it
// is still live: not consumed and not past its expiry date.
//
// Expired, consumed, and unknown tokens are indistinguishable to the caller
// (all surface as store.ErrResetTokenNotFound) to avoid leaking which token
// strings ever existed.
func (s *resetService) Validate(ctx context.Context, tokenString string) (models.PasswordResetToken, error) {
	log := logger.FromContext(ctx)

	if tokenString == "" {
		return models.PasswordResetToken{}, ErrInvalidDataProvided
	}

	token, err := s.tokenRepository.FindByToken(ctx, tokenString)
	if err != nil {
		return models.PasswordResetToken{}, err
	}

	if !token.IsValid(time.Now()) {
		log.Debug().Int64("token_id", token.ID).Bool("used", token.Used).Msg("token is expired or already used")
		return models.PasswordResetToken{}, store.ErrResetTokenNotFound
	}

	return token, nil
}

// Consume marks the token as used. The transition is terminal: a consumed
// token never validates again. Consuming an already consumed token is a
// state-wise no-op and re-authorizes nothing.
func (s *resetService) Consume(ctx context.Context, token models.PasswordResetToken) error {
	log := logger.FromContext(ctx)

	if err := s.tokenRepository.MarkUsed(ctx, token.ID); err != nil {
		log.Err(err).Int64("token_id", token.ID).Msg("token consumption failed")
		return fmt.Errorf("token consumption failed: %w", err)
	}

	return nil
}

// ResetPassword performs the composed reset operation: validate the token,
// hash the new password, store it on the owning account, and consume the
// token so it never authorizes another change.
func (s *resetService) ResetPassword(ctx context.Context, tokenString, newPassword string) error {
	log := logger.FromContext(ctx)

	if newPassword == "" {
		return ErrInvalidDataProvided
	}

	token, err := s.Validate(ctx, tokenString)
	if err != nil {
		return err
	}

	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return fmt.Errorf("password hashing failed: %w", err)
	}

	if err := s.accountRepository.UpdatePassword(ctx, token.AccountID, hash); err != nil {
		log.Err(err).Int64("account_id", token.AccountID).Msg("password update failed")
		return fmt.Errorf("password update failed: %w", err)
	}

	return s.Consume(ctx, token)
}
