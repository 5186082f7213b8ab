package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avasilcai/school-admin/internal/config"
	"github.com/avasilcai/school-admin/internal/logger"
	"github.com/avasilcai/school-admin/internal/store"
	"github.com/avasilcai/school-admin/internal/utils"
	"github.com/avasilcai/school-admin/models"
)

// authService is the concrete implementation of AuthService.
// It verifies presented credentials against the account repository and
// manages the session JWT lifecycle.
type authService struct {
	// accountRepository is the data-access layer used to look up accounts.
	accountRepository store.AccountRepository

	// tokenSignKey is the HMAC secret used to sign and verify session JWTs.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued session JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued session JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// AccountRepository and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(accountRepository store.AccountRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		accountRepository: accountRepository,
		tokenSignKey:      cfg.TokenSignKey,
		tokenIssuer:       cfg.TokenIssuer,
		tokenDuration:     cfg.TokenDuration,
		logger:            logger,
	}
}

// Login authenticates an existing account.
//
// It validates that both username and password are non-empty, looks up the
// account, and compares the presented password against the stored bcrypt
// hash.
//
// An unknown username and a wrong password both surface as
// ErrInvalidCredentials so that callers cannot probe which usernames exist.
//
// Returns the authenticated account record or:
//   - ErrInvalidDataProvided if username or password is empty.
//   - ErrInvalidCredentials if the account is unknown or the password is wrong.
//   - A wrapped storage error on unexpected repository failures.
func (a *authService) Login(ctx context.Context, username, password string) (models.Account, error) {
	log := logger.FromContext(ctx)

	if username == "" || password == "" {
		log.Error().Str("username", username).Msg("invalid login data provided")
		return models.Account{}, ErrInvalidDataProvided
	}

	foundAccount, err := a.accountRepository.FindAccountByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrAccountNotFound) {
			log.Error().Str("username", username).Msg("unknown username")
			return models.Account{}, ErrInvalidCredentials
		}

		log.Err(err).Str("username", username).Msg("account search by username failed")
		return models.Account{}, fmt.Errorf("account search by username failed: %w", err)
	}

	if err := utils.CheckPassword(foundAccount.Password, password); err != nil {
		if errors.Is(err, utils.ErrPasswordMismatch) {
			log.Error().
				Int64("id", foundAccount.ID).
				Str("username", foundAccount.Username).
				Msg("wrong password")
			return models.Account{}, ErrInvalidCredentials
		}

		log.Err(err).Str("username", username).Msg("password comparison failed")
		return models.Account{}, fmt.Errorf("password comparison failed: %w", err)
	}

	return foundAccount, nil
}

// CreateToken issues a signed session JWT for the given account.
//
// The token is signed with the configured tokenSignKey, carries the
// configured tokenIssuer as the "iss" claim, embeds the account's username
// and role, and expires after tokenDuration.
//
// Returns the token model on success or a wrapped error if JWT generation fails.
func (a *authService) CreateToken(ctx context.Context, account models.Account) (models.Token, error) {
	token, err := utils.GenerateSessionToken(a.tokenIssuer, account.Username, account.Role, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw session JWT string.
//
// It delegates to utils.ValidateAndParseSessionToken, verifying the
// signature, the issuer claim, the expiry, and the role claim. Any
// validation failure (expired, wrong issuer, malformed, unknown role) is
// normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors — the gate fails closed with a uniform 401.
//
// Returns the decoded token model on success or ErrTokenIsExpiredOrInvalid on
// any validation failure.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseSessionToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
