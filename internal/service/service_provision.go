// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Vasilcai

package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/avasilcai/school-admin/internal/logger"
	"github.com/avasilcai/school-admin/internal/store"
	"github.com/avasilcai/school-admin/internal/utils"
	"github.com/avasilcai/school-admin/models"
)

// provisioningService is the concrete implementation of
// [ProvisioningService]. It validates candidate accounts, enforces global
// username/email uniqueness, hashes credentials, and dispatches persistence
// to the account repository.
type provisioningService struct {
	accountRepository store.AccountRepository

	logger *logger.Logger
}

// NewProvisioningService constructs a [ProvisioningService] wired to the
// given account repository.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewProvisioningService(accountRepository store.AccountRepository, logger *logger.Logger) ProvisioningService {
	return &provisioningService{
		accountRepository: accountRepository,
		logger:            logger,
	}
}

// ProvisionAccount creates a new account of any role.
//
// The operation proceeds in a fixed order so that no partial write is ever
// observable:
//  1. Validates that username, email and plainPassword are non-empty and
//     that the role is known — ErrInvalidDataProvided otherwise.
//  2. Validates that the populated profile variant matches the declared
//     role — ErrInvalidRoleMapping otherwise.
//  3. Rejects usernames and emails already taken by any role
//     (store.ErrUsernameAlreadyExists / store.ErrEmailAlreadyExists).
//  4. Hashes the plaintext password; plaintext is never persisted.
//  5. Persists the account and its profile row in one transaction.
//
// The uniqueness pre-check and the insert are separate operations; a
// concurrent registration that slips between them fails at the database's
// unique constraint and is surfaced as the same duplicate error.
//
// Returns the persisted account including its generated identifier.
func (p *provisioningService) ProvisionAccount(ctx context.Context, account models.Account, plainPassword string) (models.Account, error) {
	log := logger.FromContext(ctx)

	if account.Username == "" || account.Email == "" || plainPassword == "" || !account.Role.Valid() {
		log.Error().Str("username", account.Username).Str("role", string(account.Role)).Msg("invalid account data provided")
		return models.Account{}, ErrInvalidDataProvided
	}

	if !account.HasMatchingProfile() {
		log.Error().Str("username", account.Username).Str("role", string(account.Role)).Msg("account role does not match its profile")
		return models.Account{}, ErrInvalidRoleMapping
	}

	if err := p.checkUnique(ctx, account); err != nil {
		return models.Account{}, err
	}

	hash, err := utils.HashPassword(plainPassword)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.Account{}, fmt.Errorf("password hashing failed: %w", err)
	}
	account.Password = hash

	created, err := p.accountRepository.CreateAccount(ctx, account)
	if err != nil {
		log.Err(err).Str("username", account.Username).Msg("account creation ended with error")
		return models.Account{}, fmt.Errorf("account creation ended with error: %w", err)
	}

	return created, nil
}

// DeriveUsername derives a free username of the form "first.last[counter][suffix]"
// from the holder's names, e.g. "maria.popescu.prof" for a teacher. When the
// base form is taken, a counter is appended before the role suffix
// ("maria.popescu1.prof", "maria.popescu2.prof", ...) until a free username
// is found.
func (p *provisioningService) DeriveUsername(ctx context.Context, firstName, lastName string, role models.Role) (string, error) {
	log := logger.FromContext(ctx)

	if firstName == "" || lastName == "" || !role.Valid() {
		log.Error().Str("first_name", firstName).Str("last_name", lastName).Msg("invalid name data provided")
		return "", ErrInvalidDataProvided
	}

	base := normalizeNamePart(firstName) + "." + normalizeNamePart(lastName)
	suffix := roleUsernameSuffix(role)

	for counter := 0; counter < maxUsernameCounter; counter++ {
		candidate := base
		if counter > 0 {
			candidate += strconv.Itoa(counter)
		}
		candidate += suffix

		_, err := p.accountRepository.FindAccountByUsername(ctx, candidate)
		if errors.Is(err, store.ErrAccountNotFound) {
			return candidate, nil
		}
		if err != nil {
			log.Err(err).Str("candidate", candidate).Msg("username lookup failed")
			return "", fmt.Errorf("username lookup failed: %w", err)
		}
		// candidate is taken, try the next counter
	}

	return "", fmt.Errorf("no free username found for %s.%s", base, suffix)
}

// maxUsernameCounter bounds the disambiguation loop; hitting it means
// hundreds of namesakes, which indicates bad input rather than a real
// school roster.
const maxUsernameCounter = 100

// roleUsernameSuffix returns the role marker appended to derived usernames.
// Only teachers carry one; the remaining roles use the bare "first.last"
// form.
func roleUsernameSuffix(role models.Role) string {
	if role == models.RoleTeacher {
		return ".prof"
	}
	return ""
}

// romanianDiacritics folds the Romanian letters that appear in legal names
// to their ASCII base so derived usernames stay plain ASCII.
var romanianDiacritics = strings.NewReplacer(
	"ă", "a", "â", "a", "î", "i", "ș", "s", "ş", "s", "ț", "t", "ţ", "t",
	"Ă", "a", "Â", "a", "Î", "i", "Ș", "s", "Ş", "s", "Ț", "t", "Ţ", "t",
)

func normalizeNamePart(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = romanianDiacritics.Replace(name)
	return strings.ReplaceAll(name, " ", "-")
}

// checkUnique rejects a candidate whose username or email is already taken
// by any existing account, regardless of role.
func (p *provisioningService) checkUnique(ctx context.Context, account models.Account) error {
	log := logger.FromContext(ctx)

	_, err := p.accountRepository.FindAccountByUsername(ctx, account.Username)
	switch {
	case err == nil:
		log.Error().Str("username", account.Username).Msg("username already exists")
		return store.ErrUsernameAlreadyExists
	case !errors.Is(err, store.ErrAccountNotFound):
		return fmt.Errorf("username uniqueness check failed: %w", err)
	}

	_, err = p.accountRepository.FindAccountByEmail(ctx, account.Email)
	switch {
	case err == nil:
		log.Error().Str("email", account.Email).Msg("email already exists")
		return store.ErrEmailAlreadyExists
	case !errors.Is(err, store.ErrAccountNotFound):
		return fmt.Errorf("email uniqueness check failed: %w", err)
	}

	return nil
}
