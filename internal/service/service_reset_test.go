package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/avasilcai/school-admin/internal/logger"
	"github.com/avasilcai/school-admin/internal/store"
	"github.com/avasilcai/school-admin/internal/utils"
	"github.com/avasilcai/school-admin/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mocks: store.ResetTokenRepository, Notifier
// ─────────────────────────────────────────────

type mockResetTokenRepository struct {
	replaceFn     func(ctx context.Context, token models.PasswordResetToken) (models.PasswordResetToken, error)
	findByTokenFn func(ctx context.Context, tokenString string) (models.PasswordResetToken, error)
	markUsedFn    func(ctx context.Context, tokenID int64) error
	purgeDeadFn   func(ctx context.Context) (int64, error)
}

func (m *mockResetTokenRepository) Replace(ctx context.Context, token models.PasswordResetToken) (models.PasswordResetToken, error) {
	if m.replaceFn != nil {
		return m.replaceFn(ctx, token)
	}
	token.ID = 1
	return token, nil
}

func (m *mockResetTokenRepository) FindByToken(ctx context.Context, tokenString string) (models.PasswordResetToken, error) {
	if m.findByTokenFn != nil {
		return m.findByTokenFn(ctx, tokenString)
	}
	return models.PasswordResetToken{}, store.ErrResetTokenNotFound
}

func (m *mockResetTokenRepository) MarkUsed(ctx context.Context, tokenID int64) error {
	if m.markUsedFn != nil {
		return m.markUsedFn(ctx, tokenID)
	}
	return nil
}

func (m *mockResetTokenRepository) PurgeDead(ctx context.Context) (int64, error) {
	if m.purgeDeadFn != nil {
		return m.purgeDeadFn(ctx)
	}
	return 0, nil
}

type mockNotifier struct {
	sendFn func(ctx context.Context, email, token string, expiry time.Time) error
	calls  int
}

func (m *mockNotifier) SendPasswordResetToken(ctx context.Context, email, token string, expiry time.Time) error {
	m.calls++
	if m.sendFn != nil {
		return m.sendFn(ctx, email, token, expiry)
	}
	return nil
}

func newResetServiceForTest(tokens *mockResetTokenRepository, accounts *mockAccountRepository, notifier Notifier) ResetService {
	return NewResetService(tokens, accounts, notifier, 10*time.Minute, logger.Nop())
}

// ─────────────────────────────────────────────
// Issue
// ─────────────────────────────────────────────

func TestIssue_Success(t *testing.T) {
	var stored models.PasswordResetToken
	tokens := &mockResetTokenRepository{
		replaceFn: func(ctx context.Context, token models.PasswordResetToken) (models.PasswordResetToken, error) {
			stored = token
			token.ID = 42
			return token, nil
		},
	}
	svc := newResetServiceForTest(tokens, &mockAccountRepository{}, nil)

	before := time.Now()
	issued, err := svc.Issue(context.Background(), models.Account{ID: 9, Email: "ion@scoala.ro"})

	require.NoError(t, err)
	assert.Equal(t, int64(42), issued.ID)
	assert.Equal(t, int64(9), stored.AccountID)
	assert.Len(t, stored.Token, 64) // 32 random bytes, hex encoded
	assert.False(t, stored.Used)

	// expiry sits ten minutes out
	assert.WithinDuration(t, before.Add(10*time.Minute), stored.ExpiryDate, 2*time.Second)
}

func TestIssue_InvalidAccount(t *testing.T) {
	svc := newResetServiceForTest(&mockResetTokenRepository{}, &mockAccountRepository{}, nil)

	_, err := svc.Issue(context.Background(), models.Account{})

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestIssue_NotifiesGateway(t *testing.T) {
	notifier := &mockNotifier{
		sendFn: func(ctx context.Context, email, token string, expiry time.Time) error {
			assert.Equal(t, "ion@scoala.ro", email)
			assert.NotEmpty(t, token)
			return nil
		},
	}
	svc := newResetServiceForTest(&mockResetTokenRepository{}, &mockAccountRepository{}, notifier)

	_, err := svc.Issue(context.Background(), models.Account{ID: 9, Email: "ion@scoala.ro"})

	require.NoError(t, err)
	assert.Equal(t, 1, notifier.calls)
}

func TestIssue_NotificationFailureIsNotFatal(t *testing.T) {
	notifier := &mockNotifier{
		sendFn: func(ctx context.Context, email, token string, expiry time.Time) error {
			return errors.New("gateway down")
		},
	}
	svc := newResetServiceForTest(&mockResetTokenRepository{}, &mockAccountRepository{}, notifier)

	issued, err := svc.Issue(context.Background(), models.Account{ID: 9, Email: "ion@scoala.ro"})

	// the token is live even when the notification cannot go out
	require.NoError(t, err)
	assert.NotEmpty(t, issued.Token)
}

func TestIssue_PersistenceFailure(t *testing.T) {
	tokens := &mockResetTokenRepository{
		replaceFn: func(ctx context.Context, token models.PasswordResetToken) (models.PasswordResetToken, error) {
			return models.PasswordResetToken{}, errors.New("db down")
		},
	}
	svc := newResetServiceForTest(tokens, &mockAccountRepository{}, nil)

	_, err := svc.Issue(context.Background(), models.Account{ID: 9})

	require.Error(t, err)
}

// ─────────────────────────────────────────────
// Validate
// ─────────────────────────────────────────────

func TestValidate_LiveToken(t *testing.T) {
	live := models.PasswordResetToken{ID: 1, AccountID: 9, Token: "deadbeef", ExpiryDate: time.Now().Add(5 * time.Minute)}
	tokens := &mockResetTokenRepository{
		findByTokenFn: func(ctx context.Context, tokenString string) (models.PasswordResetToken, error) {
			return live, nil
		},
	}
	svc := newResetServiceForTest(tokens, &mockAccountRepository{}, nil)

	token, err := svc.Validate(context.Background(), "deadbeef")

	require.NoError(t, err)
	assert.Equal(t, live.ID, token.ID)
}

func TestValidate_ExpiredAndUsedLookLikeUnknown(t *testing.T) {
	tests := []struct {
		name  string
		token models.PasswordResetToken
	}{
		{"expired", models.PasswordResetToken{ID: 1, ExpiryDate: time.Now().Add(-time.Second)}},
		{"used", models.PasswordResetToken{ID: 1, ExpiryDate: time.Now().Add(5 * time.Minute), Used: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := &mockResetTokenRepository{
				findByTokenFn: func(ctx context.Context, tokenString string) (models.PasswordResetToken, error) {
					return tt.token, nil
				},
			}
			svc := newResetServiceForTest(tokens, &mockAccountRepository{}, nil)

			_, err := svc.Validate(context.Background(), "deadbeef")

			assert.ErrorIs(t, err, store.ErrResetTokenNotFound)
		})
	}
}

func TestValidate_EmptyToken(t *testing.T) {
	svc := newResetServiceForTest(&mockResetTokenRepository{}, &mockAccountRepository{}, nil)

	_, err := svc.Validate(context.Background(), "")

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestValidate_UnknownToken(t *testing.T) {
	svc := newResetServiceForTest(&mockResetTokenRepository{}, &mockAccountRepository{}, nil)

	_, err := svc.Validate(context.Background(), "unknown")

	assert.ErrorIs(t, err, store.ErrResetTokenNotFound)
}

// ─────────────────────────────────────────────
// ResetPassword
// ─────────────────────────────────────────────

func TestResetPassword_FullFlow(t *testing.T) {
	live := models.PasswordResetToken{ID: 1, AccountID: 9, Token: "deadbeef", ExpiryDate: time.Now().Add(5 * time.Minute)}

	var consumedID int64
	tokens := &mockResetTokenRepository{
		findByTokenFn: func(ctx context.Context, tokenString string) (models.PasswordResetToken, error) {
			return live, nil
		},
		markUsedFn: func(ctx context.Context, tokenID int64) error {
			consumedID = tokenID
			return nil
		},
	}

	var updatedAccountID int64
	var updatedHash string
	accounts := &mockAccountRepository{
		updatePasswordFn: func(ctx context.Context, accountID int64, passwordHash string) error {
			updatedAccountID = accountID
			updatedHash = passwordHash
			return nil
		},
	}

	svc := newResetServiceForTest(tokens, accounts, nil)

	err := svc.ResetPassword(context.Background(), "deadbeef", "parola-noua")

	require.NoError(t, err)
	assert.Equal(t, int64(9), updatedAccountID)
	assert.Equal(t, int64(1), consumedID)

	// the stored credential is a bcrypt hash of the new password
	assert.NotEqual(t, "parola-noua", updatedHash)
	assert.NoError(t, utils.CheckPassword(updatedHash, "parola-noua"))
}

func TestResetPassword_ConsumedTokenNeverAuthorizesAgain(t *testing.T) {
	used := models.PasswordResetToken{ID: 1, AccountID: 9, ExpiryDate: time.Now().Add(5 * time.Minute), Used: true}
	tokens := &mockResetTokenRepository{
		findByTokenFn: func(ctx context.Context, tokenString string) (models.PasswordResetToken, error) {
			return used, nil
		},
	}
	updateCalled := false
	accounts := &mockAccountRepository{
		updatePasswordFn: func(ctx context.Context, accountID int64, passwordHash string) error {
			updateCalled = true
			return nil
		},
	}
	svc := newResetServiceForTest(tokens, accounts, nil)

	err := svc.ResetPassword(context.Background(), "deadbeef", "parola-noua")

	assert.ErrorIs(t, err, store.ErrResetTokenNotFound)
	assert.False(t, updateCalled, "a consumed token must not change the password")
}

func TestResetPassword_EmptyPassword(t *testing.T) {
	svc := newResetServiceForTest(&mockResetTokenRepository{}, &mockAccountRepository{}, nil)

	err := svc.ResetPassword(context.Background(), "deadbeef", "")

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}
