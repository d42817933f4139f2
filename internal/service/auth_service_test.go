package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"coin-ledger/internal/core/domain"
	"coin-ledger/internal/core/ports"
	"coin-ledger/internal/core/ports/mocks"
	"coin-ledger/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type authTestDeps struct {
	svc        *AuthServiceImpl
	accounts   *mocks.MockAccountRepository
	ledger     *mocks.MockLedgerService
	transactor *mocks.MockDBTransactor
	hashSvc    *mocks.MockHashService
	tokenSvc   *mocks.MockTokenService
	ctrl       *gomock.Controller
}

func setupAuthService(t *testing.T) *authTestDeps {
	ctrl := gomock.NewController(t)
	d := &authTestDeps{
		accounts:   mocks.NewMockAccountRepository(ctrl),
		ledger:     mocks.NewMockLedgerService(ctrl),
		transactor: mocks.NewMockDBTransactor(ctrl),
		hashSvc:    mocks.NewMockHashService(ctrl),
		tokenSvc:   mocks.NewMockTokenService(ctrl),
		ctrl:       ctrl,
	}
	d.svc = NewAuthService(d.accounts, d.ledger, d.transactor, d.hashSvc, d.tokenSvc, testPolicy(), newTestLogger())
	d.svc.now = func() time.Time { return fixedNow }
	return d
}

func TestAuthService_Register_Success(t *testing.T) {
	d := setupAuthService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	req := ports.RegisterRequest{
		Username:     "  Alice ",
		Email:        "Alice@Example.com",
		Password:     "StrongP@ss123",
		BusinessName: "Alice Hardware",
	}
	tx := &mockTx{}
	grant := &ports.AppliedEntry{
		Entry: domain.LedgerEntry{
			AccountID: "alice",
			Amount:    10,
			Kind:      domain.EntryKindCredit,
			Reference: "SIGNUP_BONUS_2026-10-17T09:30:00Z",
		},
		Balance: 10,
	}

	d.accounts.EXPECT().GetByID(ctx, "alice").Return(nil, nil)
	d.hashSvc.EXPECT().Hash(req.Password).Return("$argon2id$hashed", nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.accounts.EXPECT().Create(ctx, tx, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ any, a *domain.Account) error {
			assert.Equal(t, "alice", a.ID)
			assert.Equal(t, "alice@example.com", a.Email)
			assert.Equal(t, "Alice", a.DisplayName)
			assert.Equal(t, domain.RoleTrader, a.Role)
			assert.Zero(t, a.CoinBalance)
			return nil
		})
	d.ledger.EXPECT().Apply(ctx, tx, ports.ApplyRequest{
		AccountID: "alice",
		Amount:    10,
		Kind:      domain.EntryKindCredit,
		Reference: "SIGNUP_BONUS_2026-10-17T09:30:00Z",
	}).Return(grant, nil)
	d.ledger.EXPECT().Announce(ctx, grant)

	resp, err := d.svc.Register(ctx, req)
	require.NoError(t, err)
	assert.True(t, tx.committed)
	assert.Equal(t, int64(10), resp.Account.CoinBalance)
	require.NotNil(t, resp.SignupGrant)
	assert.Equal(t, grant.Entry.Reference, resp.SignupGrant.Reference)
}

func TestAuthService_Register_NoGrant(t *testing.T) {
	d := setupAuthService(t)
	defer d.ctrl.Finish()
	d.svc.policy.SignupGrant = 0

	ctx := context.Background()
	tx := &mockTx{}

	d.accounts.EXPECT().GetByID(ctx, "bob").Return(nil, nil)
	d.hashSvc.EXPECT().Hash(gomock.Any()).Return("hash", nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.accounts.EXPECT().Create(ctx, tx, gomock.Any()).Return(nil)

	resp, err := d.svc.Register(ctx, ports.RegisterRequest{Username: "bob", Password: "StrongP@ss123"})
	require.NoError(t, err)
	assert.Zero(t, resp.Account.CoinBalance)
	assert.Nil(t, resp.SignupGrant)
}

func TestAuthService_Register_AdminRole(t *testing.T) {
	d := setupAuthService(t)
	defer d.ctrl.Finish()
	d.svc.policy.SignupGrant = 0

	ctx := context.Background()
	d.accounts.EXPECT().GetByID(ctx, "root").Return(nil, nil)
	d.hashSvc.EXPECT().Hash(gomock.Any()).Return("hash", nil)
	d.transactor.EXPECT().Begin(ctx).Return(&mockTx{}, nil)
	d.accounts.EXPECT().Create(ctx, gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ any, a *domain.Account) error {
			assert.Equal(t, domain.RoleAdmin, a.Role)
			return nil
		})

	_, err := d.svc.Register(ctx, ports.RegisterRequest{Username: "root", Password: "StrongP@ss123", Role: domain.RoleAdmin})
	require.NoError(t, err)
}

func TestAuthService_Register_DuplicateUsername(t *testing.T) {
	d := setupAuthService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.accounts.EXPECT().GetByID(ctx, "alice").Return(&domain.Account{ID: "alice"}, nil)

	_, err := d.svc.Register(ctx, ports.RegisterRequest{Username: "ALICE", Password: "StrongP@ss123"})
	require.Error(t, err)
	assert.True(t, apperror.Is(err, apperror.CodeUsernameExists))
}

func TestAuthService_Register_CreateRace(t *testing.T) {
	d := setupAuthService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	d.accounts.EXPECT().GetByID(ctx, "alice").Return(nil, nil)
	d.hashSvc.EXPECT().Hash(gomock.Any()).Return("hash", nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.accounts.EXPECT().Create(ctx, tx, gomock.Any()).Return(domain.ErrAccountExists)

	_, err := d.svc.Register(ctx, ports.RegisterRequest{Username: "alice", Password: "StrongP@ss123"})
	assert.True(t, apperror.Is(err, apperror.CodeUsernameExists))
	assert.True(t, tx.rolledBack)
}

func TestAuthService_Register_GrantFailureRollsBack(t *testing.T) {
	d := setupAuthService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	d.accounts.EXPECT().GetByID(ctx, "alice").Return(nil, nil)
	d.hashSvc.EXPECT().Hash(gomock.Any()).Return("hash", nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.accounts.EXPECT().Create(ctx, tx, gomock.Any()).Return(nil)
	d.ledger.EXPECT().Apply(ctx, tx, gomock.Any()).Return(nil, apperror.ErrLedgerWriteFailure(errors.New("disk full")))

	_, err := d.svc.Register(ctx, ports.RegisterRequest{Username: "alice", Password: "StrongP@ss123"})
	assert.True(t, apperror.Is(err, apperror.CodeLedgerWriteFailure))
	assert.False(t, tx.committed)
	assert.True(t, tx.rolledBack)
}

func TestAuthService_Register_EmptyUsername(t *testing.T) {
	d := setupAuthService(t)
	defer d.ctrl.Finish()

	_, err := d.svc.Register(context.Background(), ports.RegisterRequest{Username: "   ", Password: "x"})
	assert.True(t, apperror.Is(err, apperror.CodeValidation))
}

func TestAuthService_Login_Success(t *testing.T) {
	d := setupAuthService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	account := &domain.Account{ID: "alice", PasswordHash: "hash", Role: domain.RoleTrader}
	expiry := fixedNow.Add(24 * time.Hour)

	d.accounts.EXPECT().GetByID(ctx, "alice").Return(account, nil)
	d.hashSvc.EXPECT().Verify("StrongP@ss123", "hash").Return(true, nil)
	d.tokenSvc.EXPECT().Generate("alice", domain.RoleTrader).Return("jwt-token", expiry, nil)

	token, exp, err := d.svc.Login(ctx, "Alice", "StrongP@ss123")
	require.NoError(t, err)
	assert.Equal(t, "jwt-token", token)
	assert.Equal(t, expiry, exp)
}

func TestAuthService_Login_Failures(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown account", func(t *testing.T) {
		d := setupAuthService(t)
		d.accounts.EXPECT().GetByID(ctx, "ghost").Return(nil, nil)

		_, _, err := d.svc.Login(ctx, "ghost", "pw")
		assert.True(t, apperror.Is(err, apperror.CodeInvalidCredentials))
	})

	t.Run("wrong password", func(t *testing.T) {
		d := setupAuthService(t)
		d.accounts.EXPECT().GetByID(ctx, "alice").Return(&domain.Account{ID: "alice", PasswordHash: "hash"}, nil)
		d.hashSvc.EXPECT().Verify("bad", "hash").Return(false, nil)

		_, _, err := d.svc.Login(ctx, "alice", "bad")
		assert.True(t, apperror.Is(err, apperror.CodeInvalidCredentials))
	})

	t.Run("suspended", func(t *testing.T) {
		d := setupAuthService(t)
		d.accounts.EXPECT().GetByID(ctx, "alice").Return(&domain.Account{ID: "alice", PasswordHash: "hash", Suspended: true}, nil)
		d.hashSvc.EXPECT().Verify("pw", "hash").Return(true, nil)

		_, _, err := d.svc.Login(ctx, "alice", "pw")
		assert.True(t, apperror.Is(err, apperror.CodeAccountSuspended))
	})

	t.Run("repository error", func(t *testing.T) {
		d := setupAuthService(t)
		d.accounts.EXPECT().GetByID(ctx, "alice").Return(nil, errors.New("connection refused"))

		_, _, err := d.svc.Login(ctx, "alice", "pw")
		assert.True(t, apperror.Is(err, apperror.CodeInternal))
	})
}
