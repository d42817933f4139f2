package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"coin-ledger/config"
	"coin-ledger/internal/core/domain"
	"coin-ledger/internal/core/ports"
	"coin-ledger/internal/core/ports/mocks"
	"coin-ledger/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testPolicy() config.LedgerConfig {
	return config.LedgerConfig{
		SignupGrant:       10,
		DefaultActionCost: 1,
		ActionCosts:       map[string]int64{domain.ActionProfitLossReport: 3},
		PurchasePackages:  []int64{10, 50, 100},
		HistoryLimit:      50,
	}
}

type meteringTestDeps struct {
	svc        *MeteringServiceImpl
	accounts   *mocks.MockAccountRepository
	ledger     *mocks.MockLedgerService
	transactor *mocks.MockDBTransactor
	ctrl       *gomock.Controller
}

func setupMeteringService(t *testing.T) *meteringTestDeps {
	ctrl := gomock.NewController(t)
	d := &meteringTestDeps{
		accounts:   mocks.NewMockAccountRepository(ctrl),
		ledger:     mocks.NewMockLedgerService(ctrl),
		transactor: mocks.NewMockDBTransactor(ctrl),
		ctrl:       ctrl,
	}
	d.svc = NewMeteringService(d.accounts, d.ledger, d.transactor, testPolicy(), newTestLogger())
	d.svc.now = func() time.Time { return fixedNow }
	return d
}

func (d *meteringTestDeps) expectActive(ctx context.Context, id string) *gomock.Call {
	return d.accounts.EXPECT().GetByID(ctx, id).Return(&domain.Account{ID: id, Role: domain.RoleTrader}, nil)
}

func TestMeteringService_CostOf(t *testing.T) {
	d := setupMeteringService(t)
	defer d.ctrl.Finish()

	assert.Equal(t, int64(1), d.svc.CostOf(domain.ActionCreateInvoice))
	assert.Equal(t, int64(3), d.svc.CostOf(domain.ActionProfitLossReport))
}

func TestMeteringService_Run_ChargesAfterSuccess(t *testing.T) {
	d := setupMeteringService(t)
	defer d.ctrl.Finish()
	ctx := context.Background()
	tx := &mockTx{}
	ran := false

	applied := &ports.AppliedEntry{
		Entry:   domain.LedgerEntry{AccountID: "alice", Amount: -1, Kind: domain.EntryKindSpend},
		Balance: 9,
	}

	gomock.InOrder(
		d.expectActive(ctx, "alice"),
		d.ledger.EXPECT().HasSufficientBalance(ctx, "alice", int64(1)).Return(true),
		d.transactor.EXPECT().Begin(ctx).Return(tx, nil),
		d.ledger.EXPECT().Apply(ctx, tx, ports.ApplyRequest{
			AccountID: "alice",
			Amount:    -1,
			Kind:      domain.EntryKindSpend,
			Reference: "create_invoice_2026-10-17T09:30:00Z",
		}).DoAndReturn(func(context.Context, pgx.Tx, ports.ApplyRequest) (*ports.AppliedEntry, error) {
			assert.True(t, ran, "debit must follow the action")
			return applied, nil
		}),
		d.ledger.EXPECT().Announce(ctx, applied),
	)

	result, err := d.svc.Run(ctx, ports.MeteredRequest{AccountID: "alice", Action: domain.ActionCreateInvoice},
		func(_ context.Context, got pgx.Tx) error {
			assert.Same(t, tx, got)
			ran = true
			return nil
		})
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.Cost)
	assert.Equal(t, int64(9), result.Balance)
	assert.True(t, tx.committed)
}

func TestMeteringService_Run_GateRefuses(t *testing.T) {
	d := setupMeteringService(t)
	defer d.ctrl.Finish()
	ctx := context.Background()

	d.expectActive(ctx, "carol")
	d.ledger.EXPECT().HasSufficientBalance(ctx, "carol", int64(3)).Return(false)

	_, err := d.svc.Run(ctx, ports.MeteredRequest{AccountID: "carol", Action: domain.ActionProfitLossReport},
		func(context.Context, pgx.Tx) error {
			t.Fatal("action must not run")
			return nil
		})
	assert.True(t, apperror.Is(err, apperror.CodeInsufficientBalance))
}

func TestMeteringService_Run_ActionFailureIsNotCharged(t *testing.T) {
	d := setupMeteringService(t)
	defer d.ctrl.Finish()
	ctx := context.Background()
	tx := &mockTx{}

	d.expectActive(ctx, "alice")
	d.ledger.EXPECT().HasSufficientBalance(ctx, "alice", int64(1)).Return(true)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)

	_, err := d.svc.Run(ctx, ports.MeteredRequest{AccountID: "alice", Action: domain.ActionAddReceipt},
		func(context.Context, pgx.Tx) error { return apperror.Validation("amount must be positive") })
	assert.True(t, apperror.Is(err, apperror.CodeValidation))
	assert.True(t, tx.rolledBack)

	tx = &mockTx{}
	d.expectActive(ctx, "alice")
	d.ledger.EXPECT().HasSufficientBalance(ctx, "alice", int64(1)).Return(true)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)

	_, err = d.svc.Run(ctx, ports.MeteredRequest{AccountID: "alice", Action: domain.ActionAddReceipt},
		func(context.Context, pgx.Tx) error { return errors.New("constraint violated") })
	assert.True(t, apperror.Is(err, apperror.CodeInternal))
	assert.True(t, tx.rolledBack)
}

func TestMeteringService_Run_LostRaceRollsBackAction(t *testing.T) {
	d := setupMeteringService(t)
	defer d.ctrl.Finish()
	ctx := context.Background()
	tx := &mockTx{}

	// The gate passed but a concurrent debit drained the balance first.
	d.expectActive(ctx, "alice")
	d.ledger.EXPECT().HasSufficientBalance(ctx, "alice", int64(1)).Return(true)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.ledger.EXPECT().Apply(ctx, tx, gomock.Any()).Return(nil, apperror.ErrInsufficientBalance())

	_, err := d.svc.Run(ctx, ports.MeteredRequest{AccountID: "alice", Action: domain.ActionAddPayment},
		func(context.Context, pgx.Tx) error { return nil })
	assert.True(t, apperror.Is(err, apperror.CodeInsufficientBalance))
	assert.True(t, tx.rolledBack)
	assert.False(t, tx.committed)
}

func TestMeteringService_Run_BeginFails(t *testing.T) {
	d := setupMeteringService(t)
	defer d.ctrl.Finish()
	ctx := context.Background()

	d.expectActive(ctx, "alice")
	d.ledger.EXPECT().HasSufficientBalance(ctx, "alice", int64(1)).Return(true)
	d.transactor.EXPECT().Begin(ctx).Return(nil, errors.New("pool exhausted"))

	_, err := d.svc.Run(ctx, ports.MeteredRequest{AccountID: "alice", Action: domain.ActionSubmitFeedback},
		func(context.Context, pgx.Tx) error { return nil })
	assert.True(t, apperror.Is(err, apperror.CodeLedgerWriteFailure))
}

func TestMeteringService_Run_RequiresActionName(t *testing.T) {
	d := setupMeteringService(t)
	defer d.ctrl.Finish()

	_, err := d.svc.Run(context.Background(), ports.MeteredRequest{AccountID: "alice"},
		func(context.Context, pgx.Tx) error { return nil })
	assert.True(t, apperror.Is(err, apperror.CodeValidation))
}

func TestMeteringService_Run_RefusesInactiveAccounts(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name    string
		account *domain.Account
		err     error
		code    string
	}{
		{"suspended", &domain.Account{ID: "alice", Suspended: true, CoinBalance: 50}, nil, apperror.CodeAccountSuspended},
		{"deleted", nil, nil, apperror.CodeAccountNotFound},
		{"lookup fails", nil, errors.New("db down"), apperror.CodeInternal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := setupMeteringService(t)
			d.accounts.EXPECT().GetByID(ctx, "alice").Return(tt.account, tt.err)

			_, err := d.svc.Run(ctx, ports.MeteredRequest{AccountID: "alice", Action: domain.ActionCreateInvoice},
				func(context.Context, pgx.Tx) error {
					t.Fatal("action must not run")
					return nil
				})
			assert.True(t, apperror.Is(err, tt.code), "got %v", err)
		})
	}
}
