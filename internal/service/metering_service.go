package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"coin-ledger/config"
	"coin-ledger/internal/core/domain"
	"coin-ledger/internal/core/ports"
	"coin-ledger/pkg/apperror"

	"github.com/rs/zerolog"
)

// MeteringServiceImpl implements ports.MeteringService.
type MeteringServiceImpl struct {
	accounts   ports.AccountRepository
	ledger     ports.LedgerService
	transactor ports.DBTransactor
	policy     config.LedgerConfig
	log        zerolog.Logger
	now        func() time.Time
}

// NewMeteringService creates a new MeteringServiceImpl.
func NewMeteringService(accounts ports.AccountRepository, ledger ports.LedgerService, transactor ports.DBTransactor, policy config.LedgerConfig, log zerolog.Logger) *MeteringServiceImpl {
	return &MeteringServiceImpl{
		accounts:   accounts,
		ledger:     ledger,
		transactor: transactor,
		policy:     policy,
		log:        log,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (s *MeteringServiceImpl) CostOf(action string) int64 {
	return s.policy.CostOf(action)
}

// Run charges for action only if it succeeds. Suspended accounts are
// refused even while their token is still valid. The gate rejects early
// when the balance cannot cover the cost; then the action and the debit
// share one transaction, so a failed action is never charged and a failed
// debit undoes the action.
func (s *MeteringServiceImpl) Run(ctx context.Context, req ports.MeteredRequest, action ports.BusinessAction) (*ports.MeteredResult, error) {
	if req.Action == "" {
		return nil, apperror.Validation("metered action name is required")
	}
	cost := s.CostOf(req.Action)

	account, err := s.accounts.GetByID(ctx, req.AccountID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load account %s: %w", req.AccountID, err))
	}
	if account == nil {
		return nil, apperror.ErrAccountNotFound()
	}
	if account.Suspended {
		s.log.Warn().
			Str("account_id", req.AccountID).
			Str("action", req.Action).
			Msg("metered action refused for suspended account")
		return nil, apperror.ErrAccountSuspended()
	}

	if !s.ledger.HasSufficientBalance(ctx, req.AccountID, cost) {
		s.log.Info().
			Str("account_id", req.AccountID).
			Str("action", req.Action).
			Int64("cost", cost).
			Msg("metered action refused by balance gate")
		return nil, apperror.ErrInsufficientBalance()
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.ErrLedgerWriteFailure(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if err := action(ctx, dbTx); err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			return nil, appErr
		}
		return nil, apperror.InternalError(fmt.Errorf("%s: %w", req.Action, err))
	}

	applied, err := s.ledger.Apply(ctx, dbTx, ports.ApplyRequest{
		AccountID: req.AccountID,
		Amount:    -cost,
		Kind:      domain.EntryKindSpend,
		Reference: domain.BuildReference(req.Action, s.now()),
	})
	if err != nil {
		return nil, err
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.ErrLedgerWriteFailure(fmt.Errorf("commit %s: %w", req.Action, err))
	}

	s.log.Info().
		Str("account_id", req.AccountID).
		Str("action", req.Action).
		Int64("cost", cost).
		Int64("balance", applied.Balance).
		Msg("metered action charged")

	s.ledger.Announce(ctx, applied)

	return &ports.MeteredResult{
		Cost:    cost,
		Entry:   applied.Entry,
		Balance: applied.Balance,
	}, nil
}
