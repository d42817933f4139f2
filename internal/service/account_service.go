package service

import (
	"context"
	"fmt"

	"coin-ledger/internal/core/domain"
	"coin-ledger/internal/core/ports"
	"coin-ledger/pkg/apperror"

	"github.com/jackc/pgx/v5"
)

// AccountServiceImpl implements ports.AccountService.
type AccountServiceImpl struct {
	accounts ports.AccountRepository
	metering ports.MeteringService
}

// NewAccountService creates a new AccountServiceImpl.
func NewAccountService(accounts ports.AccountRepository, metering ports.MeteringService) *AccountServiceImpl {
	return &AccountServiceImpl{accounts: accounts, metering: metering}
}

func (s *AccountServiceImpl) GetProfile(ctx context.Context, accountID string) (*domain.Account, error) {
	account, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get account: %w", err))
	}
	if account == nil {
		return nil, apperror.ErrAccountNotFound()
	}
	return account, nil
}

// UpdateProfile is metered: the profile change and its debit commit together.
func (s *AccountServiceImpl) UpdateProfile(ctx context.Context, accountID string, update domain.ProfileUpdate) (*domain.Account, *ports.MeteredResult, error) {
	if update.IsEmpty() {
		return nil, nil, apperror.Validation("nothing to update")
	}

	var updated *domain.Account
	charge, err := s.metering.Run(ctx, ports.MeteredRequest{AccountID: accountID, Action: domain.ActionUpdateProfile},
		func(ctx context.Context, tx pgx.Tx) error {
			var err error
			updated, err = s.accounts.UpdateProfile(ctx, tx, accountID, update)
			if err != nil {
				return accountError(err)
			}
			return nil
		})
	if err != nil {
		return nil, nil, err
	}

	updated.CoinBalance = charge.Balance
	return updated, charge, nil
}
