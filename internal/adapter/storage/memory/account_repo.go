package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"coin-ledger/internal/core/domain"
	"coin-ledger/internal/core/ports"

	"github.com/jackc/pgx/v5"
)

// AccountRepo implements ports.AccountRepository.
type AccountRepo struct {
	store *Store
}

// NewAccountRepo creates a new AccountRepo.
func NewAccountRepo(s *Store) *AccountRepo {
	return &AccountRepo{store: s}
}

func (r *AccountRepo) Create(ctx context.Context, tx pgx.Tx, a *domain.Account) error {
	stored := *a
	_, err := r.store.write(tx, func(t *tables) error {
		if _, ok := t.accounts[stored.ID]; ok {
			return fmt.Errorf("insert account %s: %w", stored.ID, domain.ErrAccountExists)
		}
		for _, existing := range t.accounts {
			if existing.Email == stored.Email {
				return fmt.Errorf("insert account %s: %w", stored.ID, domain.ErrAccountExists)
			}
		}
		t.accounts[stored.ID] = stored
		return nil
	})
	return err
}

func (r *AccountRepo) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	var out *domain.Account
	r.store.committed(func(t *tables) {
		if a, ok := t.accounts[id]; ok {
			out = &a
		}
	})
	return out, nil
}

func (r *AccountRepo) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	var out *domain.Account
	r.store.committed(func(t *tables) {
		for _, a := range t.accounts {
			if a.Email == email {
				found := a
				out = &found
				return
			}
		}
	})
	return out, nil
}

func (r *AccountRepo) GetBalance(ctx context.Context, id string) (int64, error) {
	var (
		balance int64
		found   bool
	)
	r.store.committed(func(t *tables) {
		var a domain.Account
		if a, found = t.accounts[id]; found {
			balance = a.CoinBalance
		}
	})
	if !found {
		return 0, fmt.Errorf("get balance %s: %w", id, domain.ErrAccountNotFound)
	}
	return balance, nil
}

// AdjustBalance checks and applies delta in one mutation.
func (r *AccountRepo) AdjustBalance(ctx context.Context, tx pgx.Tx, id string, delta int64) (int64, error) {
	now := time.Now().UTC()
	t, err := r.store.write(tx, func(t *tables) error {
		a, ok := t.accounts[id]
		if !ok {
			return fmt.Errorf("adjust balance %s: %w", id, domain.ErrAccountNotFound)
		}
		if a.CoinBalance+delta < 0 {
			return fmt.Errorf("adjust balance %s by %d: %w", id, delta, domain.ErrInsufficientBalance)
		}
		a.CoinBalance += delta
		a.UpdatedAt = now
		t.accounts[id] = a
		return nil
	})
	if err != nil {
		return 0, err
	}
	return t.accounts[id].CoinBalance, nil
}

func (r *AccountRepo) UpdateProfile(ctx context.Context, tx pgx.Tx, id string, update domain.ProfileUpdate) (*domain.Account, error) {
	now := time.Now().UTC()
	t, err := r.store.write(tx, func(t *tables) error {
		a, ok := t.accounts[id]
		if !ok {
			return fmt.Errorf("update profile %s: %w", id, domain.ErrAccountNotFound)
		}
		update.Apply(&a)
		a.UpdatedAt = now
		t.accounts[id] = a
		return nil
	})
	if err != nil {
		return nil, err
	}
	out := t.accounts[id]
	return &out, nil
}

func (r *AccountRepo) SetSuspended(ctx context.Context, tx pgx.Tx, id string, suspended bool) error {
	now := time.Now().UTC()
	_, err := r.store.write(tx, func(t *tables) error {
		a, ok := t.accounts[id]
		if !ok {
			return fmt.Errorf("set suspended %s: %w", id, domain.ErrAccountNotFound)
		}
		a.Suspended = suspended
		a.UpdatedAt = now
		t.accounts[id] = a
		return nil
	})
	return err
}

func (r *AccountRepo) Delete(ctx context.Context, tx pgx.Tx, id string) error {
	_, err := r.store.write(tx, func(t *tables) error {
		if _, ok := t.accounts[id]; !ok {
			return fmt.Errorf("delete account %s: %w", id, domain.ErrAccountNotFound)
		}
		delete(t.accounts, id)
		return nil
	})
	return err
}

func (r *AccountRepo) List(ctx context.Context, params ports.AccountListParams) ([]domain.Account, int64, error) {
	accounts := []domain.Account{}
	r.store.committed(func(t *tables) {
		for _, a := range t.accounts {
			if params.Role != nil && a.Role != *params.Role {
				continue
			}
			if params.Suspended != nil && a.Suspended != *params.Suspended {
				continue
			}
			accounts = append(accounts, a)
		}
	})
	sort.Slice(accounts, func(i, j int) bool {
		if accounts[i].CreatedAt.Equal(accounts[j].CreatedAt) {
			return accounts[i].ID < accounts[j].ID
		}
		return accounts[i].CreatedAt.After(accounts[j].CreatedAt)
	})
	return paginate(accounts, params.Page, params.PageSize), int64(len(accounts)), nil
}
