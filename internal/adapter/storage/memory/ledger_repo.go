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

// LedgerRepo implements ports.LedgerRepository. Entries are never updated.
type LedgerRepo struct {
	store *Store
}

// NewLedgerRepo creates a new LedgerRepo.
func NewLedgerRepo(s *Store) *LedgerRepo {
	return &LedgerRepo{store: s}
}

func (r *LedgerRepo) Append(ctx context.Context, tx pgx.Tx, e *domain.LedgerEntry) error {
	entry := *e
	_, err := r.store.write(tx, func(t *tables) error {
		if _, ok := t.accounts[entry.AccountID]; !ok {
			return fmt.Errorf("append entry for %s: %w", entry.AccountID, domain.ErrAccountNotFound)
		}
		if entry.Kind == domain.EntryKindPurchase {
			for i := range t.entries {
				x := &t.entries[i]
				if x.Kind == domain.EntryKindPurchase && x.AccountID == entry.AccountID && x.Reference == entry.Reference {
					return fmt.Errorf("append entry %s: %w", entry.Reference, domain.ErrDuplicateReference)
				}
			}
		}
		t.entries = append(t.entries, entry)
		return nil
	})
	return err
}

func (r *LedgerRepo) GetByReference(ctx context.Context, accountID, reference string) (*domain.LedgerEntry, error) {
	var out *domain.LedgerEntry
	r.store.committed(func(t *tables) {
		for i := len(t.entries) - 1; i >= 0; i-- {
			if e := t.entries[i]; e.AccountID == accountID && e.Reference == reference {
				out = &e
				return
			}
		}
	})
	return out, nil
}

func (r *LedgerRepo) List(ctx context.Context, params ports.LedgerListParams) ([]domain.LedgerEntry, int64, error) {
	entries := []domain.LedgerEntry{}
	r.store.committed(func(t *tables) {
		for i := len(t.entries) - 1; i >= 0; i-- {
			e := t.entries[i]
			if params.AccountID != nil && e.AccountID != *params.AccountID {
				continue
			}
			if params.Kind != nil && e.Kind != *params.Kind {
				continue
			}
			entries = append(entries, e)
		}
	})
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})
	return paginate(entries, params.Page, params.PageSize), int64(len(entries)), nil
}

func (r *LedgerRepo) SumByAccount(ctx context.Context, accountID string) (int64, int64, error) {
	var sum, count int64
	r.store.committed(func(t *tables) {
		for _, e := range t.entries {
			if e.AccountID == accountID {
				sum += e.Amount
				count++
			}
		}
	})
	return sum, count, nil
}

func (r *LedgerRepo) Totals(ctx context.Context, accountID *string, since *time.Time) ([]domain.KindTotal, error) {
	byKind := map[domain.EntryKind]*domain.KindTotal{}
	r.store.committed(func(t *tables) {
		for _, e := range t.entries {
			if accountID != nil && e.AccountID != *accountID {
				continue
			}
			if since != nil && e.CreatedAt.Before(*since) {
				continue
			}
			kt, ok := byKind[e.Kind]
			if !ok {
				kt = &domain.KindTotal{Kind: e.Kind}
				byKind[e.Kind] = kt
			}
			kt.Count++
			kt.Total += e.Amount
		}
	})

	totals := []domain.KindTotal{}
	for _, kt := range byKind {
		totals = append(totals, *kt)
	}
	sort.Slice(totals, func(i, j int) bool { return totals[i].Kind < totals[j].Kind })
	return totals, nil
}

func (r *LedgerRepo) DeleteByAccount(ctx context.Context, tx pgx.Tx, accountID string) (int64, error) {
	var before int64
	if err := r.store.read(tx, func(t *tables) {
		for _, e := range t.entries {
			if e.AccountID == accountID {
				before++
			}
		}
	}); err != nil {
		return 0, err
	}

	_, err := r.store.write(tx, func(t *tables) error {
		t.entries = without(t.entries, func(e domain.LedgerEntry) bool { return e.AccountID == accountID })
		return nil
	})
	if err != nil {
		return 0, err
	}
	return before, nil
}
