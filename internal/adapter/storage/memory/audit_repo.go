package memory

import (
	"context"
	"slices"

	"coin-ledger/internal/core/domain"
	"coin-ledger/internal/core/ports"

	"github.com/jackc/pgx/v5"
)

// AuditRepo implements ports.AuditRepository.
type AuditRepo struct {
	store *Store
}

// NewAuditRepo creates a new AuditRepo.
func NewAuditRepo(s *Store) *AuditRepo {
	return &AuditRepo{store: s}
}

// Create appends outside any transaction. It publishes a new version with
// only the audit table copied; a transaction open meanwhile replays its own
// writes on top of it at commit.
func (r *AuditRepo) Create(ctx context.Context, log *domain.AuditLog) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	next := *r.store.data
	next.audits = append(slices.Clip(next.audits), *log)
	r.store.data = &next
	r.store.version++
	return nil
}

// CreateTx appends inside tx, so the log commits with the action it describes.
func (r *AuditRepo) CreateTx(ctx context.Context, tx pgx.Tx, log *domain.AuditLog) error {
	entry := *log
	_, err := r.store.write(tx, func(t *tables) error {
		t.audits = append(t.audits, entry)
		return nil
	})
	return err
}

func (r *AuditRepo) List(ctx context.Context, params ports.AuditListParams) ([]domain.AuditLog, int64, error) {
	logs := []domain.AuditLog{}
	r.store.committed(func(t *tables) {
		for i := len(t.audits) - 1; i >= 0; i-- {
			l := t.audits[i]
			if params.Action != nil && l.Action != *params.Action {
				continue
			}
			if params.TargetAccountID != nil && l.TargetAccountID != *params.TargetAccountID {
				continue
			}
			logs = append(logs, l)
		}
	})
	return paginate(logs, params.Page, params.PageSize), int64(len(logs)), nil
}
