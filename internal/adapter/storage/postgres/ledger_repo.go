package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"coin-ledger/internal/core/domain"
	"coin-ledger/internal/core/ports"

	"github.com/jackc/pgx/v5"
)

// The coin_transactions column names follow the persisted layout
// (user_id, amount, type, ref, date).
const entryColumns = `id, user_id, amount, type, ref, date`

// LedgerRepo implements ports.LedgerRepository.
type LedgerRepo struct {
	pool Pool
}

// NewLedgerRepo creates a new LedgerRepo.
func NewLedgerRepo(pool Pool) *LedgerRepo {
	return &LedgerRepo{pool: pool}
}

// Append inserts an immutable entry within a database transaction.
func (r *LedgerRepo) Append(ctx context.Context, tx pgx.Tx, e *domain.LedgerEntry) error {
	query := `INSERT INTO coin_transactions (` + entryColumns + `) VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := tx.Exec(ctx, query, e.ID, e.AccountID, e.Amount, e.Kind, e.Reference, e.CreatedAt)
	if err != nil {
		switch {
		case hasPgCode(err, pgUniqueViolationCode):
			return fmt.Errorf("append entry %s: %w", e.Reference, domain.ErrDuplicateReference)
		case hasPgCode(err, pgForeignKeyViolationCode):
			return fmt.Errorf("append entry for %s: %w", e.AccountID, domain.ErrAccountNotFound)
		}
		return fmt.Errorf("append entry: %w", err)
	}
	return nil
}

// GetByReference returns the latest entry of the account carrying reference.
func (r *LedgerRepo) GetByReference(ctx context.Context, accountID, reference string) (*domain.LedgerEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM coin_transactions
		WHERE user_id = $1 AND ref = $2 ORDER BY date DESC LIMIT 1`

	e := &domain.LedgerEntry{}
	err := r.pool.QueryRow(ctx, query, accountID, reference).Scan(
		&e.ID, &e.AccountID, &e.Amount, &e.Kind, &e.Reference, &e.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get entry by reference: %w", err)
	}
	return e, nil
}

// List fetches entries newest first with filtering and pagination.
func (r *LedgerRepo) List(ctx context.Context, params ports.LedgerListParams) ([]domain.LedgerEntry, int64, error) {
	var conditions []string
	var args []any
	argIdx := 1

	if params.AccountID != nil {
		conditions = append(conditions, fmt.Sprintf("user_id = $%d", argIdx))
		args = append(args, *params.AccountID)
		argIdx++
	}
	if params.Kind != nil {
		conditions = append(conditions, fmt.Sprintf("type = $%d", argIdx))
		args = append(args, *params.Kind)
		argIdx++
	}

	where := ""
	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ")
	}

	var total int64
	if err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM coin_transactions "+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count entries: %w", err)
	}

	dataQuery := fmt.Sprintf(`SELECT %s FROM coin_transactions %s ORDER BY date DESC, id LIMIT $%d OFFSET $%d`,
		entryColumns, where, argIdx, argIdx+1)
	args = append(args, params.PageSize, offset(params.Page, params.PageSize))

	rows, err := r.pool.Query(ctx, dataQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list entries: %w", err)
	}
	defer rows.Close()

	entries := []domain.LedgerEntry{}
	for rows.Next() {
		e := domain.LedgerEntry{}
		if err := rows.Scan(&e.ID, &e.AccountID, &e.Amount, &e.Kind, &e.Reference, &e.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan entry row: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate entry rows: %w", err)
	}
	return entries, total, nil
}

// SumByAccount returns the signed sum and count of an account's entries.
func (r *LedgerRepo) SumByAccount(ctx context.Context, accountID string) (int64, int64, error) {
	var sum, count int64
	err := r.pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount), 0), COUNT(*) FROM coin_transactions WHERE user_id = $1`, accountID,
	).Scan(&sum, &count)
	if err != nil {
		return 0, 0, fmt.Errorf("sum entries: %w", err)
	}
	return sum, count, nil
}

// Totals aggregates entry counts and amounts by kind.
func (r *LedgerRepo) Totals(ctx context.Context, accountID *string, since *time.Time) ([]domain.KindTotal, error) {
	var conditions []string
	var args []any
	argIdx := 1

	if accountID != nil {
		conditions = append(conditions, fmt.Sprintf("user_id = $%d", argIdx))
		args = append(args, *accountID)
		argIdx++
	}
	if since != nil {
		conditions = append(conditions, fmt.Sprintf("date >= $%d", argIdx))
		args = append(args, *since)
	}

	where := ""
	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ")
	}

	query := fmt.Sprintf(`SELECT type, COUNT(*), COALESCE(SUM(amount), 0)
		FROM coin_transactions %s GROUP BY type ORDER BY type`, where)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ledger totals: %w", err)
	}
	defer rows.Close()

	totals := []domain.KindTotal{}
	for rows.Next() {
		t := domain.KindTotal{}
		if err := rows.Scan(&t.Kind, &t.Count, &t.Total); err != nil {
			return nil, fmt.Errorf("scan totals row: %w", err)
		}
		totals = append(totals, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate totals rows: %w", err)
	}
	return totals, nil
}

// DeleteByAccount removes an account's entries as part of deleting the account.
func (r *LedgerRepo) DeleteByAccount(ctx context.Context, tx pgx.Tx, accountID string) (int64, error) {
	tag, err := tx.Exec(ctx, `DELETE FROM coin_transactions WHERE user_id = $1`, accountID)
	if err != nil {
		return 0, fmt.Errorf("delete entries: %w", err)
	}
	return tag.RowsAffected(), nil
}
