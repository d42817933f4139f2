package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"coin-ledger/internal/core/domain"
	"coin-ledger/internal/core/ports"

	"github.com/jackc/pgx/v5"
)

const accountColumns = `id, email, password_hash, display_name, phone, business_name,
		role, coin_balance, suspended, created_at, updated_at`

// AccountRepo implements ports.AccountRepository.
type AccountRepo struct {
	pool Pool
}

// NewAccountRepo creates a new AccountRepo.
func NewAccountRepo(pool Pool) *AccountRepo {
	return &AccountRepo{pool: pool}
}

// Create inserts a new account within a database transaction.
func (r *AccountRepo) Create(ctx context.Context, tx pgx.Tx, a *domain.Account) error {
	query := `INSERT INTO accounts (` + accountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := tx.Exec(ctx, query,
		a.ID, a.Email, a.PasswordHash, a.DisplayName, a.Phone, a.BusinessName,
		a.Role, a.CoinBalance, a.Suspended, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		if hasPgCode(err, pgUniqueViolationCode) {
			return fmt.Errorf("insert account %s: %w", a.ID, domain.ErrAccountExists)
		}
		return fmt.Errorf("insert account: %w", err)
	}
	return nil
}

// GetByID fetches an account by its key.
func (r *AccountRepo) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1`
	return scanAccount(r.pool.QueryRow(ctx, query, id))
}

// GetByEmail fetches an account by email.
func (r *AccountRepo) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE email = $1`
	return scanAccount(r.pool.QueryRow(ctx, query, email))
}

// GetBalance reads the stored coin balance.
func (r *AccountRepo) GetBalance(ctx context.Context, id string) (int64, error) {
	var balance int64
	err := r.pool.QueryRow(ctx, `SELECT coin_balance FROM accounts WHERE id = $1`, id).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, fmt.Errorf("get balance %s: %w", id, domain.ErrAccountNotFound)
		}
		return 0, fmt.Errorf("get balance: %w", err)
	}
	return balance, nil
}

// AdjustBalance applies delta in a single conditional UPDATE. A debit only
// matches while the balance covers it, so concurrent debits cannot drive
// the balance below zero.
func (r *AccountRepo) AdjustBalance(ctx context.Context, tx pgx.Tx, id string, delta int64) (int64, error) {
	query := `UPDATE accounts SET coin_balance = coin_balance + $1, updated_at = NOW()
		WHERE id = $2 AND coin_balance + $1 >= 0
		RETURNING coin_balance`

	var balance int64
	err := tx.QueryRow(ctx, query, delta, id).Scan(&balance)
	if err == nil {
		return balance, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, fmt.Errorf("adjust balance: %w", err)
	}

	var exists bool
	if err := tx.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM accounts WHERE id = $1)`, id).Scan(&exists); err != nil {
		return 0, fmt.Errorf("check account exists: %w", err)
	}
	if !exists {
		return 0, fmt.Errorf("adjust balance %s: %w", id, domain.ErrAccountNotFound)
	}
	return 0, fmt.Errorf("adjust balance %s by %d: %w", id, delta, domain.ErrInsufficientBalance)
}

// UpdateProfile sets the non-nil profile fields and returns the updated account.
func (r *AccountRepo) UpdateProfile(ctx context.Context, tx pgx.Tx, id string, update domain.ProfileUpdate) (*domain.Account, error) {
	query := `UPDATE accounts SET
		display_name = COALESCE($1, display_name),
		phone = COALESCE($2, phone),
		business_name = COALESCE($3, business_name),
		updated_at = NOW()
		WHERE id = $4
		RETURNING ` + accountColumns

	a, err := scanAccount(tx.QueryRow(ctx, query, update.DisplayName, update.Phone, update.BusinessName, id))
	if err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	if a == nil {
		return nil, fmt.Errorf("update profile %s: %w", id, domain.ErrAccountNotFound)
	}
	return a, nil
}

// SetSuspended flips the suspension flag.
func (r *AccountRepo) SetSuspended(ctx context.Context, tx pgx.Tx, id string, suspended bool) error {
	tag, err := tx.Exec(ctx,
		`UPDATE accounts SET suspended = $1, updated_at = NOW() WHERE id = $2`, suspended, id)
	if err != nil {
		return fmt.Errorf("set suspended: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("set suspended %s: %w", id, domain.ErrAccountNotFound)
	}
	return nil
}

// Delete removes the account row. Owned rows cascade.
func (r *AccountRepo) Delete(ctx context.Context, tx pgx.Tx, id string) error {
	tag, err := tx.Exec(ctx, `DELETE FROM accounts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete account: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("delete account %s: %w", id, domain.ErrAccountNotFound)
	}
	return nil
}

// List fetches accounts with filtering and pagination, newest first.
func (r *AccountRepo) List(ctx context.Context, params ports.AccountListParams) ([]domain.Account, int64, error) {
	var conditions []string
	var args []any
	argIdx := 1

	if params.Role != nil {
		conditions = append(conditions, fmt.Sprintf("role = $%d", argIdx))
		args = append(args, *params.Role)
		argIdx++
	}
	if params.Suspended != nil {
		conditions = append(conditions, fmt.Sprintf("suspended = $%d", argIdx))
		args = append(args, *params.Suspended)
		argIdx++
	}

	where := ""
	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ")
	}

	var total int64
	if err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM accounts "+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count accounts: %w", err)
	}

	dataQuery := fmt.Sprintf(`SELECT %s FROM accounts %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		accountColumns, where, argIdx, argIdx+1)
	args = append(args, params.PageSize, offset(params.Page, params.PageSize))

	rows, err := r.pool.Query(ctx, dataQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list accounts: %w", err)
	}
	defer rows.Close()

	accounts := []domain.Account{}
	for rows.Next() {
		a := domain.Account{}
		if err := rows.Scan(
			&a.ID, &a.Email, &a.PasswordHash, &a.DisplayName, &a.Phone, &a.BusinessName,
			&a.Role, &a.CoinBalance, &a.Suspended, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("scan account row: %w", err)
		}
		accounts = append(accounts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate account rows: %w", err)
	}
	return accounts, total, nil
}

func scanAccount(row pgx.Row) (*domain.Account, error) {
	a := &domain.Account{}
	err := row.Scan(
		&a.ID, &a.Email, &a.PasswordHash, &a.DisplayName, &a.Phone, &a.BusinessName,
		&a.Role, &a.CoinBalance, &a.Suspended, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan account: %w", err)
	}
	return a, nil
}
