package postgres

import (
	"context"
	"testing"
	"time"

	"coin-ledger/internal/core/domain"
	"coin-ledger/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEntry(accountID string, amount int64, kind domain.EntryKind, ref string) *domain.LedgerEntry {
	return &domain.LedgerEntry{
		ID:        uuid.New(),
		AccountID: accountID,
		Amount:    amount,
		Kind:      kind,
		Reference: ref,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}
}

func entryColumnNames() []string {
	return []string{"id", "user_id", "amount", "type", "ref", "date"}
}

func TestLedgerRepo_Append(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLedgerRepo(mock)
	ctx := context.Background()
	e := newTestEntry("alice", -1, domain.EntryKindSpend, "create_invoice_2026-10-17T09:00:00Z")

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO coin_transactions").
		WithArgs(e.ID, e.AccountID, e.Amount, e.Kind, e.Reference, e.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	tx, err := mock.Begin(ctx)
	require.NoError(t, err)

	assert.NoError(t, repo.Append(ctx, tx, e))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerRepo_Append_ConstraintErrors(t *testing.T) {
	tests := []struct {
		name   string
		code   string
		target error
	}{
		{"duplicate purchase reference", pgUniqueViolationCode, domain.ErrDuplicateReference},
		{"missing account", pgForeignKeyViolationCode, domain.ErrAccountNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer mock.Close()

			repo := NewLedgerRepo(mock)
			ctx := context.Background()

			mock.ExpectBegin()
			mock.ExpectExec("INSERT INTO coin_transactions").
				WillReturnError(&pgconn.PgError{Code: tt.code})

			tx, err := mock.Begin(ctx)
			require.NoError(t, err)

			err = repo.Append(ctx, tx, newTestEntry("alice", 50, domain.EntryKindPurchase, "PAY_1"))
			assert.ErrorIs(t, err, tt.target)
		})
	}
}

func TestLedgerRepo_GetByReference(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLedgerRepo(mock)
	e := newTestEntry("alice", 50, domain.EntryKindPurchase, "PAY_abc")

	mock.ExpectQuery("SELECT .+ FROM coin_transactions").
		WithArgs("alice", "PAY_abc").
		WillReturnRows(pgxmock.NewRows(entryColumnNames()).
			AddRow(e.ID, e.AccountID, e.Amount, e.Kind, e.Reference, e.CreatedAt))

	result, err := repo.GetByReference(context.Background(), "alice", "PAY_abc")
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, e.ID, result.ID)
	assert.Equal(t, int64(50), result.Amount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerRepo_GetByReference_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLedgerRepo(mock)

	mock.ExpectQuery("SELECT .+ FROM coin_transactions").
		WithArgs("alice", "PAY_missing").
		WillReturnRows(pgxmock.NewRows(entryColumnNames()))

	result, err := repo.GetByReference(context.Background(), "alice", "PAY_missing")
	assert.NoError(t, err)
	assert.Nil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerRepo_List(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLedgerRepo(mock)
	accountID := "alice"
	kind := domain.EntryKindSpend
	e1 := newTestEntry(accountID, -1, kind, "create_invoice_1")
	e2 := newTestEntry(accountID, -1, kind, "add_payment_1")

	mock.ExpectQuery("SELECT COUNT").
		WithArgs(accountID, kind).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(2)))
	mock.ExpectQuery("SELECT .+ FROM coin_transactions WHERE user_id").
		WithArgs(accountID, kind, 10, 10).
		WillReturnRows(pgxmock.NewRows(entryColumnNames()).
			AddRow(e1.ID, e1.AccountID, e1.Amount, e1.Kind, e1.Reference, e1.CreatedAt).
			AddRow(e2.ID, e2.AccountID, e2.Amount, e2.Kind, e2.Reference, e2.CreatedAt))

	entries, total, err := repo.List(context.Background(), ports.LedgerListParams{
		AccountID: &accountID,
		Kind:      &kind,
		Page:      2,
		PageSize:  10,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, entries, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerRepo_SumByAccount(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLedgerRepo(mock)

	mock.ExpectQuery("SELECT COALESCE").
		WithArgs("alice").
		WillReturnRows(pgxmock.NewRows([]string{"sum", "count"}).AddRow(int64(9), int64(2)))

	sum, count, err := repo.SumByAccount(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(9), sum)
	assert.Equal(t, int64(2), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerRepo_Totals(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLedgerRepo(mock)
	since := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT type, COUNT").
		WithArgs(since).
		WillReturnRows(pgxmock.NewRows([]string{"type", "count", "sum"}).
			AddRow(domain.EntryKindCredit, int64(3), int64(30)).
			AddRow(domain.EntryKindSpend, int64(4), int64(-4)))

	totals, err := repo.Totals(context.Background(), nil, &since)
	require.NoError(t, err)
	require.Len(t, totals, 2)
	assert.Equal(t, domain.EntryKindCredit, totals[0].Kind)
	assert.Equal(t, int64(-4), totals[1].Total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerRepo_DeleteByAccount(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLedgerRepo(mock)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM coin_transactions").
		WithArgs("alice").
		WillReturnResult(pgxmock.NewResult("DELETE", 3))

	tx, err := mock.Begin(ctx)
	require.NoError(t, err)

	n, err := repo.DeleteByAccount(ctx, tx, "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}
