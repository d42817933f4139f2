// Package memory is a process-local implementation of the storage ports.
// It backs the "memory" storage driver and the end-to-end tests.
package memory

import (
	"context"
	"errors"
	"maps"
	"slices"
	"sync"

	"coin-ledger/internal/core/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrForeignTx is returned when a repository receives a transaction
	// that was not started by the same Store.
	ErrForeignTx = errors.New("memory: transaction does not belong to this store")
	// ErrTxClosed is returned when a finished transaction is used again.
	ErrTxClosed = errors.New("memory: transaction already closed")

	errUnsupported = errors.New("memory: operation not supported")
)

// tables is one version of every table. A published version is never
// modified again; writers build the next one from a copy.
type tables struct {
	accounts  map[string]domain.Account
	entries   []domain.LedgerEntry
	audits    []domain.AuditLog
	invoices  []domain.Invoice
	inventory []domain.InventoryItem
	contacts  []domain.Contact
	cashflows []domain.Cashflow
	feedback  []domain.Feedback
}

func (t *tables) clone() *tables {
	return &tables{
		accounts:  maps.Clone(t.accounts),
		entries:   slices.Clone(t.entries),
		audits:    slices.Clone(t.audits),
		invoices:  slices.Clone(t.invoices),
		inventory: slices.Clone(t.inventory),
		contacts:  slices.Clone(t.contacts),
		cashflows: slices.Clone(t.cashflows),
		feedback:  slices.Clone(t.feedback),
	}
}

// mutation changes t or returns an error without touching it.
type mutation func(t *tables) error

// Store holds every table in memory.
//
// Transactions are serialized: Begin takes the single writer slot and keeps
// it until Commit or Rollback. A transaction works on a private copy of the
// committed tables and logs its mutations. Commit publishes the result under
// mu in one step, so readers outside the transaction only ever see committed
// versions.
type Store struct {
	writer chan struct{}

	mu      sync.RWMutex
	data    *tables
	version uint64 // bumped on every publish
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		writer: make(chan struct{}, 1),
		data:   &tables{accounts: make(map[string]domain.Account)},
	}
}

// txOf unwraps a transaction started by this store.
func (s *Store) txOf(tx pgx.Tx) (*memTx, error) {
	mt, ok := tx.(*memTx)
	if !ok || mt.store != s {
		return nil, ErrForeignTx
	}
	if mt.done {
		return nil, ErrTxClosed
	}
	return mt, nil
}

// write applies m to the transaction's copy and logs it for Commit. It
// returns the copy so callers can read back what they wrote.
func (s *Store) write(tx pgx.Tx, m mutation) (*tables, error) {
	mt, err := s.txOf(tx)
	if err != nil {
		return nil, err
	}
	t := mt.view()
	if err := m(t); err != nil {
		return nil, err
	}
	mt.log = append(mt.log, m)
	return t, nil
}

// read runs fn on the tables visible to tx: the transaction's own copy when
// tx is set, the committed version otherwise.
func (s *Store) read(tx pgx.Tx, fn func(t *tables)) error {
	if tx != nil {
		mt, err := s.txOf(tx)
		if err != nil {
			return err
		}
		fn(mt.view())
		return nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.data)
	return nil
}

// committed runs fn on the committed version.
func (s *Store) committed(fn func(t *tables)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.data)
}

// publish makes the transaction's work the committed version. When nothing
// was published since the copy was taken the copy is swapped in as is;
// otherwise the log is replayed on top of the newer version.
func (s *Store) publish(mt *memTx) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := mt.work
	if s.version != mt.base {
		next = s.data.clone()
		for _, m := range mt.log {
			if err := m(next); err != nil {
				return err
			}
		}
	}
	s.data = next
	s.version++
	return nil
}

// Transactor implements ports.DBTransactor.
type Transactor struct {
	store *Store
}

// NewTransactor creates a Transactor over s.
func NewTransactor(s *Store) *Transactor {
	return &Transactor{store: s}
}

// Begin waits for the writer slot or for ctx to end.
func (t *Transactor) Begin(ctx context.Context) (pgx.Tx, error) {
	select {
	case t.store.writer <- struct{}{}:
		return &memTx{store: t.store}, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// memTx is the pgx.Tx handed out by Transactor. Only Commit and Rollback
// are meaningful; the SQL methods report errUnsupported.
type memTx struct {
	store *Store
	work  *tables // private copy, taken on first use
	base  uint64  // store version work was copied from
	log   []mutation
	done  bool
}

func (t *memTx) view() *tables {
	if t.work == nil {
		t.store.mu.RLock()
		t.work = t.store.data.clone()
		t.base = t.store.version
		t.store.mu.RUnlock()
	}
	return t.work
}

func (t *memTx) finish() {
	t.done = true
	t.work, t.log = nil, nil
	<-t.store.writer
}

func (t *memTx) Begin(ctx context.Context) (pgx.Tx, error) { return nil, errUnsupported }

// Commit publishes every write of the transaction at once. A transaction
// that only read publishes nothing.
func (t *memTx) Commit(ctx context.Context) error {
	if t.done {
		return pgx.ErrTxClosed
	}
	defer t.finish()

	if len(t.log) == 0 {
		return nil
	}
	return t.store.publish(t)
}

// Rollback drops the transaction's copy. Like pgx, it returns
// pgx.ErrTxClosed after Commit, so it can be deferred.
func (t *memTx) Rollback(ctx context.Context) error {
	if t.done {
		return pgx.ErrTxClosed
	}
	t.finish()
	return nil
}

func (t *memTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, errUnsupported
}
func (t *memTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (t *memTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (t *memTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, errUnsupported
}
func (t *memTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, errUnsupported
}
func (t *memTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, errUnsupported
}
func (t *memTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return errRow{}
}
func (t *memTx) Conn() *pgx.Conn { return nil }

type errRow struct{}

func (errRow) Scan(dest ...any) error { return errUnsupported }

// HealthCheck implements ports.HealthChecker for the memory driver.
type HealthCheck struct{}

func (HealthCheck) Ping(ctx context.Context) error { return nil }
func (HealthCheck) Name() string                   { return "memory" }

func paginate[T any](items []T, page, pageSize int) []T {
	if pageSize <= 0 {
		return items
	}
	start := 0
	if page > 1 {
		start = (page - 1) * pageSize
	}
	if start >= len(items) {
		return []T{}
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
