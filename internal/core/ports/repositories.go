package ports

import (
	"context"
	"time"

	"coin-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// AccountRepository defines persistence operations for accounts.
// Methods accepting pgx.Tx run inside a caller-owned transaction.
type AccountRepository interface {
	// Create returns domain.ErrAccountExists when the id or email is taken.
	Create(ctx context.Context, tx pgx.Tx, account *domain.Account) error
	// GetByID returns nil, nil when the account does not exist.
	GetByID(ctx context.Context, id string) (*domain.Account, error)
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
	// GetBalance returns domain.ErrAccountNotFound when the account does not exist.
	GetBalance(ctx context.Context, id string) (int64, error)
	// AdjustBalance adds delta to the stored balance and returns the new value.
	// A negative delta is applied only while the balance covers it, otherwise
	// domain.ErrInsufficientBalance is returned and nothing changes.
	AdjustBalance(ctx context.Context, tx pgx.Tx, id string, delta int64) (int64, error)
	UpdateProfile(ctx context.Context, tx pgx.Tx, id string, update domain.ProfileUpdate) (*domain.Account, error)
	SetSuspended(ctx context.Context, tx pgx.Tx, id string, suspended bool) error
	Delete(ctx context.Context, tx pgx.Tx, id string) error
	List(ctx context.Context, params AccountListParams) ([]domain.Account, int64, error)
}

// AccountListParams holds filter + pagination for listing accounts.
type AccountListParams struct {
	Role      *domain.Role
	Suspended *bool
	Page      int
	PageSize  int
}

// LedgerRepository stores the append-only coin ledger.
type LedgerRepository interface {
	// Append returns domain.ErrDuplicateReference when a purchase reference
	// was already used by the account.
	Append(ctx context.Context, tx pgx.Tx, entry *domain.LedgerEntry) error
	// GetByReference returns nil, nil when no entry carries the reference.
	GetByReference(ctx context.Context, accountID, reference string) (*domain.LedgerEntry, error)
	// List returns entries newest first. A nil AccountID lists every account.
	List(ctx context.Context, params LedgerListParams) ([]domain.LedgerEntry, int64, error)
	SumByAccount(ctx context.Context, accountID string) (sum int64, count int64, err error)
	// Totals aggregates by kind. A nil accountID covers the whole ledger.
	Totals(ctx context.Context, accountID *string, since *time.Time) ([]domain.KindTotal, error)
	// DeleteByAccount is only used to cascade an account deletion.
	DeleteByAccount(ctx context.Context, tx pgx.Tx, accountID string) (int64, error)
}

// LedgerListParams holds filter + pagination for listing ledger entries.
type LedgerListParams struct {
	AccountID *string
	Kind      *domain.EntryKind
	Page      int
	PageSize  int
}

// AuditRepository stores audit logs.
type AuditRepository interface {
	Create(ctx context.Context, log *domain.AuditLog) error
	// CreateTx writes the log inside tx so it commits with the action it describes.
	CreateTx(ctx context.Context, tx pgx.Tx, log *domain.AuditLog) error
	List(ctx context.Context, params AuditListParams) ([]domain.AuditLog, int64, error)
}

// AuditListParams holds filter + pagination for listing audit logs.
type AuditListParams struct {
	Action          *domain.AuditAction
	TargetAccountID *string
	Page            int
	PageSize        int
}

// RecordsRepository stores the bookkeeping records whose creation is metered.
// Methods documented as taking an optional tx read outside any transaction
// when tx is nil.
type RecordsRepository interface {
	CreateInvoice(ctx context.Context, tx pgx.Tx, invoice *domain.Invoice) error
	// NextInvoiceNumber returns the next zero-padded number for the account.
	NextInvoiceNumber(ctx context.Context, tx pgx.Tx, accountID string) (string, error)
	ListInvoices(ctx context.Context, accountID string, page, pageSize int) ([]domain.Invoice, int64, error)

	CreateInventoryItem(ctx context.Context, tx pgx.Tx, item *domain.InventoryItem) error
	// ListInventoryItems takes an optional tx.
	ListInventoryItems(ctx context.Context, tx pgx.Tx, accountID string) ([]domain.InventoryItem, error)

	CreateContact(ctx context.Context, tx pgx.Tx, contact *domain.Contact) error
	ListContacts(ctx context.Context, accountID string, contactType domain.ContactType) ([]domain.Contact, error)

	CreateCashflow(ctx context.Context, tx pgx.Tx, cashflow *domain.Cashflow) error
	ListCashflows(ctx context.Context, filter domain.CashflowFilter) ([]domain.Cashflow, error)
	// SumCashflows takes an optional tx.
	SumCashflows(ctx context.Context, tx pgx.Tx, filter domain.CashflowFilter) (*domain.CashflowTotals, error)

	CreateFeedback(ctx context.Context, tx pgx.Tx, feedback *domain.Feedback) error

	// The Update methods match on the id and the owning account and return
	// domain.ErrRecordNotFound when no row matches.
	UpdateInventoryItem(ctx context.Context, tx pgx.Tx, accountID string, id uuid.UUID, update domain.InventoryUpdate) (*domain.InventoryItem, error)
	UpdateContact(ctx context.Context, tx pgx.Tx, accountID string, contactType domain.ContactType, id uuid.UUID, update domain.ContactUpdate) (*domain.Contact, error)
	UpdateCashflow(ctx context.Context, tx pgx.Tx, accountID string, cashflowType domain.CashflowType, id uuid.UUID, update domain.CashflowUpdate) (*domain.Cashflow, error)
	// DeleteRecord removes one record of the given kind and returns its owner.
	// An empty accountID matches any owner.
	DeleteRecord(ctx context.Context, tx pgx.Tx, kind domain.RecordKind, id uuid.UUID, accountID string) (string, error)

	// DeleteByAccount removes every record owned by the account.
	DeleteByAccount(ctx context.Context, tx pgx.Tx, accountID string) error
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
