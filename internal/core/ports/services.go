package ports

import (
	"context"
	"time"

	"coin-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// HashService handles password hashing (Argon2id).
type HashService interface {
	Hash(password string) (string, error)
	Verify(password string, hash string) (bool, error)
}

// TokenService handles JWT token operations.
type TokenService interface {
	Generate(accountID string, role domain.Role) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	AccountID string
	Role      domain.Role
}

// IdempotencyCache is the Redis-layer idempotency check (fast path).
type IdempotencyCache interface {
	Get(ctx context.Context, key string) ([]byte, error) // Returns cached response JSON or nil
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// EventPublisher ships committed ledger events to downstream consumers.
type EventPublisher interface {
	Publish(ctx context.Context, event domain.LedgerEvent) error
}

// Authorizer answers whether an actor holds the administrative capability.
type Authorizer interface {
	IsAdmin(ctx context.Context, actorID string) (bool, error)
}

// AuditService records sensitive account actions outside any transaction.
type AuditService interface {
	Log(ctx context.Context, entry *domain.AuditLog)
}

// --- Ledger core ---

// LedgerService owns balances and the ledger: reads, the balance gate and
// the debit/credit operator.
type LedgerService interface {
	GetBalance(ctx context.Context, accountID string) (int64, error)
	// HasSufficientBalance fails closed: any lookup error reads as false.
	HasSufficientBalance(ctx context.Context, accountID string, required int64) bool
	// Apply changes the balance and appends the entry inside tx.
	Apply(ctx context.Context, tx pgx.Tx, req ApplyRequest) (*AppliedEntry, error)
	// Post runs Apply in its own transaction and announces the entry.
	Post(ctx context.Context, req ApplyRequest) (*AppliedEntry, error)
	// Announce publishes a committed entry. Failures are logged only.
	Announce(ctx context.Context, applied *AppliedEntry)
	ListEntries(ctx context.Context, params LedgerListParams) ([]domain.LedgerEntry, int64, error)
	Summary(ctx context.Context, accountID *string, period string) (*domain.LedgerSummary, error)
	Reconcile(ctx context.Context, accountID string) (*domain.Reconciliation, error)
}

// ApplyRequest describes one coin movement.
type ApplyRequest struct {
	AccountID string
	Amount    int64
	Kind      domain.EntryKind
	Reference string
	// ActorID is set when an administrator causes the movement; it makes
	// the operator write a paired audit log.
	ActorID   string
	IPAddress string
}

// AppliedEntry is a written entry with the balance it produced.
type AppliedEntry struct {
	Entry   domain.LedgerEntry `json:"entry"`
	Balance int64              `json:"balance"`
}

// BusinessAction is a guarded operation. It must do all of its writes
// through tx so they commit or roll back with the coin debit.
type BusinessAction func(ctx context.Context, tx pgx.Tx) error

// MeteringService wraps business actions with coin metering.
type MeteringService interface {
	CostOf(action string) int64
	Run(ctx context.Context, req MeteredRequest, action BusinessAction) (*MeteredResult, error)
}

// MeteredRequest identifies who runs which action.
type MeteredRequest struct {
	AccountID string
	Action    string
}

// MeteredResult is the charge assessed for a successful action.
type MeteredResult struct {
	Cost    int64              `json:"cost"`
	Entry   domain.LedgerEntry `json:"entry"`
	Balance int64              `json:"balance"`
}

// --- Admin ---

// AdminService is the privileged override channel plus account administration.
type AdminService interface {
	CreditCoins(ctx context.Context, req AdminCreditRequest) (*AppliedEntry, error)
	SetSuspended(ctx context.Context, req AccountActionRequest, suspended bool) error
	DeleteAccount(ctx context.Context, req AccountActionRequest) error
	ListAccounts(ctx context.Context, actorID string, params AccountListParams) ([]domain.Account, int64, error)
	ListAuditLogs(ctx context.Context, actorID string, params AuditListParams) ([]domain.AuditLog, int64, error)
	Dashboard(ctx context.Context, actorID string) (*AdminDashboard, error)
	Reconcile(ctx context.Context, actorID, accountID string) (*domain.Reconciliation, error)
	ListLedger(ctx context.Context, actorID string, params LedgerListParams) ([]domain.LedgerEntry, int64, error)
	DeleteRecord(ctx context.Context, req RecordActionRequest) error
}

// AdminCreditRequest holds input for a privileged credit.
type AdminCreditRequest struct {
	ActorID   string
	AccountID string
	Amount    int64
	Kind      domain.EntryKind // empty = admin_credit
	Reference string           // empty = ADMIN_CREDIT_<timestamp>
	IPAddress string
}

// AccountActionRequest identifies an administrative action on an account.
type AccountActionRequest struct {
	ActorID   string
	AccountID string
	IPAddress string
}

// RecordActionRequest identifies an administrative action on one record.
type RecordActionRequest struct {
	ActorID   string
	Kind      domain.RecordKind
	RecordID  uuid.UUID
	IPAddress string
}

// AdminDashboard holds platform-wide counters.
type AdminDashboard struct {
	TotalAccounts     int64                `json:"total_accounts"`
	SuspendedAccounts int64                `json:"suspended_accounts"`
	Ledger            domain.LedgerSummary `json:"ledger"`
}

// --- Purchases ---

// PurchaseService sells coin packages.
type PurchaseService interface {
	Purchase(ctx context.Context, req PurchaseRequest) (*PurchaseResult, error)
}

// PurchaseRequest holds validated input for a coin purchase.
type PurchaseRequest struct {
	AccountID        string
	Amount           int64
	PaymentMethod    string
	PaymentReference string // empty = PAY_<timestamp>
}

// PurchaseResult is the credited entry; Replayed marks a repeated reference.
type PurchaseResult struct {
	Entry    domain.LedgerEntry `json:"entry"`
	Balance  int64              `json:"balance"`
	Replayed bool               `json:"replayed"`
}

// --- Accounts ---

// AuthService defines authentication business logic.
type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (*RegisterResponse, error)
	Login(ctx context.Context, username, password string) (string, time.Time, error) // token, expiry, error
}

// RegisterRequest holds input for account registration.
type RegisterRequest struct {
	Username     string
	Email        string
	Password     string
	DisplayName  string
	BusinessName string
	Role         domain.Role // empty = trader; only set by operator tooling
}

// RegisterResponse holds the new account and its signup grant, if any.
type RegisterResponse struct {
	Account     *domain.Account     `json:"account"`
	SignupGrant *domain.LedgerEntry `json:"signup_grant,omitempty"`
}

// AccountService manages the caller's own profile.
type AccountService interface {
	GetProfile(ctx context.Context, accountID string) (*domain.Account, error)
	UpdateProfile(ctx context.Context, accountID string, update domain.ProfileUpdate) (*domain.Account, *MeteredResult, error)
}

// --- Bookkeeping ---

// BookkeepingService manages the business records. Creates are metered;
// edits and deletes are free.
type BookkeepingService interface {
	CreateInvoice(ctx context.Context, req CreateInvoiceRequest) (*domain.Invoice, *MeteredResult, error)
	ListInvoices(ctx context.Context, accountID string, page, pageSize int) ([]domain.Invoice, int64, error)
	AddInventoryItem(ctx context.Context, req AddInventoryRequest) (*domain.InventoryItem, *MeteredResult, error)
	ListInventory(ctx context.Context, accountID string, lowStockOnly bool) ([]domain.InventoryItem, error)
	CreateContact(ctx context.Context, req CreateContactRequest) (*domain.Contact, *MeteredResult, error)
	ListContacts(ctx context.Context, accountID string, contactType domain.ContactType) ([]domain.Contact, error)
	RecordCashflow(ctx context.Context, req RecordCashflowRequest) (*domain.Cashflow, *MeteredResult, error)
	ListCashflows(ctx context.Context, filter domain.CashflowFilter) ([]domain.Cashflow, error)
	SubmitFeedback(ctx context.Context, req SubmitFeedbackRequest) (*domain.Feedback, *MeteredResult, error)

	UpdateInventoryItem(ctx context.Context, accountID string, id uuid.UUID, update domain.InventoryUpdate) (*domain.InventoryItem, error)
	UpdateContact(ctx context.Context, accountID string, contactType domain.ContactType, id uuid.UUID, update domain.ContactUpdate) (*domain.Contact, error)
	UpdateCashflow(ctx context.Context, accountID string, cashflowType domain.CashflowType, id uuid.UUID, update domain.CashflowUpdate) (*domain.Cashflow, error)
	// DeleteRecord removes one of the account's own records.
	DeleteRecord(ctx context.Context, accountID string, kind domain.RecordKind, id uuid.UUID) error
}

type CreateInvoiceRequest struct {
	AccountID    string
	CustomerName string
	Description  string
	Amount       decimal.Decimal
	DueDate      *time.Time
}

type AddInventoryRequest struct {
	AccountID    string
	Name         string
	Quantity     int64
	Unit         string
	BuyingPrice  decimal.Decimal
	SellingPrice decimal.Decimal
	Threshold    int64
}

type CreateContactRequest struct {
	AccountID   string
	Type        domain.ContactType
	Name        string
	Phone       string
	Amount      decimal.Decimal
	Description string
}

type RecordCashflowRequest struct {
	AccountID   string
	Type        domain.CashflowType
	PartyName   string
	Amount      decimal.Decimal
	Method      string
	Category    string
	Description string
}

type SubmitFeedbackRequest struct {
	AccountID string
	Rating    int
	Comment   string
}

// ReportService generates the metered reports.
type ReportService interface {
	ProfitLoss(ctx context.Context, accountID string, from, to *time.Time) (*domain.ProfitLossReport, *MeteredResult, error)
	InventoryValuation(ctx context.Context, accountID string) (*domain.InventoryReport, *MeteredResult, error)
}
