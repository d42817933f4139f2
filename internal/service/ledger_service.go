package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"coin-ledger/internal/core/domain"
	"coin-ledger/internal/core/ports"
	"coin-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

const announceTimeout = 5 * time.Second

// Summary periods.
const (
	PeriodDay   = "day"
	PeriodWeek  = "week"
	PeriodMonth = "month"
	PeriodAll   = "all"
)

// LedgerServiceImpl implements ports.LedgerService. It is the only writer
// of coin balances: every balance change goes through Apply, which pairs
// it with exactly one ledger entry in the caller's transaction.
type LedgerServiceImpl struct {
	accounts   ports.AccountRepository
	ledger     ports.LedgerRepository
	audits     ports.AuditRepository
	transactor ports.DBTransactor
	publisher  ports.EventPublisher
	log        zerolog.Logger
	now        func() time.Time
}

// NewLedgerService creates a new LedgerServiceImpl. publisher may be nil.
func NewLedgerService(
	accounts ports.AccountRepository,
	ledger ports.LedgerRepository,
	audits ports.AuditRepository,
	transactor ports.DBTransactor,
	publisher ports.EventPublisher,
	log zerolog.Logger,
) *LedgerServiceImpl {
	return &LedgerServiceImpl{
		accounts:   accounts,
		ledger:     ledger,
		audits:     audits,
		transactor: transactor,
		publisher:  publisher,
		log:        log,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (s *LedgerServiceImpl) GetBalance(ctx context.Context, accountID string) (int64, error) {
	balance, err := s.accounts.GetBalance(ctx, accountID)
	if err != nil {
		return 0, ledgerError(err)
	}
	return balance, nil
}

// HasSufficientBalance is the balance gate. It is advisory: the debit in
// Apply re-checks atomically.
func (s *LedgerServiceImpl) HasSufficientBalance(ctx context.Context, accountID string, required int64) bool {
	balance, err := s.accounts.GetBalance(ctx, accountID)
	if err != nil {
		s.log.Warn().Err(err).Str("account_id", accountID).Msg("balance gate lookup failed, denying")
		return false
	}
	return balance >= required
}

func (s *LedgerServiceImpl) Apply(ctx context.Context, tx pgx.Tx, req ports.ApplyRequest) (*ports.AppliedEntry, error) {
	if err := domain.ValidateEntry(req.Amount, req.Kind); err != nil {
		return nil, ledgerError(err)
	}
	if req.Kind.IsPrivileged() && req.ActorID == "" {
		return nil, apperror.Validation("admin credit requires an acting administrator")
	}

	// The clock is read only once AdjustBalance holds the account row lock.
	balance, err := s.accounts.AdjustBalance(ctx, tx, req.AccountID, req.Amount)
	if err != nil {
		return nil, ledgerError(err)
	}

	now := s.now()
	ref := req.Reference
	if ref == "" {
		ref = domain.BuildReference(defaultRefPrefix(req.Kind), now)
	}

	entry := domain.LedgerEntry{
		ID:        uuid.New(),
		AccountID: req.AccountID,
		Amount:    req.Amount,
		Kind:      req.Kind,
		Reference: ref,
		CreatedAt: now,
	}
	if err := s.ledger.Append(ctx, tx, &entry); err != nil {
		return nil, ledgerError(err)
	}

	if req.ActorID != "" {
		audit := domain.NewCreditAudit(req.ActorID, entry)
		audit.IPAddress = req.IPAddress
		if err := s.audits.CreateTx(ctx, tx, audit); err != nil {
			return nil, apperror.ErrLedgerWriteFailure(fmt.Errorf("write credit audit: %w", err))
		}
	}

	return &ports.AppliedEntry{Entry: entry, Balance: balance}, nil
}

func (s *LedgerServiceImpl) Post(ctx context.Context, req ports.ApplyRequest) (*ports.AppliedEntry, error) {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.ErrLedgerWriteFailure(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	applied, err := s.Apply(ctx, dbTx, req)
	if err != nil {
		return nil, err
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.ErrLedgerWriteFailure(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("account_id", req.AccountID).
		Str("kind", string(req.Kind)).
		Int64("amount", req.Amount).
		Int64("balance", applied.Balance).
		Msg("ledger entry posted")

	s.Announce(ctx, applied)
	return applied, nil
}

// Announce publishes in the background. The entry is already committed, so
// a failed publish is logged and dropped.
func (s *LedgerServiceImpl) Announce(ctx context.Context, applied *ports.AppliedEntry) {
	if s.publisher == nil || applied == nil {
		return
	}
	event := domain.NewEntryAppendedEvent(applied.Entry, applied.Balance)
	go func() {
		pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), announceTimeout)
		defer cancel()
		if err := s.publisher.Publish(pubCtx, event); err != nil {
			s.log.Warn().Err(err).
				Str("entry_id", event.Entry.ID.String()).
				Msg("failed to publish ledger event")
		}
	}()
}

func (s *LedgerServiceImpl) ListEntries(ctx context.Context, params ports.LedgerListParams) ([]domain.LedgerEntry, int64, error) {
	entries, total, err := s.ledger.List(ctx, params)
	if err != nil {
		return nil, 0, apperror.InternalError(fmt.Errorf("list entries: %w", err))
	}
	return entries, total, nil
}

func (s *LedgerServiceImpl) Summary(ctx context.Context, accountID *string, period string) (*domain.LedgerSummary, error) {
	since, err := periodStart(period, s.now())
	if err != nil {
		return nil, err
	}

	totals, err := s.ledger.Totals(ctx, accountID, since)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("ledger totals: %w", err))
	}

	summary := &domain.LedgerSummary{Since: since, Totals: totals}
	if accountID != nil {
		summary.AccountID = *accountID
	}
	for _, t := range totals {
		summary.Net += t.Total
	}
	return summary, nil
}

// Reconcile checks that the stored balance equals the sum of the entries.
func (s *LedgerServiceImpl) Reconcile(ctx context.Context, accountID string) (*domain.Reconciliation, error) {
	balance, err := s.accounts.GetBalance(ctx, accountID)
	if err != nil {
		return nil, ledgerError(err)
	}
	sum, count, err := s.ledger.SumByAccount(ctx, accountID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("sum entries: %w", err))
	}

	rec := &domain.Reconciliation{
		AccountID:     accountID,
		StoredBalance: balance,
		LedgerSum:     sum,
		EntryCount:    count,
		Consistent:    balance == sum,
		CheckedAt:     s.now(),
	}
	if !rec.Consistent {
		s.log.Error().
			Str("account_id", accountID).
			Int64("stored_balance", balance).
			Int64("ledger_sum", sum).
			Msg("ledger out of balance")
	}
	return rec, nil
}

func defaultRefPrefix(kind domain.EntryKind) string {
	switch kind {
	case domain.EntryKindAdminCredit:
		return domain.RefPrefixAdminCredit
	case domain.EntryKindPurchase:
		return domain.RefPrefixPurchase
	default:
		return string(kind)
	}
}

func periodStart(period string, now time.Time) (*time.Time, error) {
	var since time.Time
	switch period {
	case "", PeriodAll:
		return nil, nil
	case PeriodDay:
		since = now.AddDate(0, 0, -1)
	case PeriodWeek:
		since = now.AddDate(0, 0, -7)
	case PeriodMonth:
		since = now.AddDate(0, -1, 0)
	default:
		return nil, apperror.Validation("period must be one of day, week, month, all")
	}
	return &since, nil
}

// ledgerError maps storage sentinels to API errors. Anything unrecognised
// is a write failure with a generic message.
func ledgerError(err error) error {
	var appErr *apperror.AppError
	switch {
	case errors.As(err, &appErr):
		return appErr
	case errors.Is(err, domain.ErrInsufficientBalance):
		return apperror.ErrInsufficientBalance()
	case errors.Is(err, domain.ErrAccountNotFound):
		return apperror.ErrAccountNotFound()
	case errors.Is(err, domain.ErrInvalidAmount):
		return apperror.ErrInvalidAmount()
	case errors.Is(err, domain.ErrInvalidEntryKind):
		return apperror.ErrInvalidEntryKind()
	case errors.Is(err, domain.ErrDuplicateReference):
		return apperror.ErrDuplicateReference()
	default:
		return apperror.ErrLedgerWriteFailure(err)
	}
}
