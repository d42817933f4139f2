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

// roleAuthorizer grants the admin capability to active accounts holding
// the admin role.
type roleAuthorizer struct {
	accounts ports.AccountRepository
}

// NewRoleAuthorizer creates an Authorizer backed by the account role.
func NewRoleAuthorizer(accounts ports.AccountRepository) ports.Authorizer {
	return &roleAuthorizer{accounts: accounts}
}

func (a *roleAuthorizer) IsAdmin(ctx context.Context, actorID string) (bool, error) {
	account, err := a.accounts.GetByID(ctx, actorID)
	if err != nil {
		return false, err
	}
	if account == nil || account.Suspended {
		return false, nil
	}
	return account.IsAdmin(), nil
}

// AdminServiceImpl implements ports.AdminService.
type AdminServiceImpl struct {
	accounts   ports.AccountRepository
	entries    ports.LedgerRepository
	records    ports.RecordsRepository
	audits     ports.AuditRepository
	ledger     ports.LedgerService
	authz      ports.Authorizer
	transactor ports.DBTransactor
	log        zerolog.Logger
	now        func() time.Time
}

// NewAdminService creates a new AdminServiceImpl.
func NewAdminService(
	accounts ports.AccountRepository,
	entries ports.LedgerRepository,
	records ports.RecordsRepository,
	audits ports.AuditRepository,
	ledger ports.LedgerService,
	authz ports.Authorizer,
	transactor ports.DBTransactor,
	log zerolog.Logger,
) *AdminServiceImpl {
	return &AdminServiceImpl{
		accounts:   accounts,
		entries:    entries,
		records:    records,
		audits:     audits,
		ledger:     ledger,
		authz:      authz,
		transactor: transactor,
		log:        log,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// authorize is checked on every admin operation, not only at the router.
func (s *AdminServiceImpl) authorize(ctx context.Context, actorID string) error {
	ok, err := s.authz.IsAdmin(ctx, actorID)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("authorize %s: %w", actorID, err))
	}
	if !ok {
		s.log.Warn().Str("actor_id", actorID).Msg("admin operation refused")
		return apperror.ErrForbidden()
	}
	return nil
}

// CreditCoins is the override channel: it credits any positive amount to
// any account, bypassing the purchase packages, and the ledger operator
// writes the paired audit log in the same transaction.
func (s *AdminServiceImpl) CreditCoins(ctx context.Context, req ports.AdminCreditRequest) (*ports.AppliedEntry, error) {
	if err := s.authorize(ctx, req.ActorID); err != nil {
		return nil, err
	}

	target := domain.NormalizeAccountID(req.AccountID)
	if target == "" {
		return nil, apperror.Validation("account id is required")
	}
	kind := req.Kind
	if kind == "" {
		kind = domain.EntryKindAdminCredit
	}
	if !kind.IsValid() || !kind.IsCredit() {
		return nil, apperror.ErrInvalidEntryKind()
	}
	if req.Amount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}

	applied, err := s.ledger.Post(ctx, ports.ApplyRequest{
		AccountID: target,
		Amount:    req.Amount,
		Kind:      kind,
		Reference: req.Reference,
		ActorID:   req.ActorID,
		IPAddress: req.IPAddress,
	})
	if err != nil {
		s.log.Error().Err(err).
			Str("actor_id", req.ActorID).
			Str("account_id", target).
			Int64("amount", req.Amount).
			Str("kind", string(kind)).
			Msg("admin credit failed")
		return nil, err
	}

	s.log.Info().
		Str("actor_id", req.ActorID).
		Str("account_id", target).
		Int64("amount", req.Amount).
		Str("reference", applied.Entry.Reference).
		Msg("admin credit applied")
	return applied, nil
}

func (s *AdminServiceImpl) SetSuspended(ctx context.Context, req ports.AccountActionRequest, suspended bool) error {
	if err := s.authorize(ctx, req.ActorID); err != nil {
		return err
	}
	target := domain.NormalizeAccountID(req.AccountID)
	if target == req.ActorID {
		return apperror.Validation("administrators cannot suspend their own account")
	}

	account, err := s.loadTarget(ctx, target)
	if err != nil {
		return err
	}
	action := domain.AuditActionReinstateAccount
	if suspended {
		if account.IsAdmin() {
			s.log.Warn().Str("actor_id", req.ActorID).Str("account_id", target).Msg("refused to suspend administrator")
			return apperror.ErrProtectedAccount()
		}
		action = domain.AuditActionSuspendAccount
	}

	err = s.inTx(ctx, func(ctx context.Context, dbTx pgx.Tx) error {
		if err := s.accounts.SetSuspended(ctx, dbTx, target, suspended); err != nil {
			return accountError(err)
		}
		return s.audits.CreateTx(ctx, dbTx, s.newAudit(req, target, action, nil))
	})
	if err != nil {
		return err
	}

	s.log.Info().
		Str("actor_id", req.ActorID).
		Str("account_id", target).
		Bool("suspended", suspended).
		Msg("account suspension changed")
	return nil
}

// DeleteAccount removes the account with its ledger entries and business
// records. The audit log keeps the final balance and entry count.
func (s *AdminServiceImpl) DeleteAccount(ctx context.Context, req ports.AccountActionRequest) error {
	if err := s.authorize(ctx, req.ActorID); err != nil {
		return err
	}
	target := domain.NormalizeAccountID(req.AccountID)
	if target == req.ActorID {
		return apperror.Validation("administrators cannot delete their own account")
	}

	account, err := s.loadTarget(ctx, target)
	if err != nil {
		return err
	}
	if account.IsAdmin() {
		s.log.Warn().Str("actor_id", req.ActorID).Str("account_id", target).Msg("refused to delete administrator")
		return apperror.ErrProtectedAccount()
	}

	err = s.inTx(ctx, func(ctx context.Context, dbTx pgx.Tx) error {
		if err := s.records.DeleteByAccount(ctx, dbTx, target); err != nil {
			return apperror.InternalError(fmt.Errorf("delete records: %w", err))
		}
		removed, err := s.entries.DeleteByAccount(ctx, dbTx, target)
		if err != nil {
			return apperror.InternalError(fmt.Errorf("delete ledger entries: %w", err))
		}
		if err := s.accounts.Delete(ctx, dbTx, target); err != nil {
			return accountError(err)
		}
		return s.audits.CreateTx(ctx, dbTx, s.newAudit(req, target, domain.AuditActionDeleteAccount, map[string]interface{}{
			"final_balance":   account.CoinBalance,
			"entries_removed": removed,
		}))
	})
	if err != nil {
		return err
	}

	s.log.Info().
		Str("actor_id", req.ActorID).
		Str("account_id", target).
		Int64("final_balance", account.CoinBalance).
		Msg("account deleted")
	return nil
}

func (s *AdminServiceImpl) ListAccounts(ctx context.Context, actorID string, params ports.AccountListParams) ([]domain.Account, int64, error) {
	if err := s.authorize(ctx, actorID); err != nil {
		return nil, 0, err
	}
	accounts, total, err := s.accounts.List(ctx, params)
	if err != nil {
		return nil, 0, apperror.InternalError(fmt.Errorf("list accounts: %w", err))
	}
	return accounts, total, nil
}

func (s *AdminServiceImpl) ListAuditLogs(ctx context.Context, actorID string, params ports.AuditListParams) ([]domain.AuditLog, int64, error) {
	if err := s.authorize(ctx, actorID); err != nil {
		return nil, 0, err
	}
	logs, total, err := s.audits.List(ctx, params)
	if err != nil {
		return nil, 0, apperror.InternalError(fmt.Errorf("list audit logs: %w", err))
	}
	return logs, total, nil
}

func (s *AdminServiceImpl) Dashboard(ctx context.Context, actorID string) (*ports.AdminDashboard, error) {
	if err := s.authorize(ctx, actorID); err != nil {
		return nil, err
	}

	_, total, err := s.accounts.List(ctx, ports.AccountListParams{Page: 1, PageSize: 1})
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("count accounts: %w", err))
	}
	suspended := true
	_, suspendedTotal, err := s.accounts.List(ctx, ports.AccountListParams{Suspended: &suspended, Page: 1, PageSize: 1})
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("count suspended accounts: %w", err))
	}
	summary, err := s.ledger.Summary(ctx, nil, PeriodAll)
	if err != nil {
		return nil, err
	}

	return &ports.AdminDashboard{
		TotalAccounts:     total,
		SuspendedAccounts: suspendedTotal,
		Ledger:            *summary,
	}, nil
}

func (s *AdminServiceImpl) Reconcile(ctx context.Context, actorID, accountID string) (*domain.Reconciliation, error) {
	if err := s.authorize(ctx, actorID); err != nil {
		return nil, err
	}
	return s.ledger.Reconcile(ctx, domain.NormalizeAccountID(accountID))
}

// ListLedger lists entries across every account.
func (s *AdminServiceImpl) ListLedger(ctx context.Context, actorID string, params ports.LedgerListParams) ([]domain.LedgerEntry, int64, error) {
	if err := s.authorize(ctx, actorID); err != nil {
		return nil, 0, err
	}
	return s.ledger.ListEntries(ctx, params)
}

// DeleteRecord removes any account's bookkeeping record. The audit log
// names the owner as the target.
func (s *AdminServiceImpl) DeleteRecord(ctx context.Context, req ports.RecordActionRequest) error {
	if err := s.authorize(ctx, req.ActorID); err != nil {
		return err
	}
	if !req.Kind.IsValid() {
		return apperror.Validation("unknown record kind")
	}

	var owner string
	err := s.inTx(ctx, func(ctx context.Context, dbTx pgx.Tx) error {
		var err error
		owner, err = s.records.DeleteRecord(ctx, dbTx, req.Kind, req.RecordID, "")
		if err != nil {
			return recordError(err)
		}
		audit := s.newAudit(ports.AccountActionRequest{ActorID: req.ActorID, IPAddress: req.IPAddress},
			owner, domain.AuditActionDeleteRecord, map[string]interface{}{
				"kind":      string(req.Kind),
				"record_id": req.RecordID.String(),
			})
		return s.audits.CreateTx(ctx, dbTx, audit)
	})
	if err != nil {
		return err
	}

	s.log.Info().
		Str("actor_id", req.ActorID).
		Str("account_id", owner).
		Str("kind", string(req.Kind)).
		Str("record_id", req.RecordID.String()).
		Msg("record deleted")
	return nil
}

// loadTarget returns the account an administrative action applies to.
func (s *AdminServiceImpl) loadTarget(ctx context.Context, id string) (*domain.Account, error) {
	account, err := s.accounts.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("find account: %w", err))
	}
	if account == nil {
		return nil, apperror.ErrAccountNotFound()
	}
	return account, nil
}

func (s *AdminServiceImpl) newAudit(req ports.AccountActionRequest, target string, action domain.AuditAction, details map[string]interface{}) *domain.AuditLog {
	actor := req.ActorID
	return &domain.AuditLog{
		ID:              uuid.New(),
		AdminID:         &actor,
		Action:          action,
		TargetAccountID: target,
		Details:         details,
		IPAddress:       req.IPAddress,
		CreatedAt:       s.now(),
	}
}

func (s *AdminServiceImpl) inTx(ctx context.Context, fn func(ctx context.Context, dbTx pgx.Tx) error) error {
	return withTx(ctx, s.transactor, fn)
}

func accountError(err error) error {
	if errors.Is(err, domain.ErrAccountNotFound) {
		return apperror.ErrAccountNotFound()
	}
	return apperror.InternalError(err)
}
