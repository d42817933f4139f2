package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"coin-ledger/config"
	"coin-ledger/internal/core/domain"
	"coin-ledger/internal/core/ports"
	"coin-ledger/pkg/apperror"

	"github.com/rs/zerolog"
)

const purchaseReplayTTL = 24 * time.Hour

// PurchaseServiceImpl implements ports.PurchaseService.
type PurchaseServiceImpl struct {
	ledger  ports.LedgerService
	entries ports.LedgerRepository
	cache   ports.IdempotencyCache
	policy  config.LedgerConfig
	log     zerolog.Logger
	now     func() time.Time
}

// NewPurchaseService creates a new PurchaseServiceImpl. cache may be nil,
// in which case replays are answered from the ledger alone.
func NewPurchaseService(
	ledger ports.LedgerService,
	entries ports.LedgerRepository,
	cache ports.IdempotencyCache,
	policy config.LedgerConfig,
	log zerolog.Logger,
) *PurchaseServiceImpl {
	return &PurchaseServiceImpl{
		ledger:  ledger,
		entries: entries,
		cache:   cache,
		policy:  policy,
		log:     log,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Purchase credits a coin package. A payment reference that was already
// credited to the account is replayed instead of credited twice.
func (s *PurchaseServiceImpl) Purchase(ctx context.Context, req ports.PurchaseRequest) (*ports.PurchaseResult, error) {
	if !s.policy.IsPurchasePackage(req.Amount) {
		return nil, apperror.Validation(fmt.Sprintf("amount must be one of %v", s.policy.PurchasePackages))
	}

	ref := strings.TrimSpace(req.PaymentReference)
	if ref != "" {
		replay, err := s.replay(ctx, req, ref)
		if err != nil || replay != nil {
			return replay, err
		}
	} else {
		ref = domain.BuildReference(domain.RefPrefixPurchase, s.now())
	}

	applied, err := s.ledger.Post(ctx, ports.ApplyRequest{
		AccountID: req.AccountID,
		Amount:    req.Amount,
		Kind:      domain.EntryKindPurchase,
		Reference: ref,
	})
	if err != nil {
		// Lost a race with a concurrent request carrying the same reference.
		if apperror.Is(err, apperror.CodeDuplicateReference) {
			if replay, rerr := s.replay(ctx, req, ref); rerr != nil || replay != nil {
				return replay, rerr
			}
		}
		s.log.Error().Err(err).
			Str("account_id", req.AccountID).
			Int64("amount", req.Amount).
			Str("reference", ref).
			Msg("coin purchase failed")
		return nil, err
	}

	result := &ports.PurchaseResult{Entry: applied.Entry, Balance: applied.Balance}
	s.remember(ctx, req.AccountID, ref, result)

	s.log.Info().
		Str("account_id", req.AccountID).
		Int64("amount", req.Amount).
		Str("payment_method", req.PaymentMethod).
		Str("reference", ref).
		Msg("coins purchased")
	return result, nil
}

// replay returns nil, nil when ref has not been credited yet.
func (s *PurchaseServiceImpl) replay(ctx context.Context, req ports.PurchaseRequest, ref string) (*ports.PurchaseResult, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, cacheKey(req.AccountID, ref))
		if err != nil {
			s.log.Warn().Err(err).Str("reference", ref).Msg("idempotency cache read failed")
		}
		if cached != nil {
			var result ports.PurchaseResult
			if err := json.Unmarshal(cached, &result); err == nil {
				return s.checkReplay(req, &result)
			}
		}
	}

	entry, err := s.entries.GetByReference(ctx, req.AccountID, ref)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lookup reference: %w", err))
	}
	if entry == nil {
		return nil, nil
	}
	balance, err := s.ledger.GetBalance(ctx, req.AccountID)
	if err != nil {
		return nil, err
	}
	result := &ports.PurchaseResult{Entry: *entry, Balance: balance}
	s.remember(ctx, req.AccountID, ref, result)
	return s.checkReplay(req, result)
}

// checkReplay refuses to reuse a reference for a different purchase.
func (s *PurchaseServiceImpl) checkReplay(req ports.PurchaseRequest, result *ports.PurchaseResult) (*ports.PurchaseResult, error) {
	if result.Entry.Kind != domain.EntryKindPurchase || result.Entry.Amount != req.Amount {
		return nil, apperror.ErrDuplicateReference()
	}
	result.Replayed = true
	s.log.Info().
		Str("account_id", req.AccountID).
		Str("reference", result.Entry.Reference).
		Msg("purchase replayed")
	return result, nil
}

func (s *PurchaseServiceImpl) remember(ctx context.Context, accountID, ref string, result *ports.PurchaseResult) {
	if s.cache == nil {
		return
	}
	data, err := json.Marshal(result)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, cacheKey(accountID, ref), data, purchaseReplayTTL); err != nil {
		s.log.Warn().Err(err).Str("reference", ref).Msg("idempotency cache write failed")
	}
}

func cacheKey(accountID, ref string) string {
	return accountID + ":" + ref
}
