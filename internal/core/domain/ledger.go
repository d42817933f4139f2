package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// EntryKind classifies a coin movement. Reporting groups by kind, so the
// kind is kept even though the amount's sign already implies direction.
type EntryKind string

const (
	EntryKindPurchase    EntryKind = "purchase"
	EntryKindSpend       EntryKind = "spend"
	EntryKindCredit      EntryKind = "credit"
	EntryKindAdminCredit EntryKind = "admin_credit"
)

// EntryKinds lists every valid kind in reporting order.
var EntryKinds = []EntryKind{
	EntryKindPurchase,
	EntryKindSpend,
	EntryKindCredit,
	EntryKindAdminCredit,
}

// IsValid returns true for the known kinds.
func (k EntryKind) IsValid() bool {
	switch k {
	case EntryKindPurchase, EntryKindSpend, EntryKindCredit, EntryKindAdminCredit:
		return true
	}
	return false
}

// IsCredit returns true for kinds that add coins.
func (k EntryKind) IsCredit() bool {
	return k == EntryKindPurchase || k == EntryKindCredit || k == EntryKindAdminCredit
}

// IsPrivileged returns true for kinds that always need an audit trail.
func (k EntryKind) IsPrivileged() bool {
	return k == EntryKindAdminCredit
}

// LedgerEntry is an immutable coin movement.
type LedgerEntry struct {
	ID        uuid.UUID `json:"id"`
	AccountID string    `json:"account_id"`
	Amount    int64     `json:"amount"` // positive = credit, negative = debit
	Kind      EntryKind `json:"kind"`
	Reference string    `json:"reference"`
	CreatedAt time.Time `json:"created_at"`
}

// ValidateEntry enforces the sign convention: spend is negative,
// every other kind is positive.
func ValidateEntry(amount int64, kind EntryKind) error {
	if !kind.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidEntryKind, kind)
	}
	if amount == 0 {
		return fmt.Errorf("%w: zero", ErrInvalidAmount)
	}
	if kind == EntryKindSpend && amount > 0 {
		return fmt.Errorf("%w: spend must be negative, got %d", ErrInvalidAmount, amount)
	}
	if kind.IsCredit() && amount < 0 {
		return fmt.Errorf("%w: %s must be positive, got %d", ErrInvalidAmount, kind, amount)
	}
	return nil
}

// BuildReference formats the traceable reference for a ledger entry.
func BuildReference(prefix string, at time.Time) string {
	return prefix + "_" + at.UTC().Format(time.RFC3339Nano)
}

// Reference prefixes.
const (
	RefPrefixAdminCredit = "ADMIN_CREDIT"
	RefPrefixPurchase    = "PAY"
	RefPrefixSignup      = "SIGNUP_BONUS"
)

// KindTotal aggregates entries of one kind.
type KindTotal struct {
	Kind  EntryKind `json:"kind"`
	Count int64     `json:"count"`
	Total int64     `json:"total"`
}

// LedgerSummary groups an account's (or the whole ledger's) movement by kind.
type LedgerSummary struct {
	AccountID string      `json:"account_id,omitempty"`
	Since     *time.Time  `json:"since,omitempty"`
	Totals    []KindTotal `json:"totals"`
	Net       int64       `json:"net"`
}

// Reconciliation compares the stored balance with the sum of entries.
type Reconciliation struct {
	AccountID     string    `json:"account_id"`
	StoredBalance int64     `json:"stored_balance"`
	LedgerSum     int64     `json:"ledger_sum"`
	EntryCount    int64     `json:"entry_count"`
	Consistent    bool      `json:"consistent"`
	CheckedAt     time.Time `json:"checked_at"`
}
