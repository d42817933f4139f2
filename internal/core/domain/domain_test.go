package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestEntryKind_Classification(t *testing.T) {
	tests := []struct {
		kind       EntryKind
		valid      bool
		credit     bool
		privileged bool
	}{
		{EntryKindPurchase, true, true, false},
		{EntryKindSpend, true, false, false},
		{EntryKindCredit, true, true, false},
		{EntryKindAdminCredit, true, true, true},
		{EntryKind("refund"), false, false, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.kind.IsValid())
			assert.Equal(t, tt.credit, tt.kind.IsCredit())
			assert.Equal(t, tt.privileged, tt.kind.IsPrivileged())
		})
	}
}

func TestValidateEntry(t *testing.T) {
	tests := []struct {
		name    string
		amount  int64
		kind    EntryKind
		wantErr error
	}{
		{"spend negative", -1, EntryKindSpend, nil},
		{"spend positive", 1, EntryKindSpend, ErrInvalidAmount},
		{"purchase positive", 50, EntryKindPurchase, nil},
		{"credit negative", -5, EntryKindCredit, ErrInvalidAmount},
		{"admin credit positive", 50, EntryKindAdminCredit, nil},
		{"zero amount", 0, EntryKindCredit, ErrInvalidAmount},
		{"unknown kind", 10, EntryKind("bonus"), ErrInvalidEntryKind},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEntry(tt.amount, tt.kind)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestBuildReference(t *testing.T) {
	at := time.Date(2026, 3, 1, 9, 30, 0, 0, time.FixedZone("WAT", 3600))
	assert.Equal(t, "create_invoice_2026-03-01T08:30:00Z", BuildReference(ActionCreateInvoice, at))
	assert.Equal(t, "ADMIN_CREDIT_2026-03-01T08:30:00Z", BuildReference(RefPrefixAdminCredit, at))
}

func TestNormalizeAccountID(t *testing.T) {
	assert.Equal(t, "alice", NormalizeAccountID("  Alice "))
	assert.Equal(t, "bob", NormalizeAccountID("bob"))
}

func TestProfileUpdate(t *testing.T) {
	name := "Carol's Stores"
	acct := &Account{ID: "carol", DisplayName: "Carol", Phone: "0801"}

	assert.True(t, ProfileUpdate{}.IsEmpty())

	upd := ProfileUpdate{BusinessName: &name}
	assert.False(t, upd.IsEmpty())
	upd.Apply(acct)

	assert.Equal(t, "Carol", acct.DisplayName)
	assert.Equal(t, "0801", acct.Phone)
	assert.Equal(t, name, acct.BusinessName)
}

func TestAccount_IsAdmin(t *testing.T) {
	assert.True(t, (&Account{Role: RoleAdmin}).IsAdmin())
	assert.False(t, (&Account{Role: RoleTrader}).IsAdmin())
}

func TestNewCreditAudit(t *testing.T) {
	entry := LedgerEntry{
		ID:        uuid.New(),
		AccountID: "carol",
		Amount:    50,
		Kind:      EntryKindAdminCredit,
		Reference: "ADMIN_CREDIT_x",
		CreatedAt: time.Now(),
	}

	log := NewCreditAudit("root", entry)

	assert.Equal(t, AuditActionAdminCredit, log.Action)
	assert.Equal(t, "root", *log.AdminID)
	assert.Equal(t, "carol", log.TargetAccountID)
	assert.Equal(t, "carol", log.Details["account_id"])
	assert.Equal(t, int64(50), log.Details["amount"])
	assert.Equal(t, "ADMIN_CREDIT_x", log.Details["reference"])
	assert.Equal(t, entry.CreatedAt, log.CreatedAt)
}

func TestNewEntryAppendedEvent(t *testing.T) {
	entry := LedgerEntry{AccountID: "alice", Amount: -1, Kind: EntryKindSpend, CreatedAt: time.Now()}
	ev := NewEntryAppendedEvent(entry, 9)

	assert.Equal(t, EventEntryAppended, ev.Type)
	assert.Equal(t, int64(9), ev.Balance)
	assert.Equal(t, entry.CreatedAt, ev.OccurredAt)
}

func TestInventoryItem_Valuation(t *testing.T) {
	item := InventoryItem{
		Quantity:     4,
		BuyingPrice:  decimal.RequireFromString("2.50"),
		SellingPrice: decimal.RequireFromString("3.75"),
		Threshold:    5,
	}

	assert.True(t, item.IsLowStock())
	assert.True(t, item.StockValue().Equal(decimal.RequireFromString("10")))
	assert.True(t, item.PotentialRevenue().Equal(decimal.RequireFromString("15")))
}

func TestNewInventoryReport(t *testing.T) {
	items := []InventoryItem{
		{Name: "rice", Quantity: 10, BuyingPrice: decimal.NewFromInt(20), SellingPrice: decimal.NewFromInt(25), Threshold: 2},
		{Name: "beans", Quantity: 1, BuyingPrice: decimal.NewFromInt(8), SellingPrice: decimal.NewFromInt(10), Threshold: 3},
	}

	r := NewInventoryReport("alice", items, time.Now())

	assert.Equal(t, 2, r.ItemCount)
	assert.Equal(t, int64(11), r.TotalUnits)
	assert.True(t, r.StockValue.Equal(decimal.NewFromInt(208)))
	assert.True(t, r.PotentialRevenue.Equal(decimal.NewFromInt(260)))
	if assert.Len(t, r.LowStock, 1) {
		assert.Equal(t, "beans", r.LowStock[0].Name)
	}
}

func TestNewProfitLossReport(t *testing.T) {
	totals := CashflowTotals{
		Receipts:     decimal.RequireFromString("1500.50"),
		Payments:     decimal.RequireFromString("700.25"),
		ReceiptCount: 3,
		PaymentCount: 2,
	}

	r := NewProfitLossReport("alice", nil, nil, totals, time.Now())

	assert.True(t, r.NetProfit.Equal(decimal.RequireFromString("800.25")))
	assert.Equal(t, int64(3), r.ReceiptCount)
}

func TestCashflowFilter_Matches(t *testing.T) {
	receipt := CashflowTypeReceipt
	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	f := CashflowFilter{AccountID: "alice", Type: &receipt, From: &from, To: &to}

	inside := &Cashflow{AccountID: "alice", Type: CashflowTypeReceipt, CreatedAt: from.Add(time.Hour)}
	assert.True(t, f.Matches(inside))

	assert.False(t, f.Matches(&Cashflow{AccountID: "bob", Type: CashflowTypeReceipt, CreatedAt: from}))
	assert.False(t, f.Matches(&Cashflow{AccountID: "alice", Type: CashflowTypePayment, CreatedAt: from}))
	assert.False(t, f.Matches(&Cashflow{AccountID: "alice", Type: CashflowTypeReceipt, CreatedAt: to}))
}
