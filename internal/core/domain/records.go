package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceStatus is the payment state of an invoice.
type InvoiceStatus string

const (
	InvoiceStatusPending InvoiceStatus = "pending"
	InvoiceStatusPaid    InvoiceStatus = "paid"
	InvoiceStatusOverdue InvoiceStatus = "overdue"
)

// Invoice is a bill issued by the account holder to a customer.
type Invoice struct {
	ID           uuid.UUID       `json:"id"`
	AccountID    string          `json:"account_id"`
	Number       string          `json:"invoice_number"`
	CustomerName string          `json:"customer_name"`
	Description  string          `json:"description,omitempty"`
	Amount       decimal.Decimal `json:"amount"`
	Status       InvoiceStatus   `json:"status"`
	DueDate      *time.Time      `json:"due_date,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

// InventoryItem is a stocked product.
type InventoryItem struct {
	ID           uuid.UUID       `json:"id"`
	AccountID    string          `json:"account_id"`
	Name         string          `json:"name"`
	Quantity     int64           `json:"quantity"`
	Unit         string          `json:"unit"`
	BuyingPrice  decimal.Decimal `json:"buying_price"`
	SellingPrice decimal.Decimal `json:"selling_price"`
	Threshold    int64           `json:"threshold"`
	CreatedAt    time.Time       `json:"created_at"`
}

// IsLowStock returns true when the quantity is at or below the threshold.
func (i *InventoryItem) IsLowStock() bool {
	return i.Quantity <= i.Threshold
}

// StockValue is quantity valued at buying price.
func (i *InventoryItem) StockValue() decimal.Decimal {
	return i.BuyingPrice.Mul(decimal.NewFromInt(i.Quantity))
}

// PotentialRevenue is quantity valued at selling price.
func (i *InventoryItem) PotentialRevenue() decimal.Decimal {
	return i.SellingPrice.Mul(decimal.NewFromInt(i.Quantity))
}

// ContactType tells debtors (owe us) from creditors (we owe).
type ContactType string

const (
	ContactTypeDebtor   ContactType = "debtor"
	ContactTypeCreditor ContactType = "creditor"
)

// Contact is a debtor or creditor and the outstanding amount.
type Contact struct {
	ID          uuid.UUID       `json:"id"`
	AccountID   string          `json:"account_id"`
	Type        ContactType     `json:"type"`
	Name        string          `json:"name"`
	Phone       string          `json:"phone,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// CashflowType tells money in from money out.
type CashflowType string

const (
	CashflowTypeReceipt CashflowType = "receipt"
	CashflowTypePayment CashflowType = "payment"
)

// Cashflow is a recorded receipt or payment.
type Cashflow struct {
	ID          uuid.UUID       `json:"id"`
	AccountID   string          `json:"account_id"`
	Type        CashflowType    `json:"type"`
	PartyName   string          `json:"party_name"`
	Amount      decimal.Decimal `json:"amount"`
	Method      string          `json:"method,omitempty"`
	Category    string          `json:"category,omitempty"`
	Description string          `json:"description,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// CashflowFilter narrows cashflow queries.
type CashflowFilter struct {
	AccountID string
	Type      *CashflowType
	From      *time.Time
	To        *time.Time
}

// Matches reports whether c falls inside the filter.
func (f CashflowFilter) Matches(c *Cashflow) bool {
	if c.AccountID != f.AccountID {
		return false
	}
	if f.Type != nil && c.Type != *f.Type {
		return false
	}
	if f.From != nil && c.CreatedAt.Before(*f.From) {
		return false
	}
	if f.To != nil && !c.CreatedAt.Before(*f.To) {
		return false
	}
	return true
}

// CashflowTotals sums receipts and payments.
type CashflowTotals struct {
	Receipts     decimal.Decimal `json:"receipts"`
	Payments     decimal.Decimal `json:"payments"`
	ReceiptCount int64           `json:"receipt_count"`
	PaymentCount int64           `json:"payment_count"`
}

// Feedback is a user's rating of the service.
type Feedback struct {
	ID        uuid.UUID `json:"id"`
	AccountID string    `json:"account_id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ProfitLossReport is the income statement over a period.
type ProfitLossReport struct {
	AccountID     string          `json:"account_id"`
	From          *time.Time      `json:"from,omitempty"`
	To            *time.Time      `json:"to,omitempty"`
	TotalReceipts decimal.Decimal `json:"total_receipts"`
	TotalPayments decimal.Decimal `json:"total_payments"`
	NetProfit     decimal.Decimal `json:"net_profit"`
	ReceiptCount  int64           `json:"receipt_count"`
	PaymentCount  int64           `json:"payment_count"`
	GeneratedAt   time.Time       `json:"generated_at"`
}

// NewProfitLossReport derives the report from cashflow totals.
func NewProfitLossReport(accountID string, from, to *time.Time, totals CashflowTotals, at time.Time) *ProfitLossReport {
	return &ProfitLossReport{
		AccountID:     accountID,
		From:          from,
		To:            to,
		TotalReceipts: totals.Receipts,
		TotalPayments: totals.Payments,
		NetProfit:     totals.Receipts.Sub(totals.Payments),
		ReceiptCount:  totals.ReceiptCount,
		PaymentCount:  totals.PaymentCount,
		GeneratedAt:   at,
	}
}

// InventoryReport values the current stock.
type InventoryReport struct {
	AccountID        string          `json:"account_id"`
	ItemCount        int             `json:"item_count"`
	TotalUnits       int64           `json:"total_units"`
	StockValue       decimal.Decimal `json:"stock_value"`
	PotentialRevenue decimal.Decimal `json:"potential_revenue"`
	LowStock         []InventoryItem `json:"low_stock"`
	GeneratedAt      time.Time       `json:"generated_at"`
}

// NewInventoryReport values items.
func NewInventoryReport(accountID string, items []InventoryItem, at time.Time) *InventoryReport {
	r := &InventoryReport{
		AccountID:        accountID,
		ItemCount:        len(items),
		StockValue:       decimal.Zero,
		PotentialRevenue: decimal.Zero,
		LowStock:         []InventoryItem{},
		GeneratedAt:      at,
	}
	for i := range items {
		item := &items[i]
		r.TotalUnits += item.Quantity
		r.StockValue = r.StockValue.Add(item.StockValue())
		r.PotentialRevenue = r.PotentialRevenue.Add(item.PotentialRevenue())
		if item.IsLowStock() {
			r.LowStock = append(r.LowStock, *item)
		}
	}
	return r
}

// RecordKind names a bookkeeping table for per-record operations.
type RecordKind string

const (
	RecordKindInvoice   RecordKind = "invoice"
	RecordKindInventory RecordKind = "inventory"
	RecordKindDebtor    RecordKind = "debtor"
	RecordKindCreditor  RecordKind = "creditor"
	RecordKindReceipt   RecordKind = "receipt"
	RecordKindPayment   RecordKind = "payment"
)

// IsValid reports whether k names a known record table.
func (k RecordKind) IsValid() bool {
	switch k {
	case RecordKindInvoice, RecordKindInventory, RecordKindDebtor,
		RecordKindCreditor, RecordKindReceipt, RecordKindPayment:
		return true
	}
	return false
}

// ContactRecordKind maps a contact type to its record kind.
func ContactRecordKind(t ContactType) RecordKind {
	if t == ContactTypeCreditor {
		return RecordKindCreditor
	}
	return RecordKindDebtor
}

// CashflowRecordKind maps a cashflow type to its record kind.
func CashflowRecordKind(t CashflowType) RecordKind {
	if t == CashflowTypePayment {
		return RecordKindPayment
	}
	return RecordKindReceipt
}

// InventoryUpdate carries the editable item fields; nil means unchanged.
type InventoryUpdate struct {
	Name         *string
	Quantity     *int64
	Unit         *string
	BuyingPrice  *decimal.Decimal
	SellingPrice *decimal.Decimal
	Threshold    *int64
}

// Apply copies the set fields onto the item.
func (u InventoryUpdate) Apply(i *InventoryItem) {
	if u.Name != nil {
		i.Name = *u.Name
	}
	if u.Quantity != nil {
		i.Quantity = *u.Quantity
	}
	if u.Unit != nil {
		i.Unit = *u.Unit
	}
	if u.BuyingPrice != nil {
		i.BuyingPrice = *u.BuyingPrice
	}
	if u.SellingPrice != nil {
		i.SellingPrice = *u.SellingPrice
	}
	if u.Threshold != nil {
		i.Threshold = *u.Threshold
	}
}

func (u InventoryUpdate) IsEmpty() bool {
	return u.Name == nil && u.Quantity == nil && u.Unit == nil &&
		u.BuyingPrice == nil && u.SellingPrice == nil && u.Threshold == nil
}

// ContactUpdate carries the editable debtor/creditor fields.
type ContactUpdate struct {
	Name        *string
	Phone       *string
	Amount      *decimal.Decimal
	Description *string
}

func (u ContactUpdate) Apply(c *Contact) {
	if u.Name != nil {
		c.Name = *u.Name
	}
	if u.Phone != nil {
		c.Phone = *u.Phone
	}
	if u.Amount != nil {
		c.Amount = *u.Amount
	}
	if u.Description != nil {
		c.Description = *u.Description
	}
}

func (u ContactUpdate) IsEmpty() bool {
	return u.Name == nil && u.Phone == nil && u.Amount == nil && u.Description == nil
}

// CashflowUpdate carries the editable receipt/payment fields.
type CashflowUpdate struct {
	PartyName   *string
	Amount      *decimal.Decimal
	Method      *string
	Category    *string
	Description *string
}

func (u CashflowUpdate) Apply(c *Cashflow) {
	if u.PartyName != nil {
		c.PartyName = *u.PartyName
	}
	if u.Amount != nil {
		c.Amount = *u.Amount
	}
	if u.Method != nil {
		c.Method = *u.Method
	}
	if u.Category != nil {
		c.Category = *u.Category
	}
	if u.Description != nil {
		c.Description = *u.Description
	}
}

func (u CashflowUpdate) IsEmpty() bool {
	return u.PartyName == nil && u.Amount == nil && u.Method == nil &&
		u.Category == nil && u.Description == nil
}
