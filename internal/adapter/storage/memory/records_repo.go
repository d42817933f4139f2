package memory

import (
	"context"
	"fmt"
	"sort"

	"coin-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// RecordsRepo implements ports.RecordsRepository.
type RecordsRepo struct {
	store *Store
}

// NewRecordsRepo creates a new RecordsRepo.
func NewRecordsRepo(s *Store) *RecordsRepo {
	return &RecordsRepo{store: s}
}

func (r *RecordsRepo) CreateInvoice(ctx context.Context, tx pgx.Tx, inv *domain.Invoice) error {
	row := *inv
	_, err := r.store.write(tx, func(t *tables) error {
		t.invoices = append(t.invoices, row)
		return nil
	})
	return err
}

// NextInvoiceNumber counts the invoices visible to tx, including the ones
// it created itself.
func (r *RecordsRepo) NextInvoiceNumber(ctx context.Context, tx pgx.Tx, accountID string) (string, error) {
	if _, err := r.store.txOf(tx); err != nil {
		return "", err
	}
	var n int
	if err := r.store.read(tx, func(t *tables) {
		for _, inv := range t.invoices {
			if inv.AccountID == accountID {
				n++
			}
		}
	}); err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n+1), nil
}

func (r *RecordsRepo) ListInvoices(ctx context.Context, accountID string, page, pageSize int) ([]domain.Invoice, int64, error) {
	invoices := []domain.Invoice{}
	r.store.committed(func(t *tables) {
		for i := len(t.invoices) - 1; i >= 0; i-- {
			if t.invoices[i].AccountID == accountID {
				invoices = append(invoices, t.invoices[i])
			}
		}
	})
	return paginate(invoices, page, pageSize), int64(len(invoices)), nil
}

func (r *RecordsRepo) CreateInventoryItem(ctx context.Context, tx pgx.Tx, item *domain.InventoryItem) error {
	row := *item
	_, err := r.store.write(tx, func(t *tables) error {
		t.inventory = append(t.inventory, row)
		return nil
	})
	return err
}

func (r *RecordsRepo) ListInventoryItems(ctx context.Context, tx pgx.Tx, accountID string) ([]domain.InventoryItem, error) {
	items := []domain.InventoryItem{}
	if err := r.store.read(tx, func(t *tables) {
		for _, item := range t.inventory {
			if item.AccountID == accountID {
				items = append(items, item)
			}
		}
	}); err != nil {
		return nil, err
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return items, nil
}

func (r *RecordsRepo) UpdateInventoryItem(ctx context.Context, tx pgx.Tx, accountID string, id uuid.UUID, update domain.InventoryUpdate) (*domain.InventoryItem, error) {
	var at int
	t, err := r.store.write(tx, func(t *tables) error {
		i := indexOf(t.inventory, func(v domain.InventoryItem) bool { return v.ID == id && v.AccountID == accountID })
		if i < 0 {
			return fmt.Errorf("update inventory item %s: %w", id, domain.ErrRecordNotFound)
		}
		update.Apply(&t.inventory[i])
		at = i
		return nil
	})
	if err != nil {
		return nil, err
	}
	out := t.inventory[at]
	return &out, nil
}

func (r *RecordsRepo) CreateContact(ctx context.Context, tx pgx.Tx, c *domain.Contact) error {
	row := *c
	_, err := r.store.write(tx, func(t *tables) error {
		t.contacts = append(t.contacts, row)
		return nil
	})
	return err
}

func (r *RecordsRepo) ListContacts(ctx context.Context, accountID string, contactType domain.ContactType) ([]domain.Contact, error) {
	contacts := []domain.Contact{}
	r.store.committed(func(t *tables) {
		for i := len(t.contacts) - 1; i >= 0; i-- {
			c := t.contacts[i]
			if c.AccountID == accountID && c.Type == contactType {
				contacts = append(contacts, c)
			}
		}
	})
	return contacts, nil
}

func (r *RecordsRepo) UpdateContact(ctx context.Context, tx pgx.Tx, accountID string, contactType domain.ContactType, id uuid.UUID, update domain.ContactUpdate) (*domain.Contact, error) {
	var at int
	t, err := r.store.write(tx, func(t *tables) error {
		i := indexOf(t.contacts, func(v domain.Contact) bool {
			return v.ID == id && v.AccountID == accountID && v.Type == contactType
		})
		if i < 0 {
			return fmt.Errorf("update %s %s: %w", contactType, id, domain.ErrRecordNotFound)
		}
		update.Apply(&t.contacts[i])
		at = i
		return nil
	})
	if err != nil {
		return nil, err
	}
	out := t.contacts[at]
	return &out, nil
}

func (r *RecordsRepo) CreateCashflow(ctx context.Context, tx pgx.Tx, cf *domain.Cashflow) error {
	row := *cf
	_, err := r.store.write(tx, func(t *tables) error {
		t.cashflows = append(t.cashflows, row)
		return nil
	})
	return err
}

func (r *RecordsRepo) ListCashflows(ctx context.Context, filter domain.CashflowFilter) ([]domain.Cashflow, error) {
	flows := []domain.Cashflow{}
	r.store.committed(func(t *tables) {
		for i := len(t.cashflows) - 1; i >= 0; i-- {
			cf := t.cashflows[i]
			if filter.Matches(&cf) {
				flows = append(flows, cf)
			}
		}
	})
	return flows, nil
}

func (r *RecordsRepo) SumCashflows(ctx context.Context, tx pgx.Tx, filter domain.CashflowFilter) (*domain.CashflowTotals, error) {
	totals := &domain.CashflowTotals{Receipts: decimal.Zero, Payments: decimal.Zero}
	err := r.store.read(tx, func(t *tables) {
		for i := range t.cashflows {
			cf := &t.cashflows[i]
			if !filter.Matches(cf) {
				continue
			}
			switch cf.Type {
			case domain.CashflowTypeReceipt:
				totals.Receipts = totals.Receipts.Add(cf.Amount)
				totals.ReceiptCount++
			case domain.CashflowTypePayment:
				totals.Payments = totals.Payments.Add(cf.Amount)
				totals.PaymentCount++
			}
		}
	})
	if err != nil {
		return nil, err
	}
	return totals, nil
}

func (r *RecordsRepo) UpdateCashflow(ctx context.Context, tx pgx.Tx, accountID string, cashflowType domain.CashflowType, id uuid.UUID, update domain.CashflowUpdate) (*domain.Cashflow, error) {
	var at int
	t, err := r.store.write(tx, func(t *tables) error {
		i := indexOf(t.cashflows, func(v domain.Cashflow) bool {
			return v.ID == id && v.AccountID == accountID && v.Type == cashflowType
		})
		if i < 0 {
			return fmt.Errorf("update %s %s: %w", cashflowType, id, domain.ErrRecordNotFound)
		}
		update.Apply(&t.cashflows[i])
		at = i
		return nil
	})
	if err != nil {
		return nil, err
	}
	out := t.cashflows[at]
	return &out, nil
}

func (r *RecordsRepo) CreateFeedback(ctx context.Context, tx pgx.Tx, f *domain.Feedback) error {
	row := *f
	_, err := r.store.write(tx, func(t *tables) error {
		t.feedback = append(t.feedback, row)
		return nil
	})
	return err
}

func (r *RecordsRepo) DeleteRecord(ctx context.Context, tx pgx.Tx, kind domain.RecordKind, id uuid.UUID, accountID string) (string, error) {
	owns := func(owner string) bool { return accountID == "" || owner == accountID }
	var owner string
	_, err := r.store.write(tx, func(t *tables) error {
		var found bool
		switch kind {
		case domain.RecordKindInvoice:
			t.invoices, owner, found = dropOne(t.invoices, func(v domain.Invoice) (string, bool) {
				return v.AccountID, v.ID == id && owns(v.AccountID)
			})
		case domain.RecordKindInventory:
			t.inventory, owner, found = dropOne(t.inventory, func(v domain.InventoryItem) (string, bool) {
				return v.AccountID, v.ID == id && owns(v.AccountID)
			})
		case domain.RecordKindDebtor, domain.RecordKindCreditor:
			t.contacts, owner, found = dropOne(t.contacts, func(v domain.Contact) (string, bool) {
				return v.AccountID, v.ID == id && owns(v.AccountID) && domain.ContactRecordKind(v.Type) == kind
			})
		case domain.RecordKindReceipt, domain.RecordKindPayment:
			t.cashflows, owner, found = dropOne(t.cashflows, func(v domain.Cashflow) (string, bool) {
				return v.AccountID, v.ID == id && owns(v.AccountID) && domain.CashflowRecordKind(v.Type) == kind
			})
		default:
			return fmt.Errorf("delete record of kind %q: %w", kind, domain.ErrRecordNotFound)
		}
		if !found {
			return fmt.Errorf("delete %s %s: %w", kind, id, domain.ErrRecordNotFound)
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return owner, nil
}

func (r *RecordsRepo) DeleteByAccount(ctx context.Context, tx pgx.Tx, accountID string) error {
	_, err := r.store.write(tx, func(t *tables) error {
		t.invoices = without(t.invoices, func(v domain.Invoice) bool { return v.AccountID == accountID })
		t.inventory = without(t.inventory, func(v domain.InventoryItem) bool { return v.AccountID == accountID })
		t.contacts = without(t.contacts, func(v domain.Contact) bool { return v.AccountID == accountID })
		t.cashflows = without(t.cashflows, func(v domain.Cashflow) bool { return v.AccountID == accountID })
		t.feedback = without(t.feedback, func(v domain.Feedback) bool { return v.AccountID == accountID })
		return nil
	})
	return err
}

func without[T any](rows []T, drop func(T) bool) []T {
	kept := make([]T, 0, len(rows))
	for _, v := range rows {
		if !drop(v) {
			kept = append(kept, v)
		}
	}
	return kept
}

func indexOf[T any](rows []T, match func(T) bool) int {
	for i, v := range rows {
		if match(v) {
			return i
		}
	}
	return -1
}

// dropOne removes the first row match accepts and reports its owner.
func dropOne[T any](rows []T, match func(T) (string, bool)) ([]T, string, bool) {
	for i, v := range rows {
		if owner, ok := match(v); ok {
			return append(rows[:i:i], rows[i+1:]...), owner, true
		}
	}
	return rows, "", false
}
