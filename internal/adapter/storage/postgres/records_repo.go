package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"coin-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// Money columns are NUMERIC. They are written as decimal strings and read
// back through ::TEXT so no precision passes through float64.

// RecordsRepo implements ports.RecordsRepository.
type RecordsRepo struct {
	pool Pool
}

// NewRecordsRepo creates a new RecordsRepo.
func NewRecordsRepo(pool Pool) *RecordsRepo {
	return &RecordsRepo{pool: pool}
}

// ---- Invoices ----

func (r *RecordsRepo) CreateInvoice(ctx context.Context, tx pgx.Tx, inv *domain.Invoice) error {
	query := `INSERT INTO invoices (id, account_id, number, customer_name, description, amount, status, due_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := tx.Exec(ctx, query,
		inv.ID, inv.AccountID, inv.Number, inv.CustomerName, inv.Description,
		inv.Amount.String(), inv.Status, inv.DueDate, inv.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// NextInvoiceNumber locks the owning account row so concurrent invoices of
// one account get distinct numbers.
func (r *RecordsRepo) NextInvoiceNumber(ctx context.Context, tx pgx.Tx, accountID string) (string, error) {
	if _, err := tx.Exec(ctx, `SELECT 1 FROM accounts WHERE id = $1 FOR UPDATE`, accountID); err != nil {
		return "", fmt.Errorf("lock account for invoice number: %w", err)
	}

	var next int64
	err := tx.QueryRow(ctx, `SELECT COUNT(*) + 1 FROM invoices WHERE account_id = $1`, accountID).Scan(&next)
	if err != nil {
		return "", fmt.Errorf("next invoice number: %w", err)
	}
	return fmt.Sprintf("%06d", next), nil
}

func (r *RecordsRepo) ListInvoices(ctx context.Context, accountID string, page, pageSize int) ([]domain.Invoice, int64, error) {
	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM invoices WHERE account_id = $1`, accountID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count invoices: %w", err)
	}

	rows, err := r.pool.Query(ctx,
		`SELECT id, account_id, number, customer_name, description, amount::TEXT, status, due_date, created_at
		FROM invoices WHERE account_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		accountID, pageSize, offset(page, pageSize),
	)
	if err != nil {
		return nil, 0, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()

	invoices := []domain.Invoice{}
	for rows.Next() {
		inv := domain.Invoice{}
		var amount string
		if err := rows.Scan(&inv.ID, &inv.AccountID, &inv.Number, &inv.CustomerName, &inv.Description,
			&amount, &inv.Status, &inv.DueDate, &inv.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan invoice row: %w", err)
		}
		if inv.Amount, err = parseMoney(amount); err != nil {
			return nil, 0, err
		}
		invoices = append(invoices, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate invoice rows: %w", err)
	}
	return invoices, total, nil
}

// ---- Inventory ----

func (r *RecordsRepo) CreateInventoryItem(ctx context.Context, tx pgx.Tx, item *domain.InventoryItem) error {
	query := `INSERT INTO inventory_items (id, account_id, name, quantity, unit, buying_price, selling_price, threshold, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := tx.Exec(ctx, query,
		item.ID, item.AccountID, item.Name, item.Quantity, item.Unit,
		item.BuyingPrice.String(), item.SellingPrice.String(), item.Threshold, item.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert inventory item: %w", err)
	}
	return nil
}

func (r *RecordsRepo) ListInventoryItems(ctx context.Context, tx pgx.Tx, accountID string) ([]domain.InventoryItem, error) {
	rows, err := on(r.pool, tx).Query(ctx,
		`SELECT id, account_id, name, quantity, unit, buying_price::TEXT, selling_price::TEXT, threshold, created_at
		FROM inventory_items WHERE account_id = $1 ORDER BY name`, accountID)
	if err != nil {
		return nil, fmt.Errorf("list inventory items: %w", err)
	}
	defer rows.Close()

	items := []domain.InventoryItem{}
	for rows.Next() {
		item := domain.InventoryItem{}
		var buying, selling string
		if err := rows.Scan(&item.ID, &item.AccountID, &item.Name, &item.Quantity, &item.Unit,
			&buying, &selling, &item.Threshold, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan inventory row: %w", err)
		}
		if item.BuyingPrice, err = parseMoney(buying); err != nil {
			return nil, err
		}
		if item.SellingPrice, err = parseMoney(selling); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate inventory rows: %w", err)
	}
	return items, nil
}

// ---- Debtors / creditors ----

func (r *RecordsRepo) CreateContact(ctx context.Context, tx pgx.Tx, c *domain.Contact) error {
	query := `INSERT INTO contacts (id, account_id, type, name, phone, amount, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := tx.Exec(ctx, query,
		c.ID, c.AccountID, c.Type, c.Name, c.Phone, c.Amount.String(), c.Description, c.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert contact: %w", err)
	}
	return nil
}

func (r *RecordsRepo) ListContacts(ctx context.Context, accountID string, contactType domain.ContactType) ([]domain.Contact, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, account_id, type, name, phone, amount::TEXT, description, created_at
		FROM contacts WHERE account_id = $1 AND type = $2 ORDER BY created_at DESC`, accountID, contactType)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	defer rows.Close()

	contacts := []domain.Contact{}
	for rows.Next() {
		c := domain.Contact{}
		var amount string
		if err := rows.Scan(&c.ID, &c.AccountID, &c.Type, &c.Name, &c.Phone, &amount, &c.Description, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan contact row: %w", err)
		}
		if c.Amount, err = parseMoney(amount); err != nil {
			return nil, err
		}
		contacts = append(contacts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate contact rows: %w", err)
	}
	return contacts, nil
}

// ---- Receipts / payments ----

func (r *RecordsRepo) CreateCashflow(ctx context.Context, tx pgx.Tx, cf *domain.Cashflow) error {
	query := `INSERT INTO cashflows (id, account_id, type, party_name, amount, method, category, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := tx.Exec(ctx, query,
		cf.ID, cf.AccountID, cf.Type, cf.PartyName, cf.Amount.String(),
		cf.Method, cf.Category, cf.Description, cf.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert cashflow: %w", err)
	}
	return nil
}

func (r *RecordsRepo) ListCashflows(ctx context.Context, filter domain.CashflowFilter) ([]domain.Cashflow, error) {
	where, args := cashflowWhere(filter)

	rows, err := r.pool.Query(ctx,
		`SELECT id, account_id, type, party_name, amount::TEXT, method, category, description, created_at
		FROM cashflows `+where+` ORDER BY created_at DESC`, args...)
	if err != nil {
		return nil, fmt.Errorf("list cashflows: %w", err)
	}
	defer rows.Close()

	cashflows := []domain.Cashflow{}
	for rows.Next() {
		cf := domain.Cashflow{}
		var amount string
		if err := rows.Scan(&cf.ID, &cf.AccountID, &cf.Type, &cf.PartyName, &amount,
			&cf.Method, &cf.Category, &cf.Description, &cf.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan cashflow row: %w", err)
		}
		if cf.Amount, err = parseMoney(amount); err != nil {
			return nil, err
		}
		cashflows = append(cashflows, cf)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate cashflow rows: %w", err)
	}
	return cashflows, nil
}

func (r *RecordsRepo) SumCashflows(ctx context.Context, tx pgx.Tx, filter domain.CashflowFilter) (*domain.CashflowTotals, error) {
	where, args := cashflowWhere(filter)

	query := `SELECT
		COALESCE(SUM(amount) FILTER (WHERE type = 'receipt'), 0)::TEXT,
		COALESCE(SUM(amount) FILTER (WHERE type = 'payment'), 0)::TEXT,
		COUNT(*) FILTER (WHERE type = 'receipt'),
		COUNT(*) FILTER (WHERE type = 'payment')
		FROM cashflows ` + where

	totals := &domain.CashflowTotals{}
	var receipts, payments string
	err := on(r.pool, tx).QueryRow(ctx, query, args...).Scan(&receipts, &payments, &totals.ReceiptCount, &totals.PaymentCount)
	if err != nil {
		return nil, fmt.Errorf("sum cashflows: %w", err)
	}
	if totals.Receipts, err = parseMoney(receipts); err != nil {
		return nil, err
	}
	if totals.Payments, err = parseMoney(payments); err != nil {
		return nil, err
	}
	return totals, nil
}

func cashflowWhere(filter domain.CashflowFilter) (string, []any) {
	conditions := []string{"account_id = $1"}
	args := []any{filter.AccountID}
	argIdx := 2

	if filter.Type != nil {
		conditions = append(conditions, fmt.Sprintf("type = $%d", argIdx))
		args = append(args, *filter.Type)
		argIdx++
	}
	if filter.From != nil {
		conditions = append(conditions, fmt.Sprintf("created_at >= $%d", argIdx))
		args = append(args, *filter.From)
		argIdx++
	}
	if filter.To != nil {
		conditions = append(conditions, fmt.Sprintf("created_at < $%d", argIdx))
		args = append(args, *filter.To)
	}
	return "WHERE " + strings.Join(conditions, " AND "), args
}

// ---- Feedback ----

func (r *RecordsRepo) CreateFeedback(ctx context.Context, tx pgx.Tx, f *domain.Feedback) error {
	_, err := tx.Exec(ctx,
		`INSERT INTO feedback (id, account_id, rating, comment, created_at) VALUES ($1, $2, $3, $4, $5)`,
		f.ID, f.AccountID, f.Rating, f.Comment, f.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert feedback: %w", err)
	}
	return nil
}

// DeleteByAccount removes every bookkeeping record of the account.
func (r *RecordsRepo) DeleteByAccount(ctx context.Context, tx pgx.Tx, accountID string) error {
	for _, table := range []string{"invoices", "inventory_items", "contacts", "cashflows", "feedback"} {
		if _, err := tx.Exec(ctx, "DELETE FROM "+table+" WHERE account_id = $1", accountID); err != nil {
			return fmt.Errorf("delete %s: %w", table, err)
		}
	}
	return nil
}

// ---- Edits ----

func (r *RecordsRepo) UpdateInventoryItem(ctx context.Context, tx pgx.Tx, accountID string, id uuid.UUID, update domain.InventoryUpdate) (*domain.InventoryItem, error) {
	query := `UPDATE inventory_items SET
		name = COALESCE($1, name),
		quantity = COALESCE($2, quantity),
		unit = COALESCE($3, unit),
		buying_price = COALESCE($4::NUMERIC, buying_price),
		selling_price = COALESCE($5::NUMERIC, selling_price),
		threshold = COALESCE($6, threshold)
		WHERE id = $7 AND account_id = $8
		RETURNING id, account_id, name, quantity, unit, buying_price::TEXT, selling_price::TEXT, threshold, created_at`

	item := &domain.InventoryItem{}
	var buying, selling string
	err := tx.QueryRow(ctx, query,
		update.Name, update.Quantity, update.Unit, moneyArg(update.BuyingPrice), moneyArg(update.SellingPrice),
		update.Threshold, id, accountID,
	).Scan(&item.ID, &item.AccountID, &item.Name, &item.Quantity, &item.Unit,
		&buying, &selling, &item.Threshold, &item.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("update inventory item %s: %w", id, domain.ErrRecordNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("update inventory item: %w", err)
	}
	if item.BuyingPrice, err = parseMoney(buying); err != nil {
		return nil, err
	}
	if item.SellingPrice, err = parseMoney(selling); err != nil {
		return nil, err
	}
	return item, nil
}

func (r *RecordsRepo) UpdateContact(ctx context.Context, tx pgx.Tx, accountID string, contactType domain.ContactType, id uuid.UUID, update domain.ContactUpdate) (*domain.Contact, error) {
	query := `UPDATE contacts SET
		name = COALESCE($1, name),
		phone = COALESCE($2, phone),
		amount = COALESCE($3::NUMERIC, amount),
		description = COALESCE($4, description)
		WHERE id = $5 AND account_id = $6 AND type = $7
		RETURNING id, account_id, type, name, phone, amount::TEXT, description, created_at`

	c := &domain.Contact{}
	var amount string
	err := tx.QueryRow(ctx, query,
		update.Name, update.Phone, moneyArg(update.Amount), update.Description, id, accountID, contactType,
	).Scan(&c.ID, &c.AccountID, &c.Type, &c.Name, &c.Phone, &amount, &c.Description, &c.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("update %s %s: %w", contactType, id, domain.ErrRecordNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("update contact: %w", err)
	}
	if c.Amount, err = parseMoney(amount); err != nil {
		return nil, err
	}
	return c, nil
}

func (r *RecordsRepo) UpdateCashflow(ctx context.Context, tx pgx.Tx, accountID string, cashflowType domain.CashflowType, id uuid.UUID, update domain.CashflowUpdate) (*domain.Cashflow, error) {
	query := `UPDATE cashflows SET
		party_name = COALESCE($1, party_name),
		amount = COALESCE($2::NUMERIC, amount),
		method = COALESCE($3, method),
		category = COALESCE($4, category),
		description = COALESCE($5, description)
		WHERE id = $6 AND account_id = $7 AND type = $8
		RETURNING id, account_id, type, party_name, amount::TEXT, method, category, description, created_at`

	cf := &domain.Cashflow{}
	var amount string
	err := tx.QueryRow(ctx, query,
		update.PartyName, moneyArg(update.Amount), update.Method, update.Category, update.Description,
		id, accountID, cashflowType,
	).Scan(&cf.ID, &cf.AccountID, &cf.Type, &cf.PartyName, &amount,
		&cf.Method, &cf.Category, &cf.Description, &cf.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("update %s %s: %w", cashflowType, id, domain.ErrRecordNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("update cashflow: %w", err)
	}
	if cf.Amount, err = parseMoney(amount); err != nil {
		return nil, err
	}
	return cf, nil
}

// recordTables maps a record kind to its table and the type column value
// that narrows shared tables.
var recordTables = map[domain.RecordKind]struct {
	table    string
	typeName string
}{
	domain.RecordKindInvoice:   {"invoices", ""},
	domain.RecordKindInventory: {"inventory_items", ""},
	domain.RecordKindDebtor:    {"contacts", string(domain.ContactTypeDebtor)},
	domain.RecordKindCreditor:  {"contacts", string(domain.ContactTypeCreditor)},
	domain.RecordKindReceipt:   {"cashflows", string(domain.CashflowTypeReceipt)},
	domain.RecordKindPayment:   {"cashflows", string(domain.CashflowTypePayment)},
}

// DeleteRecord removes one record and returns its owner. An empty accountID
// matches any owner.
func (r *RecordsRepo) DeleteRecord(ctx context.Context, tx pgx.Tx, kind domain.RecordKind, id uuid.UUID, accountID string) (string, error) {
	target, ok := recordTables[kind]
	if !ok {
		return "", fmt.Errorf("delete record of kind %q: %w", kind, domain.ErrRecordNotFound)
	}

	query := "DELETE FROM " + target.table + " WHERE id = $1 AND ($2::TEXT = '' OR account_id = $2)"
	args := []any{id, accountID}
	if target.typeName != "" {
		query += " AND type = $3"
		args = append(args, target.typeName)
	}
	query += " RETURNING account_id"

	var owner string
	err := tx.QueryRow(ctx, query, args...).Scan(&owner)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", fmt.Errorf("delete %s %s: %w", kind, id, domain.ErrRecordNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("delete %s: %w", kind, err)
	}
	return owner, nil
}

func moneyArg(d *decimal.Decimal) *string {
	if d == nil {
		return nil
	}
	s := d.String()
	return &s
}

func parseMoney(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse money %q: %w", s, err)
	}
	return d, nil
}
