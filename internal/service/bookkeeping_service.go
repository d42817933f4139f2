package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"coin-ledger/internal/core/domain"
	"coin-ledger/internal/core/ports"
	"coin-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// BookkeepingServiceImpl implements ports.BookkeepingService. Every create
// runs as a metered action: the record is written in the same transaction
// as its coin debit. Edits and deletes cost nothing.
type BookkeepingServiceImpl struct {
	records    ports.RecordsRepository
	metering   ports.MeteringService
	transactor ports.DBTransactor
	now        func() time.Time
}

// NewBookkeepingService creates a new BookkeepingServiceImpl.
func NewBookkeepingService(records ports.RecordsRepository, metering ports.MeteringService, transactor ports.DBTransactor) *BookkeepingServiceImpl {
	return &BookkeepingServiceImpl{
		records:    records,
		metering:   metering,
		transactor: transactor,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// ==================== Invoices ====================

func (s *BookkeepingServiceImpl) CreateInvoice(ctx context.Context, req ports.CreateInvoiceRequest) (*domain.Invoice, *ports.MeteredResult, error) {
	name := strings.TrimSpace(req.CustomerName)
	if name == "" {
		return nil, nil, apperror.Validation("customer name is required")
	}
	if !req.Amount.IsPositive() {
		return nil, nil, apperror.Validation("invoice amount must be greater than zero")
	}

	invoice := &domain.Invoice{
		ID:           uuid.New(),
		AccountID:    req.AccountID,
		CustomerName: name,
		Description:  req.Description,
		Amount:       req.Amount,
		Status:       domain.InvoiceStatusPending,
		DueDate:      req.DueDate,
		CreatedAt:    s.now(),
	}
	charge, err := s.metering.Run(ctx, ports.MeteredRequest{AccountID: req.AccountID, Action: domain.ActionCreateInvoice},
		func(ctx context.Context, tx pgx.Tx) error {
			number, err := s.records.NextInvoiceNumber(ctx, tx, req.AccountID)
			if err != nil {
				return fmt.Errorf("next invoice number: %w", err)
			}
			invoice.Number = "INV-" + number
			return s.records.CreateInvoice(ctx, tx, invoice)
		})
	if err != nil {
		return nil, nil, err
	}
	return invoice, charge, nil
}

func (s *BookkeepingServiceImpl) ListInvoices(ctx context.Context, accountID string, page, pageSize int) ([]domain.Invoice, int64, error) {
	invoices, total, err := s.records.ListInvoices(ctx, accountID, page, pageSize)
	if err != nil {
		return nil, 0, apperror.InternalError(fmt.Errorf("list invoices: %w", err))
	}
	return invoices, total, nil
}

// ==================== Inventory ====================

func (s *BookkeepingServiceImpl) AddInventoryItem(ctx context.Context, req ports.AddInventoryRequest) (*domain.InventoryItem, *ports.MeteredResult, error) {
	name := strings.TrimSpace(req.Name)
	switch {
	case name == "":
		return nil, nil, apperror.Validation("item name is required")
	case req.Quantity < 0 || req.Threshold < 0:
		return nil, nil, apperror.Validation("quantity and threshold must not be negative")
	case req.BuyingPrice.IsNegative() || req.SellingPrice.IsNegative():
		return nil, nil, apperror.Validation("prices must not be negative")
	}

	item := &domain.InventoryItem{
		ID:           uuid.New(),
		AccountID:    req.AccountID,
		Name:         name,
		Quantity:     req.Quantity,
		Unit:         req.Unit,
		BuyingPrice:  req.BuyingPrice,
		SellingPrice: req.SellingPrice,
		Threshold:    req.Threshold,
		CreatedAt:    s.now(),
	}
	charge, err := s.metering.Run(ctx, ports.MeteredRequest{AccountID: req.AccountID, Action: domain.ActionAddInventory},
		func(ctx context.Context, tx pgx.Tx) error {
			return s.records.CreateInventoryItem(ctx, tx, item)
		})
	if err != nil {
		return nil, nil, err
	}
	return item, charge, nil
}

func (s *BookkeepingServiceImpl) ListInventory(ctx context.Context, accountID string, lowStockOnly bool) ([]domain.InventoryItem, error) {
	items, err := s.records.ListInventoryItems(ctx, nil, accountID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list inventory: %w", err))
	}
	if !lowStockOnly {
		return items, nil
	}
	low := make([]domain.InventoryItem, 0, len(items))
	for i := range items {
		if items[i].IsLowStock() {
			low = append(low, items[i])
		}
	}
	return low, nil
}

// ==================== Debtors & creditors ====================

func (s *BookkeepingServiceImpl) CreateContact(ctx context.Context, req ports.CreateContactRequest) (*domain.Contact, *ports.MeteredResult, error) {
	var action string
	switch req.Type {
	case domain.ContactTypeDebtor:
		action = domain.ActionCreateDebtor
	case domain.ContactTypeCreditor:
		action = domain.ActionCreateCreditor
	default:
		return nil, nil, apperror.Validation("contact type must be debtor or creditor")
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, nil, apperror.Validation("name is required")
	}
	if req.Amount.IsNegative() {
		return nil, nil, apperror.Validation("amount must not be negative")
	}

	contact := &domain.Contact{
		ID:          uuid.New(),
		AccountID:   req.AccountID,
		Type:        req.Type,
		Name:        name,
		Phone:       req.Phone,
		Amount:      req.Amount,
		Description: req.Description,
		CreatedAt:   s.now(),
	}
	charge, err := s.metering.Run(ctx, ports.MeteredRequest{AccountID: req.AccountID, Action: action},
		func(ctx context.Context, tx pgx.Tx) error {
			return s.records.CreateContact(ctx, tx, contact)
		})
	if err != nil {
		return nil, nil, err
	}
	return contact, charge, nil
}

func (s *BookkeepingServiceImpl) ListContacts(ctx context.Context, accountID string, contactType domain.ContactType) ([]domain.Contact, error) {
	if contactType != domain.ContactTypeDebtor && contactType != domain.ContactTypeCreditor {
		return nil, apperror.Validation("contact type must be debtor or creditor")
	}
	contacts, err := s.records.ListContacts(ctx, accountID, contactType)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list contacts: %w", err))
	}
	return contacts, nil
}

// ==================== Receipts & payments ====================

func (s *BookkeepingServiceImpl) RecordCashflow(ctx context.Context, req ports.RecordCashflowRequest) (*domain.Cashflow, *ports.MeteredResult, error) {
	var action string
	switch req.Type {
	case domain.CashflowTypeReceipt:
		action = domain.ActionAddReceipt
	case domain.CashflowTypePayment:
		action = domain.ActionAddPayment
	default:
		return nil, nil, apperror.Validation("cashflow type must be receipt or payment")
	}
	party := strings.TrimSpace(req.PartyName)
	if party == "" {
		return nil, nil, apperror.Validation("party name is required")
	}
	if !req.Amount.IsPositive() {
		return nil, nil, apperror.Validation("amount must be greater than zero")
	}

	cashflow := &domain.Cashflow{
		ID:          uuid.New(),
		AccountID:   req.AccountID,
		Type:        req.Type,
		PartyName:   party,
		Amount:      req.Amount,
		Method:      req.Method,
		Category:    req.Category,
		Description: req.Description,
		CreatedAt:   s.now(),
	}
	charge, err := s.metering.Run(ctx, ports.MeteredRequest{AccountID: req.AccountID, Action: action},
		func(ctx context.Context, tx pgx.Tx) error {
			return s.records.CreateCashflow(ctx, tx, cashflow)
		})
	if err != nil {
		return nil, nil, err
	}
	return cashflow, charge, nil
}

func (s *BookkeepingServiceImpl) ListCashflows(ctx context.Context, filter domain.CashflowFilter) ([]domain.Cashflow, error) {
	if filter.Type != nil && *filter.Type != domain.CashflowTypeReceipt && *filter.Type != domain.CashflowTypePayment {
		return nil, apperror.Validation("cashflow type must be receipt or payment")
	}
	cashflows, err := s.records.ListCashflows(ctx, filter)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list cashflows: %w", err))
	}
	return cashflows, nil
}

// ==================== Feedback ====================

func (s *BookkeepingServiceImpl) SubmitFeedback(ctx context.Context, req ports.SubmitFeedbackRequest) (*domain.Feedback, *ports.MeteredResult, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, nil, apperror.Validation("rating must be between 1 and 5")
	}

	feedback := &domain.Feedback{
		ID:        uuid.New(),
		AccountID: req.AccountID,
		Rating:    req.Rating,
		Comment:   strings.TrimSpace(req.Comment),
		CreatedAt: s.now(),
	}
	charge, err := s.metering.Run(ctx, ports.MeteredRequest{AccountID: req.AccountID, Action: domain.ActionSubmitFeedback},
		func(ctx context.Context, tx pgx.Tx) error {
			return s.records.CreateFeedback(ctx, tx, feedback)
		})
	if err != nil {
		return nil, nil, err
	}
	return feedback, charge, nil
}

// ==================== Edits & deletes ====================

func (s *BookkeepingServiceImpl) UpdateInventoryItem(ctx context.Context, accountID string, id uuid.UUID, update domain.InventoryUpdate) (*domain.InventoryItem, error) {
	if update.IsEmpty() {
		return nil, apperror.Validation("no fields to update")
	}
	if update.Name != nil {
		name := strings.TrimSpace(*update.Name)
		if name == "" {
			return nil, apperror.Validation("item name is required")
		}
		update.Name = &name
	}
	if negativeInt(update.Quantity) || negativeInt(update.Threshold) {
		return nil, apperror.Validation("quantity and threshold must not be negative")
	}
	if negativeMoney(update.BuyingPrice) || negativeMoney(update.SellingPrice) {
		return nil, apperror.Validation("prices must not be negative")
	}

	var item *domain.InventoryItem
	err := withTx(ctx, s.transactor, func(ctx context.Context, dbTx pgx.Tx) error {
		var err error
		item, err = s.records.UpdateInventoryItem(ctx, dbTx, accountID, id, update)
		return recordError(err)
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (s *BookkeepingServiceImpl) UpdateContact(ctx context.Context, accountID string, contactType domain.ContactType, id uuid.UUID, update domain.ContactUpdate) (*domain.Contact, error) {
	if contactType != domain.ContactTypeDebtor && contactType != domain.ContactTypeCreditor {
		return nil, apperror.Validation("contact type must be debtor or creditor")
	}
	if update.IsEmpty() {
		return nil, apperror.Validation("no fields to update")
	}
	if update.Name != nil {
		name := strings.TrimSpace(*update.Name)
		if name == "" {
			return nil, apperror.Validation("name is required")
		}
		update.Name = &name
	}
	if negativeMoney(update.Amount) {
		return nil, apperror.Validation("amount must not be negative")
	}

	var contact *domain.Contact
	err := withTx(ctx, s.transactor, func(ctx context.Context, dbTx pgx.Tx) error {
		var err error
		contact, err = s.records.UpdateContact(ctx, dbTx, accountID, contactType, id, update)
		return recordError(err)
	})
	if err != nil {
		return nil, err
	}
	return contact, nil
}

func (s *BookkeepingServiceImpl) UpdateCashflow(ctx context.Context, accountID string, cashflowType domain.CashflowType, id uuid.UUID, update domain.CashflowUpdate) (*domain.Cashflow, error) {
	if cashflowType != domain.CashflowTypeReceipt && cashflowType != domain.CashflowTypePayment {
		return nil, apperror.Validation("cashflow type must be receipt or payment")
	}
	if update.IsEmpty() {
		return nil, apperror.Validation("no fields to update")
	}
	if update.PartyName != nil {
		party := strings.TrimSpace(*update.PartyName)
		if party == "" {
			return nil, apperror.Validation("party name is required")
		}
		update.PartyName = &party
	}
	if update.Amount != nil && !update.Amount.IsPositive() {
		return nil, apperror.Validation("amount must be greater than zero")
	}

	var cashflow *domain.Cashflow
	err := withTx(ctx, s.transactor, func(ctx context.Context, dbTx pgx.Tx) error {
		var err error
		cashflow, err = s.records.UpdateCashflow(ctx, dbTx, accountID, cashflowType, id, update)
		return recordError(err)
	})
	if err != nil {
		return nil, err
	}
	return cashflow, nil
}

func (s *BookkeepingServiceImpl) DeleteRecord(ctx context.Context, accountID string, kind domain.RecordKind, id uuid.UUID) error {
	if !kind.IsValid() {
		return apperror.Validation("unknown record kind")
	}
	return withTx(ctx, s.transactor, func(ctx context.Context, dbTx pgx.Tx) error {
		_, err := s.records.DeleteRecord(ctx, dbTx, kind, id, accountID)
		return recordError(err)
	})
}

func recordError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrRecordNotFound):
		return apperror.ErrNotFound("Record")
	default:
		return apperror.InternalError(err)
	}
}

func negativeInt(v *int64) bool { return v != nil && *v < 0 }

func negativeMoney(v *decimal.Decimal) bool { return v != nil && v.IsNegative() }
