package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterRequest is the request body for account registration.
type RegisterRequest struct {
	Username     string `json:"username" binding:"required,min=3,max=50,safe_id"`
	Email        string `json:"email" binding:"required,email,max=254"`
	Password     string `json:"password" binding:"required,min=8,max=128" sanitize:"-"`
	DisplayName  string `json:"display_name" binding:"max=100"`
	BusinessName string `json:"business_name" binding:"max=100"`
}

// LoginRequest is the request body for login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required" sanitize:"-"`
}

// LoginResponse is the response body for successful login.
type LoginResponse struct {
	Token  string `json:"token"`
	Expiry int64  `json:"expiry"` // Unix timestamp
}

// PurchaseRequest is the request body for buying a coin package.
type PurchaseRequest struct {
	Amount           int64  `json:"amount" binding:"required,gt=0"`
	PaymentMethod    string `json:"payment_method" binding:"required,oneof=card bank"`
	PaymentReference string `json:"payment_reference" binding:"omitempty,max=100,safe_id"`
}

// BalanceResponse is the response for a balance query.
type BalanceResponse struct {
	AccountID string `json:"account_id"`
	Balance   int64  `json:"balance"`
}

// AdminCreditRequest is the request body for a privileged coin credit.
type AdminCreditRequest struct {
	AccountID string `json:"account_id" binding:"required,min=3,max=50"`
	Amount    int64  `json:"amount" binding:"required,gt=0"`
	Kind      string `json:"kind" binding:"omitempty,oneof=admin_credit credit"`
	Reference string `json:"reference" binding:"omitempty,max=100,safe_id"`
}

// SuspendRequest toggles an account's suspension.
type SuspendRequest struct {
	Suspended *bool `json:"suspended" binding:"required"`
}

// UpdateProfileRequest carries the editable profile fields. Absent fields
// are left unchanged.
type UpdateProfileRequest struct {
	DisplayName  *string `json:"display_name" binding:"omitempty,min=1,max=100"`
	Phone        *string `json:"phone" binding:"omitempty,phone"`
	BusinessName *string `json:"business_name" binding:"omitempty,max=100"`
}

// CreateInvoiceRequest is the request body for a new invoice.
type CreateInvoiceRequest struct {
	CustomerName string          `json:"customer_name" binding:"required,max=100"`
	Description  string          `json:"description" binding:"max=500"`
	Amount       decimal.Decimal `json:"amount"`
	DueDate      *time.Time      `json:"due_date"`
}

// AddInventoryRequest is the request body for a new stock item.
type AddInventoryRequest struct {
	Name         string          `json:"name" binding:"required,max=100"`
	Quantity     int64           `json:"quantity" binding:"gte=0"`
	Unit         string          `json:"unit" binding:"max=20"`
	BuyingPrice  decimal.Decimal `json:"buying_price"`
	SellingPrice decimal.Decimal `json:"selling_price"`
	Threshold    int64           `json:"threshold" binding:"gte=0"`
}

// ContactRequest is the request body for a new debtor or creditor.
type ContactRequest struct {
	Name        string          `json:"name" binding:"required,max=100"`
	Phone       string          `json:"phone" binding:"omitempty,phone"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description" binding:"max=500"`
}

// CashflowRequest is the request body for a receipt or payment.
type CashflowRequest struct {
	PartyName   string          `json:"party_name" binding:"required,max=100"`
	Amount      decimal.Decimal `json:"amount"`
	Method      string          `json:"method" binding:"omitempty,oneof=cash card bank"`
	Category    string          `json:"category" binding:"max=50"`
	Description string          `json:"description" binding:"max=500"`
}

// UpdateInventoryRequest edits a stock item. Absent fields are left unchanged.
type UpdateInventoryRequest struct {
	Name         *string          `json:"name" binding:"omitempty,min=1,max=100"`
	Quantity     *int64           `json:"quantity" binding:"omitempty,gte=0"`
	Unit         *string          `json:"unit" binding:"omitempty,max=20"`
	BuyingPrice  *decimal.Decimal `json:"buying_price"`
	SellingPrice *decimal.Decimal `json:"selling_price"`
	Threshold    *int64           `json:"threshold" binding:"omitempty,gte=0"`
}

// UpdateContactRequest edits a debtor or creditor.
type UpdateContactRequest struct {
	Name        *string          `json:"name" binding:"omitempty,min=1,max=100"`
	Phone       *string          `json:"phone" binding:"omitempty,phone"`
	Amount      *decimal.Decimal `json:"amount"`
	Description *string          `json:"description" binding:"omitempty,max=500"`
}

// UpdateCashflowRequest edits a receipt or payment.
type UpdateCashflowRequest struct {
	PartyName   *string          `json:"party_name" binding:"omitempty,min=1,max=100"`
	Amount      *decimal.Decimal `json:"amount"`
	Method      *string          `json:"method" binding:"omitempty,oneof=cash card bank"`
	Category    *string          `json:"category" binding:"omitempty,max=50"`
	Description *string          `json:"description" binding:"omitempty,max=500"`
}

// FeedbackRequest is the request body for service feedback.
type FeedbackRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment" binding:"max=1000"`
}

// MeteredResponse wraps the result of a metered action with its charge.
type MeteredResponse struct {
	Result       interface{} `json:"result"`
	CoinsCharged int64       `json:"coins_charged"`
	Balance      int64       `json:"balance"`
}
