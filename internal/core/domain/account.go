package domain

import (
	"strings"
	"time"
)

// Role controls what an account may do beyond its own bookkeeping.
type Role string

const (
	RoleTrader Role = "trader"
	RoleAdmin  Role = "admin"
)

// Account is a registered user together with its coin balance.
// CoinBalance is only ever changed together with a LedgerEntry.
type Account struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	DisplayName  string    `json:"display_name"`
	Phone        string    `json:"phone,omitempty"`
	BusinessName string    `json:"business_name,omitempty"`
	Role         Role      `json:"role"`
	CoinBalance  int64     `json:"coin_balance"`
	Suspended    bool      `json:"suspended"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// IsAdmin returns true if the account holds the administrative capability.
func (a *Account) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// ProfileUpdate carries the editable profile fields; nil means unchanged.
type ProfileUpdate struct {
	DisplayName  *string
	Phone        *string
	BusinessName *string
}

// Apply copies the set fields onto the account.
func (p ProfileUpdate) Apply(a *Account) {
	if p.DisplayName != nil {
		a.DisplayName = *p.DisplayName
	}
	if p.Phone != nil {
		a.Phone = *p.Phone
	}
	if p.BusinessName != nil {
		a.BusinessName = *p.BusinessName
	}
}

// IsEmpty reports whether the update changes nothing.
func (p ProfileUpdate) IsEmpty() bool {
	return p.DisplayName == nil && p.Phone == nil && p.BusinessName == nil
}

// NormalizeAccountID turns a username into the account key.
func NormalizeAccountID(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}
