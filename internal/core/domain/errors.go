package domain

import "errors"

// Sentinel errors returned by the storage adapters.
var (
	ErrAccountNotFound     = errors.New("account not found")
	ErrAccountExists       = errors.New("account already exists")
	ErrInsufficientBalance = errors.New("insufficient coin balance")
	ErrDuplicateReference  = errors.New("duplicate ledger reference")
	ErrInvalidAmount       = errors.New("invalid coin amount")
	ErrInvalidEntryKind    = errors.New("invalid ledger entry kind")
	ErrRecordNotFound      = errors.New("record not found")
)
