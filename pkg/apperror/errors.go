package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// Is reports whether err carries an AppError with the given code.
func Is(err error, code string) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// Error codes of the coin ledger.
const (
	CodeInsufficientBalance = "COIN_001"
	CodeAccountNotFound     = "COIN_002"
	CodeLedgerWriteFailure  = "COIN_003"
	CodeInvalidAmount       = "COIN_004"
	CodeInvalidEntryKind    = "COIN_005"
	CodeDuplicateReference  = "COIN_006"

	CodeInvalidCredentials = "AUTH_001"
	CodeUsernameExists     = "AUTH_002"
	CodeInvalidToken       = "AUTH_003"
	CodeForbidden          = "AUTH_004"
	CodeAccountSuspended   = "AUTH_005"
	CodeProtectedAccount   = "AUTH_006"

	CodeValidation      = "REQ_001"
	CodeNotFound        = "REQ_002"
	CodePayloadTooLarge = "REQ_003"

	CodeRateLimitExceeded = "RATE_001"

	CodeInternal = "SYS_001"
)

// ---- Coin Ledger (COIN) ----

func ErrInsufficientBalance() *AppError {
	return New(CodeInsufficientBalance, "Insufficient coin balance, please purchase more coins", http.StatusPaymentRequired)
}

func ErrAccountNotFound() *AppError {
	return New(CodeAccountNotFound, "Account not found", http.StatusNotFound)
}

// ErrLedgerWriteFailure hides the store failure behind a generic message.
func ErrLedgerWriteFailure(err error) *AppError {
	return Wrap(CodeLedgerWriteFailure, "Something went wrong, please try again", http.StatusInternalServerError, err)
}

func ErrInvalidAmount() *AppError {
	return New(CodeInvalidAmount, "Invalid coin amount", http.StatusBadRequest)
}

func ErrInvalidEntryKind() *AppError {
	return New(CodeInvalidEntryKind, "Invalid ledger entry kind", http.StatusBadRequest)
}

func ErrDuplicateReference() *AppError {
	return New(CodeDuplicateReference, "Reference already used", http.StatusConflict)
}

// ---- Authentication & Authorization (AUTH) ----

func ErrInvalidCredentials() *AppError {
	return New(CodeInvalidCredentials, "Invalid credentials", http.StatusUnauthorized)
}

func ErrUsernameExists() *AppError {
	return New(CodeUsernameExists, "Username already exists", http.StatusConflict)
}

func ErrInvalidToken() *AppError {
	return New(CodeInvalidToken, "Invalid or expired token", http.StatusUnauthorized)
}

func ErrForbidden() *AppError {
	return New(CodeForbidden, "Access denied", http.StatusForbidden)
}

func ErrAccountSuspended() *AppError {
	return New(CodeAccountSuspended, "Account is suspended", http.StatusForbidden)
}

// ErrProtectedAccount refuses suspending or deleting an administrator.
func ErrProtectedAccount() *AppError {
	return New(CodeProtectedAccount, "Administrator accounts cannot be suspended or deleted", http.StatusForbidden)
}

// ---- Request (REQ) ----

func ErrNotFound(entity string) *AppError {
	return New(CodeNotFound, fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

func ErrPayloadTooLarge() *AppError {
	return New(CodePayloadTooLarge, "Request body too large", http.StatusRequestEntityTooLarge)
}

// Validation returns a REQ_001 validation error.
func Validation(message string) *AppError {
	return New(CodeValidation, message, http.StatusBadRequest)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New(CodeRateLimitExceeded, "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

// InternalError is the unexpected channel: details stay in the log, the
// client sees a generic message.
func InternalError(err error) *AppError {
	return Wrap(CodeInternal, "Internal server error", http.StatusInternalServerError, err)
}
