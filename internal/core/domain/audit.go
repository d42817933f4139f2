package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction represents the type of audited action.
type AuditAction string

const (
	AuditActionAdminCredit      AuditAction = "ADMIN_CREDIT"
	AuditActionSuspendAccount   AuditAction = "SUSPEND_ACCOUNT"
	AuditActionReinstateAccount AuditAction = "REINSTATE_ACCOUNT"
	AuditActionDeleteAccount    AuditAction = "DELETE_ACCOUNT"
	AuditActionRegister         AuditAction = "REGISTER"
	AuditActionLogin            AuditAction = "LOGIN"
	AuditActionUpdateProfile    AuditAction = "UPDATE_PROFILE"
	AuditActionDeleteRecord     AuditAction = "DELETE_RECORD"
)

// AuditLog records who performed a privileged or sensitive action.
// Append-only.
type AuditLog struct {
	ID              uuid.UUID              `json:"id"`
	AdminID         *string                `json:"admin_id,omitempty"`
	Action          AuditAction            `json:"action"`
	TargetAccountID string                 `json:"target_account_id,omitempty"`
	Details         map[string]interface{} `json:"details,omitempty"`
	IPAddress       string                 `json:"ip_address,omitempty"`
	CreatedAt       time.Time              `json:"timestamp"`
}

// NewCreditAudit builds the audit record paired with a privileged credit.
func NewCreditAudit(actorID string, entry LedgerEntry) *AuditLog {
	actor := actorID
	return &AuditLog{
		ID:              uuid.New(),
		AdminID:         &actor,
		Action:          AuditActionAdminCredit,
		TargetAccountID: entry.AccountID,
		Details: map[string]interface{}{
			"account_id": entry.AccountID,
			"amount":     entry.Amount,
			"kind":       string(entry.Kind),
			"reference":  entry.Reference,
			"entry_id":   entry.ID.String(),
		},
		CreatedAt: entry.CreatedAt,
	}
}
