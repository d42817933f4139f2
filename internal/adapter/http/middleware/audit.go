package middleware

import (
	"net/http"
	"time"

	"coin-ledger/internal/core/domain"
	"coin-ledger/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuditLog creates an audit middleware for sensitive account actions that
// run outside a ledger transaction. Admin actions are audited by the admin
// service in their own transaction and are not mapped here.
func AuditLog(auditSvc ports.AuditService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Only audit successful write operations (status 2xx)
		if c.Writer.Status() < 200 || c.Writer.Status() >= 300 {
			return
		}

		action := mapPathToAction(c.FullPath(), c.Request.Method)
		if action == "" {
			return
		}

		target := AccountID(c)
		if target == "" {
			// register and login run before authentication
			target = c.GetString(CtxAuditSubject)
		}

		auditSvc.Log(c.Request.Context(), &domain.AuditLog{
			ID:              uuid.New(),
			Action:          action,
			TargetAccountID: target,
			Details: map[string]interface{}{
				"method": c.Request.Method,
				"path":   c.Request.URL.Path,
				"status": c.Writer.Status(),
			},
			IPAddress: c.ClientIP(),
			CreatedAt: time.Now().UTC(),
		})
	}
}

// CtxAuditSubject lets unauthenticated handlers name the account they acted on.
const CtxAuditSubject = "audit_subject"

func mapPathToAction(path, method string) domain.AuditAction {
	switch {
	case path == "/api/v1/auth/register" && method == http.MethodPost:
		return domain.AuditActionRegister
	case path == "/api/v1/auth/login" && method == http.MethodPost:
		return domain.AuditActionLogin
	case path == "/api/v1/account" && method == http.MethodPut:
		return domain.AuditActionUpdateProfile
	}
	return ""
}
