package handler

import (
	"strconv"

	"coin-ledger/internal/adapter/http/dto"
	"coin-ledger/internal/adapter/http/middleware"
	"coin-ledger/internal/core/domain"
	"coin-ledger/internal/core/ports"
	"coin-ledger/pkg/apperror"
	"coin-ledger/pkg/response"

	"github.com/gin-gonic/gin"
)

// AdminHandler serves the admin override channel and account administration.
type AdminHandler struct {
	adminSvc ports.AdminService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(adminSvc ports.AdminService) *AdminHandler {
	return &AdminHandler{adminSvc: adminSvc}
}

// Credit handles POST /api/v1/admin/credits.
func (h *AdminHandler) Credit(c *gin.Context) {
	var req dto.AdminCreditRequest
	if !bindJSON(c, &req) {
		return
	}

	applied, err := h.adminSvc.CreditCoins(c.Request.Context(), ports.AdminCreditRequest{
		ActorID:   middleware.AccountID(c),
		AccountID: req.AccountID,
		Amount:    req.Amount,
		Kind:      domain.EntryKind(req.Kind),
		Reference: req.Reference,
		IPAddress: c.ClientIP(),
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, applied)
}

// ListAccounts handles GET /api/v1/admin/accounts?role=&suspended=.
func (h *AdminHandler) ListAccounts(c *gin.Context) {
	page, pageSize := pagination(c, 100)
	params := ports.AccountListParams{Page: page, PageSize: pageSize}

	if r := c.Query("role"); r != "" {
		role := domain.Role(r)
		params.Role = &role
	}
	if s := c.Query("suspended"); s != "" {
		suspended, err := strconv.ParseBool(s)
		if err != nil {
			response.Error(c, apperror.Validation("suspended must be true or false"))
			return
		}
		params.Suspended = &suspended
	}

	accounts, total, err := h.adminSvc.ListAccounts(c.Request.Context(), middleware.AccountID(c), params)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Paginated(c, accounts, total, page, pageSize)
}

// Suspend handles PUT /api/v1/admin/accounts/:id/suspend.
func (h *AdminHandler) Suspend(c *gin.Context) {
	var req dto.SuspendRequest
	if !bindJSON(c, &req) {
		return
	}

	err := h.adminSvc.SetSuspended(c.Request.Context(), h.actionRequest(c), *req.Suspended)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"account_id": domain.NormalizeAccountID(c.Param("id")), "suspended": *req.Suspended})
}

// Delete handles DELETE /api/v1/admin/accounts/:id.
func (h *AdminHandler) Delete(c *gin.Context) {
	if err := h.adminSvc.DeleteAccount(c.Request.Context(), h.actionRequest(c)); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"account_id": domain.NormalizeAccountID(c.Param("id")), "deleted": true})
}

// Reconcile handles GET /api/v1/admin/accounts/:id/reconcile.
func (h *AdminHandler) Reconcile(c *gin.Context) {
	rec, err := h.adminSvc.Reconcile(c.Request.Context(), middleware.AccountID(c), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, rec)
}

// AuditLogs handles GET /api/v1/admin/audit-logs?action=&account_id=.
func (h *AdminHandler) AuditLogs(c *gin.Context) {
	page, pageSize := pagination(c, 100)
	params := ports.AuditListParams{Page: page, PageSize: pageSize}

	if a := c.Query("action"); a != "" {
		action := domain.AuditAction(a)
		params.Action = &action
	}
	if id := c.Query("account_id"); id != "" {
		target := domain.NormalizeAccountID(id)
		params.TargetAccountID = &target
	}

	logs, total, err := h.adminSvc.ListAuditLogs(c.Request.Context(), middleware.AccountID(c), params)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Paginated(c, logs, total, page, pageSize)
}

// Ledger handles GET /api/v1/admin/ledger?account_id=&kind=. Without an
// account filter it lists the whole ledger.
func (h *AdminHandler) Ledger(c *gin.Context) {
	page, pageSize := pagination(c, 100)
	params := ports.LedgerListParams{Page: page, PageSize: pageSize}

	if id := c.Query("account_id"); id != "" {
		accountID := domain.NormalizeAccountID(id)
		params.AccountID = &accountID
	}
	if k := c.Query("kind"); k != "" {
		kind := domain.EntryKind(k)
		if !kind.IsValid() {
			response.Error(c, apperror.ErrInvalidEntryKind())
			return
		}
		params.Kind = &kind
	}

	entries, total, err := h.adminSvc.ListLedger(c.Request.Context(), middleware.AccountID(c), params)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Paginated(c, entries, total, page, pageSize)
}

// DeleteRecord handles DELETE /api/v1/admin/records/:kind/:id.
func (h *AdminHandler) DeleteRecord(c *gin.Context) {
	id, ok := recordID(c)
	if !ok {
		return
	}
	kind := domain.RecordKind(c.Param("kind"))

	err := h.adminSvc.DeleteRecord(c.Request.Context(), ports.RecordActionRequest{
		ActorID:   middleware.AccountID(c),
		Kind:      kind,
		RecordID:  id,
		IPAddress: c.ClientIP(),
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"id": id, "kind": kind, "deleted": true})
}

// Dashboard handles GET /api/v1/admin/dashboard.
func (h *AdminHandler) Dashboard(c *gin.Context) {
	dash, err := h.adminSvc.Dashboard(c.Request.Context(), middleware.AccountID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dash)
}

func (h *AdminHandler) actionRequest(c *gin.Context) ports.AccountActionRequest {
	return ports.AccountActionRequest{
		ActorID:   middleware.AccountID(c),
		AccountID: c.Param("id"),
		IPAddress: c.ClientIP(),
	}
}
