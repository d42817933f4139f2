package handler

import (
	"coin-ledger/internal/adapter/http/dto"
	"coin-ledger/internal/adapter/http/middleware"
	"coin-ledger/internal/core/domain"
	"coin-ledger/internal/core/ports"
	"coin-ledger/pkg/apperror"
	"coin-ledger/pkg/response"

	"github.com/gin-gonic/gin"
)

// CoinHandler serves the caller's balance, history and purchases.
type CoinHandler struct {
	ledgerSvc    ports.LedgerService
	purchaseSvc  ports.PurchaseService
	historyLimit int
}

// NewCoinHandler creates a new CoinHandler. historyLimit caps the page size
// of the entry history.
func NewCoinHandler(ledgerSvc ports.LedgerService, purchaseSvc ports.PurchaseService, historyLimit int) *CoinHandler {
	if historyLimit < 1 {
		historyLimit = defaultPageSize
	}
	return &CoinHandler{ledgerSvc: ledgerSvc, purchaseSvc: purchaseSvc, historyLimit: historyLimit}
}

// GetBalance handles GET /api/v1/coins/balance.
func (h *CoinHandler) GetBalance(c *gin.Context) {
	accountID := middleware.AccountID(c)
	balance, err := h.ledgerSvc.GetBalance(c.Request.Context(), accountID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.BalanceResponse{AccountID: accountID, Balance: balance})
}

// History handles GET /api/v1/coins/history.
func (h *CoinHandler) History(c *gin.Context) {
	accountID := middleware.AccountID(c)
	page, pageSize := pagination(c, h.historyLimit)
	params := ports.LedgerListParams{AccountID: &accountID, Page: page, PageSize: pageSize}

	if k := c.Query("kind"); k != "" {
		kind := domain.EntryKind(k)
		if !kind.IsValid() {
			response.Error(c, apperror.ErrInvalidEntryKind())
			return
		}
		params.Kind = &kind
	}

	entries, total, err := h.ledgerSvc.ListEntries(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Paginated(c, entries, total, page, pageSize)
}

// Summary handles GET /api/v1/coins/summary.
func (h *CoinHandler) Summary(c *gin.Context) {
	accountID := middleware.AccountID(c)
	summary, err := h.ledgerSvc.Summary(c.Request.Context(), &accountID, c.DefaultQuery("period", "all"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, summary)
}

// Purchase handles POST /api/v1/coins/purchase.
func (h *CoinHandler) Purchase(c *gin.Context) {
	var req dto.PurchaseRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.purchaseSvc.Purchase(c.Request.Context(), ports.PurchaseRequest{
		AccountID:        middleware.AccountID(c),
		Amount:           req.Amount,
		PaymentMethod:    req.PaymentMethod,
		PaymentReference: req.PaymentReference,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	if result.Replayed {
		response.OK(c, result)
		return
	}
	response.Created(c, result)
}
