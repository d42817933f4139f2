package handler

import (
	"coin-ledger/internal/adapter/http/dto"
	"coin-ledger/internal/adapter/http/middleware"
	"coin-ledger/internal/core/domain"
	"coin-ledger/internal/core/ports"
	"coin-ledger/pkg/response"

	"github.com/gin-gonic/gin"
)

// AccountHandler serves the caller's own profile.
type AccountHandler struct {
	accountSvc ports.AccountService
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(accountSvc ports.AccountService) *AccountHandler {
	return &AccountHandler{accountSvc: accountSvc}
}

// GetProfile handles GET /api/v1/account.
func (h *AccountHandler) GetProfile(c *gin.Context) {
	account, err := h.accountSvc.GetProfile(c.Request.Context(), middleware.AccountID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, account)
}

// UpdateProfile handles PUT /api/v1/account. Metered.
func (h *AccountHandler) UpdateProfile(c *gin.Context) {
	var req dto.UpdateProfileRequest
	if !bindJSON(c, &req) {
		return
	}

	account, charge, err := h.accountSvc.UpdateProfile(c.Request.Context(), middleware.AccountID(c), domain.ProfileUpdate{
		DisplayName:  req.DisplayName,
		Phone:        req.Phone,
		BusinessName: req.BusinessName,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, metered(account, charge))
}
