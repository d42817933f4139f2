package handler

import (
	"coin-ledger/internal/adapter/http/middleware"
	"coin-ledger/internal/core/ports"
	"coin-ledger/pkg/response"

	"github.com/gin-gonic/gin"
)

// ReportHandler serves the metered reports.
type ReportHandler struct {
	reportSvc ports.ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportSvc ports.ReportService) *ReportHandler {
	return &ReportHandler{reportSvc: reportSvc}
}

// ProfitLoss handles GET /api/v1/reports/profit-loss?from=&to=.
func (h *ReportHandler) ProfitLoss(c *gin.Context) {
	from, err := timeQuery(c, "from")
	if err != nil {
		response.Error(c, err)
		return
	}
	to, err := timeQuery(c, "to")
	if err != nil {
		response.Error(c, err)
		return
	}

	report, charge, err := h.reportSvc.ProfitLoss(c.Request.Context(), middleware.AccountID(c), from, to)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, metered(report, charge))
}

// Inventory handles GET /api/v1/reports/inventory.
func (h *ReportHandler) Inventory(c *gin.Context) {
	report, charge, err := h.reportSvc.InventoryValuation(c.Request.Context(), middleware.AccountID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, metered(report, charge))
}
