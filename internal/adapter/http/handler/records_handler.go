package handler

import (
	"coin-ledger/internal/adapter/http/dto"
	"coin-ledger/internal/adapter/http/middleware"
	"coin-ledger/internal/core/domain"
	"coin-ledger/internal/core/ports"
	"coin-ledger/pkg/response"

	"github.com/gin-gonic/gin"
)

// RecordsHandler serves the bookkeeping records. Every create is metered;
// edits and deletes are free.
type RecordsHandler struct {
	bookSvc ports.BookkeepingService
}

// NewRecordsHandler creates a new RecordsHandler.
func NewRecordsHandler(bookSvc ports.BookkeepingService) *RecordsHandler {
	return &RecordsHandler{bookSvc: bookSvc}
}

// CreateInvoice handles POST /api/v1/invoices.
func (h *RecordsHandler) CreateInvoice(c *gin.Context) {
	var req dto.CreateInvoiceRequest
	if !bindJSON(c, &req) {
		return
	}

	invoice, charge, err := h.bookSvc.CreateInvoice(c.Request.Context(), ports.CreateInvoiceRequest{
		AccountID:    middleware.AccountID(c),
		CustomerName: req.CustomerName,
		Description:  req.Description,
		Amount:       req.Amount,
		DueDate:      req.DueDate,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, metered(invoice, charge))
}

// ListInvoices handles GET /api/v1/invoices.
func (h *RecordsHandler) ListInvoices(c *gin.Context) {
	page, pageSize := pagination(c, 100)
	invoices, total, err := h.bookSvc.ListInvoices(c.Request.Context(), middleware.AccountID(c), page, pageSize)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Paginated(c, invoices, total, page, pageSize)
}

// AddInventory handles POST /api/v1/inventory.
func (h *RecordsHandler) AddInventory(c *gin.Context) {
	var req dto.AddInventoryRequest
	if !bindJSON(c, &req) {
		return
	}

	item, charge, err := h.bookSvc.AddInventoryItem(c.Request.Context(), ports.AddInventoryRequest{
		AccountID:    middleware.AccountID(c),
		Name:         req.Name,
		Quantity:     req.Quantity,
		Unit:         req.Unit,
		BuyingPrice:  req.BuyingPrice,
		SellingPrice: req.SellingPrice,
		Threshold:    req.Threshold,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, metered(item, charge))
}

// ListInventory handles GET /api/v1/inventory?low_stock=true.
func (h *RecordsHandler) ListInventory(c *gin.Context) {
	items, err := h.bookSvc.ListInventory(c.Request.Context(), middleware.AccountID(c), c.Query("low_stock") == "true")
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, items)
}

// CreateContact returns the POST handler for debtors or creditors.
func (h *RecordsHandler) CreateContact(contactType domain.ContactType) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.ContactRequest
		if !bindJSON(c, &req) {
			return
		}

		contact, charge, err := h.bookSvc.CreateContact(c.Request.Context(), ports.CreateContactRequest{
			AccountID:   middleware.AccountID(c),
			Type:        contactType,
			Name:        req.Name,
			Phone:       req.Phone,
			Amount:      req.Amount,
			Description: req.Description,
		})
		if err != nil {
			response.Error(c, err)
			return
		}
		response.Created(c, metered(contact, charge))
	}
}

// ListContacts returns the GET handler for debtors or creditors.
func (h *RecordsHandler) ListContacts(contactType domain.ContactType) gin.HandlerFunc {
	return func(c *gin.Context) {
		contacts, err := h.bookSvc.ListContacts(c.Request.Context(), middleware.AccountID(c), contactType)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.OK(c, contacts)
	}
}

// RecordCashflow returns the POST handler for receipts or payments.
func (h *RecordsHandler) RecordCashflow(cashflowType domain.CashflowType) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.CashflowRequest
		if !bindJSON(c, &req) {
			return
		}

		cashflow, charge, err := h.bookSvc.RecordCashflow(c.Request.Context(), ports.RecordCashflowRequest{
			AccountID:   middleware.AccountID(c),
			Type:        cashflowType,
			PartyName:   req.PartyName,
			Amount:      req.Amount,
			Method:      req.Method,
			Category:    req.Category,
			Description: req.Description,
		})
		if err != nil {
			response.Error(c, err)
			return
		}
		response.Created(c, metered(cashflow, charge))
	}
}

// ListCashflows returns the GET handler for receipts or payments, with
// optional from/to bounds.
func (h *RecordsHandler) ListCashflows(cashflowType domain.CashflowType) gin.HandlerFunc {
	return func(c *gin.Context) {
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

		t := cashflowType
		cashflows, err := h.bookSvc.ListCashflows(c.Request.Context(), domain.CashflowFilter{
			AccountID: middleware.AccountID(c),
			Type:      &t,
			From:      from,
			To:        to,
		})
		if err != nil {
			response.Error(c, err)
			return
		}
		response.OK(c, cashflows)
	}
}

// SubmitFeedback handles POST /api/v1/feedback.
func (h *RecordsHandler) SubmitFeedback(c *gin.Context) {
	var req dto.FeedbackRequest
	if !bindJSON(c, &req) {
		return
	}

	feedback, charge, err := h.bookSvc.SubmitFeedback(c.Request.Context(), ports.SubmitFeedbackRequest{
		AccountID: middleware.AccountID(c),
		Rating:    req.Rating,
		Comment:   req.Comment,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, metered(feedback, charge))
}

// UpdateInventory handles PUT /api/v1/inventory/:id.
func (h *RecordsHandler) UpdateInventory(c *gin.Context) {
	id, ok := recordID(c)
	if !ok {
		return
	}
	var req dto.UpdateInventoryRequest
	if !bindJSON(c, &req) {
		return
	}

	item, err := h.bookSvc.UpdateInventoryItem(c.Request.Context(), middleware.AccountID(c), id, domain.InventoryUpdate{
		Name:         req.Name,
		Quantity:     req.Quantity,
		Unit:         req.Unit,
		BuyingPrice:  req.BuyingPrice,
		SellingPrice: req.SellingPrice,
		Threshold:    req.Threshold,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, item)
}

// UpdateContact returns the PUT handler for debtors or creditors.
func (h *RecordsHandler) UpdateContact(contactType domain.ContactType) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := recordID(c)
		if !ok {
			return
		}
		var req dto.UpdateContactRequest
		if !bindJSON(c, &req) {
			return
		}

		contact, err := h.bookSvc.UpdateContact(c.Request.Context(), middleware.AccountID(c), contactType, id, domain.ContactUpdate{
			Name:        req.Name,
			Phone:       req.Phone,
			Amount:      req.Amount,
			Description: req.Description,
		})
		if err != nil {
			response.Error(c, err)
			return
		}
		response.OK(c, contact)
	}
}

// UpdateCashflow returns the PUT handler for receipts or payments.
func (h *RecordsHandler) UpdateCashflow(cashflowType domain.CashflowType) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := recordID(c)
		if !ok {
			return
		}
		var req dto.UpdateCashflowRequest
		if !bindJSON(c, &req) {
			return
		}

		cashflow, err := h.bookSvc.UpdateCashflow(c.Request.Context(), middleware.AccountID(c), cashflowType, id, domain.CashflowUpdate{
			PartyName:   req.PartyName,
			Amount:      req.Amount,
			Method:      req.Method,
			Category:    req.Category,
			Description: req.Description,
		})
		if err != nil {
			response.Error(c, err)
			return
		}
		response.OK(c, cashflow)
	}
}

// DeleteRecord returns the DELETE handler for one record kind.
func (h *RecordsHandler) DeleteRecord(kind domain.RecordKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := recordID(c)
		if !ok {
			return
		}
		if err := h.bookSvc.DeleteRecord(c.Request.Context(), middleware.AccountID(c), kind, id); err != nil {
			response.Error(c, err)
			return
		}
		response.OK(c, gin.H{"id": id, "kind": kind, "deleted": true})
	}
}
