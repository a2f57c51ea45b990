package handler

import (
	"time"

	"github.com/HarshJ166/invomax-sub000/internal/application/service"
	"github.com/HarshJ166/invomax-sub000/internal/domain/entity"
	"github.com/HarshJ166/invomax-sub000/internal/domain/enum"
	"github.com/HarshJ166/invomax-sub000/internal/domain/repository"
	"github.com/HarshJ166/invomax-sub000/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

// parseDate parses a yyyy-mm-dd date string
func parseDate(raw string) (time.Time, bool) {
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// InvoiceHandler handles invoice-related HTTP requests
type InvoiceHandler struct {
	invoiceService *service.InvoiceService
}

// NewInvoiceHandler creates a new invoice handler
func NewInvoiceHandler(invoiceService *service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService}
}

// Create handles creating an invoice
func (h *InvoiceHandler) Create(c *gin.Context) {
	var req struct {
		CompanyID uuid.UUID        `json:"company_id" binding:"required"`
		ClientID  *uuid.UUID       `json:"client_id"`
		Date      string           `json:"date" binding:"required"`
		Status    string           `json:"status"`
		Items     entity.LineItems `json:"items"`
		Notes     *string          `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	date, ok := parseDate(req.Date)
	if !ok {
		response.BadRequest(c, "Invalid date, expected yyyy-mm-dd")
		return
	}

	status := enum.InvoiceStatusDraft
	if req.Status != "" {
		parsed, ok := enum.ParseInvoiceStatus(req.Status)
		if !ok {
			response.BadRequest(c, "Invalid status")
			return
		}
		status = parsed
	}

	invoice, err := h.invoiceService.CreateInvoice(c.Request.Context(), &service.CreateInvoiceInput{
		CompanyID: req.CompanyID,
		ClientID:  req.ClientID,
		Date:      date,
		Status:    status,
		Items:     req.Items,
		Notes:     req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Invoice created successfully", invoice)
}

// Get handles getting a single invoice
func (h *InvoiceHandler) Get(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	invoice, err := h.invoiceService.GetInvoice(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoice retrieved successfully", invoice)
}

// NextNumber handles previewing the next invoice number for a company
func (h *InvoiceHandler) NextNumber(c *gin.Context) {
	companyID, err := parseUUIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	invoiceNo, err := h.invoiceService.PeekNextInvoiceNo(c.Request.Context(), companyID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Next invoice number retrieved successfully", gin.H{"invoice_no": invoiceNo})
}

// Update handles updating an invoice
func (h *InvoiceHandler) Update(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req struct {
		ClientID *uuid.UUID       `json:"client_id"`
		Date     string           `json:"date" binding:"required"`
		Status   string           `json:"status" binding:"required"`
		Items    entity.LineItems `json:"items"`
		Notes    *string          `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	date, ok := parseDate(req.Date)
	if !ok {
		response.BadRequest(c, "Invalid date, expected yyyy-mm-dd")
		return
	}

	status, ok := enum.ParseInvoiceStatus(req.Status)
	if !ok {
		response.BadRequest(c, "Invalid status")
		return
	}

	invoice, err := h.invoiceService.UpdateInvoice(c.Request.Context(), &service.UpdateInvoiceInput{
		ID:       id,
		ClientID: req.ClientID,
		Date:     date,
		Status:   status,
		Items:    req.Items,
		Notes:    req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoice updated successfully", invoice)
}

// UpdateStatus handles invoice status transitions
func (h *InvoiceHandler) UpdateStatus(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	status, ok := enum.ParseInvoiceStatus(req.Status)
	if !ok {
		response.BadRequest(c, "Invalid status")
		return
	}

	if err := h.invoiceService.UpdateInvoiceStatus(c.Request.Context(), id, status); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoice status updated successfully", nil)
}

// List handles listing invoices under a company
func (h *InvoiceHandler) List(c *gin.Context) {
	companyID, err := parseUUIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	params := bindPagination(c)

	filter := &repository.InvoiceFilterParams{
		Pagination: &params,
		Search:     c.Query("search"),
		SortBy:     c.Query("sort_by"),
		SortOrder:  c.Query("sort_order"),
	}

	if raw := c.Query("status"); raw != "" {
		status, ok := enum.ParseInvoiceStatus(raw)
		if !ok {
			response.BadRequest(c, "Invalid status")
			return
		}
		filter.Status = &status
	}

	clientID, err := parseUUIDQuery(c, "client_id")
	if err != nil {
		response.Error(c, err)
		return
	}
	filter.ClientID = clientID

	if raw := c.Query("start_date"); raw != "" {
		start, ok := parseDate(raw)
		if !ok {
			response.BadRequest(c, "Invalid start_date, expected yyyy-mm-dd")
			return
		}
		filter.StartDate = &start
	}
	if raw := c.Query("end_date"); raw != "" {
		end, ok := parseDate(raw)
		if !ok {
			response.BadRequest(c, "Invalid end_date, expected yyyy-mm-dd")
			return
		}
		filter.EndDate = &end
	}

	result, err := h.invoiceService.ListInvoices(c.Request.Context(), companyID, filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Invoices retrieved successfully", result)
}

// Delete handles moving an invoice into the archive
func (h *InvoiceHandler) Delete(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	archive, err := h.invoiceService.DeleteInvoice(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoice archived successfully", archive)
}

// Restore handles restoring an archived invoice
func (h *InvoiceHandler) Restore(c *gin.Context) {
	archiveID, err := parseUUIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	invoice, err := h.invoiceService.RestoreInvoice(c.Request.Context(), archiveID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoice restored successfully", invoice)
}

// ListArchived handles listing archived invoices under a company
func (h *InvoiceHandler) ListArchived(c *gin.Context) {
	companyID, err := parseUUIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	params := bindPagination(c)

	result, err := h.invoiceService.ListArchivedInvoices(c.Request.Context(), companyID, &params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Archived invoices retrieved successfully", result)
}

// HSNSummary handles the per-HSN tax summary of an invoice
func (h *InvoiceHandler) HSNSummary(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	summary, err := h.invoiceService.HSNReport(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "HSN summary retrieved successfully", summary)
}
