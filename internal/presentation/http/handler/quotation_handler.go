package handler

import (
	"github.com/HarshJ166/invomax-sub000/internal/application/service"
	"github.com/HarshJ166/invomax-sub000/internal/domain/entity"
	"github.com/HarshJ166/invomax-sub000/internal/domain/repository"
	"github.com/HarshJ166/invomax-sub000/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// QuotationHandler handles quotation-related HTTP requests
type QuotationHandler struct {
	quotationService *service.QuotationService
}

// NewQuotationHandler creates a new quotation handler
func NewQuotationHandler(quotationService *service.QuotationService) *QuotationHandler {
	return &QuotationHandler{quotationService: quotationService}
}

// Create handles creating a quotation. The requested identifier may be
// adjusted with a numeric suffix when it is already taken.
func (h *QuotationHandler) Create(c *gin.Context) {
	var req struct {
		CompanyID   uuid.UUID        `json:"company_id" binding:"required"`
		ClientID    *uuid.UUID       `json:"client_id"`
		QuotationID string           `json:"quotation_id" binding:"required"`
		Date        string           `json:"date" binding:"required"`
		Items       entity.LineItems `json:"items"`
		Notes       *string          `json:"notes"`
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

	quotation, err := h.quotationService.CreateQuotation(c.Request.Context(), &service.CreateQuotationInput{
		CompanyID:   req.CompanyID,
		ClientID:    req.ClientID,
		QuotationID: req.QuotationID,
		Date:        date,
		Items:       req.Items,
		Notes:       req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Quotation created successfully", quotation)
}

// Get handles getting a single quotation
func (h *QuotationHandler) Get(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	quotation, err := h.quotationService.GetQuotation(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Quotation retrieved successfully", quotation)
}

// Update handles updating a quotation
func (h *QuotationHandler) Update(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req struct {
		ClientID *uuid.UUID       `json:"client_id"`
		Date     string           `json:"date" binding:"required"`
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

	quotation, err := h.quotationService.UpdateQuotation(c.Request.Context(), &service.UpdateQuotationInput{
		ID:       id,
		ClientID: req.ClientID,
		Date:     date,
		Items:    req.Items,
		Notes:    req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Quotation updated successfully", quotation)
}

// Delete handles deleting a quotation
func (h *QuotationHandler) Delete(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.quotationService.DeleteQuotation(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Quotation deleted successfully", nil)
}

// List handles listing quotations under a company
func (h *QuotationHandler) List(c *gin.Context) {
	companyID, err := parseUUIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	params := bindPagination(c)

	clientID, err := parseUUIDQuery(c, "client_id")
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.quotationService.ListQuotations(c.Request.Context(), companyID, &repository.QuotationFilterParams{
		Pagination: &params,
		Search:     c.Query("search"),
		ClientID:   clientID,
		SortBy:     c.Query("sort_by"),
		SortOrder:  c.Query("sort_order"),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Quotations retrieved successfully", result)
}
