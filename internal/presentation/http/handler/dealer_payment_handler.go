package handler

import (
	"github.com/HarshJ166/invomax-sub000/internal/application/service"
	"github.com/HarshJ166/invomax-sub000/internal/domain/entity"
	"github.com/HarshJ166/invomax-sub000/internal/domain/enum"
	"github.com/HarshJ166/invomax-sub000/internal/domain/repository"
	"github.com/HarshJ166/invomax-sub000/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DealerPaymentHandler handles dealer bill HTTP requests
type DealerPaymentHandler struct {
	dealerPaymentService *service.DealerPaymentService
}

// NewDealerPaymentHandler creates a new dealer payment handler
func NewDealerPaymentHandler(dealerPaymentService *service.DealerPaymentService) *DealerPaymentHandler {
	return &DealerPaymentHandler{dealerPaymentService: dealerPaymentService}
}

// Create handles creating a dealer bill
func (h *DealerPaymentHandler) Create(c *gin.Context) {
	var req struct {
		CompanyID       uuid.UUID        `json:"company_id" binding:"required"`
		DealerName      string           `json:"dealer_name" binding:"required"`
		Date            string           `json:"date" binding:"required"`
		Items           entity.LineItems `json:"items"`
		BillAmountTotal decimal.Decimal  `json:"bill_amount_total"`
		PaymentStatus   string           `json:"payment_status"`
		PaidAmount      decimal.Decimal  `json:"paid_amount"`
		Notes           *string          `json:"notes"`
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

	status := enum.PaymentStatusUnpaid
	if req.PaymentStatus != "" {
		parsed, ok := enum.ParsePaymentStatus(req.PaymentStatus)
		if !ok {
			response.BadRequest(c, "Invalid payment_status")
			return
		}
		status = parsed
	}

	payment, err := h.dealerPaymentService.CreateDealerPayment(c.Request.Context(), &service.CreateDealerPaymentInput{
		CompanyID:       req.CompanyID,
		DealerName:      req.DealerName,
		Date:            date,
		Items:           req.Items,
		BillAmountTotal: req.BillAmountTotal,
		PaymentStatus:   status,
		PaidAmount:      req.PaidAmount,
		Notes:           req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Dealer payment created successfully", payment)
}

// Get handles getting a single dealer bill
func (h *DealerPaymentHandler) Get(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	payment, err := h.dealerPaymentService.GetDealerPayment(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Dealer payment retrieved successfully", payment)
}

// Update handles updating a dealer bill
func (h *DealerPaymentHandler) Update(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req struct {
		DealerName      string           `json:"dealer_name" binding:"required"`
		Date            string           `json:"date" binding:"required"`
		Items           entity.LineItems `json:"items"`
		BillAmountTotal decimal.Decimal  `json:"bill_amount_total"`
		PaymentStatus   string           `json:"payment_status" binding:"required"`
		PaidAmount      decimal.Decimal  `json:"paid_amount"`
		Notes           *string          `json:"notes"`
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

	status, ok := enum.ParsePaymentStatus(req.PaymentStatus)
	if !ok {
		response.BadRequest(c, "Invalid payment_status")
		return
	}

	payment, err := h.dealerPaymentService.UpdateDealerPayment(c.Request.Context(), &service.UpdateDealerPaymentInput{
		ID:              id,
		DealerName:      req.DealerName,
		Date:            date,
		Items:           req.Items,
		BillAmountTotal: req.BillAmountTotal,
		PaymentStatus:   status,
		PaidAmount:      req.PaidAmount,
		Notes:           req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Dealer payment updated successfully", payment)
}

// UpdateStatus handles payment status transitions on a dealer bill
func (h *DealerPaymentHandler) UpdateStatus(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req struct {
		PaymentStatus string          `json:"payment_status" binding:"required"`
		PaidAmount    decimal.Decimal `json:"paid_amount"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	status, ok := enum.ParsePaymentStatus(req.PaymentStatus)
	if !ok {
		response.BadRequest(c, "Invalid payment_status")
		return
	}

	payment, err := h.dealerPaymentService.UpdatePaymentStatus(c.Request.Context(), id, status, req.PaidAmount)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payment status updated successfully", payment)
}

// List handles listing dealer bills under a company
func (h *DealerPaymentHandler) List(c *gin.Context) {
	companyID, err := parseUUIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	params := bindPagination(c)

	filter := &repository.DealerPaymentFilterParams{
		Pagination: &params,
		Search:     c.Query("search"),
		SortBy:     c.Query("sort_by"),
		SortOrder:  c.Query("sort_order"),
	}

	if raw := c.Query("payment_status"); raw != "" {
		status, ok := enum.ParsePaymentStatus(raw)
		if !ok {
			response.BadRequest(c, "Invalid payment_status")
			return
		}
		filter.Status = &status
	}

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

	result, err := h.dealerPaymentService.ListDealerPayments(c.Request.Context(), companyID, filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Dealer payments retrieved successfully", result)
}

// Delete handles moving a dealer bill into the archive
func (h *DealerPaymentHandler) Delete(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	archive, err := h.dealerPaymentService.DeleteDealerPayment(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Dealer payment archived successfully", archive)
}

// Restore handles restoring an archived dealer bill
func (h *DealerPaymentHandler) Restore(c *gin.Context) {
	archiveID, err := parseUUIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	payment, err := h.dealerPaymentService.RestoreDealerPayment(c.Request.Context(), archiveID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Dealer payment restored successfully", payment)
}

// ListArchived handles listing archived dealer bills under a company
func (h *DealerPaymentHandler) ListArchived(c *gin.Context) {
	companyID, err := parseUUIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	params := bindPagination(c)

	result, err := h.dealerPaymentService.ListArchivedDealerPayments(c.Request.Context(), companyID, &params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Archived dealer payments retrieved successfully", result)
}
