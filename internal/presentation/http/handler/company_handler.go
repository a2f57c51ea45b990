package handler

import (
	"github.com/HarshJ166/invomax-sub000/internal/application/service"
	"github.com/HarshJ166/invomax-sub000/internal/domain/repository"
	"github.com/HarshJ166/invomax-sub000/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// CompanyHandler handles company-related HTTP requests
type CompanyHandler struct {
	companyService *service.CompanyService
}

// NewCompanyHandler creates a new company handler
func NewCompanyHandler(companyService *service.CompanyService) *CompanyHandler {
	return &CompanyHandler{companyService: companyService}
}

// Create handles creating a company
func (h *CompanyHandler) Create(c *gin.Context) {
	var req struct {
		Name                 string  `json:"name" binding:"required"`
		State                string  `json:"state" binding:"required"`
		GSTIN                string  `json:"gstin"`
		Address              *string `json:"address"`
		InvoicePrefix        string  `json:"invoice_prefix" binding:"required"`
		InvoiceNumberInitial int64   `json:"invoice_number_initial" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	company, err := h.companyService.CreateCompany(c.Request.Context(), &service.CreateCompanyInput{
		Name:                 req.Name,
		State:                req.State,
		GSTIN:                req.GSTIN,
		Address:              req.Address,
		InvoicePrefix:        req.InvoicePrefix,
		InvoiceNumberInitial: req.InvoiceNumberInitial,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Company created successfully", company)
}

// Get handles getting a single company
func (h *CompanyHandler) Get(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	company, err := h.companyService.GetCompany(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Company retrieved successfully", company)
}

// Update handles updating a company
func (h *CompanyHandler) Update(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req struct {
		Name    string  `json:"name" binding:"required"`
		State   string  `json:"state" binding:"required"`
		GSTIN   string  `json:"gstin"`
		Address *string `json:"address"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	company, err := h.companyService.UpdateCompany(c.Request.Context(), &service.UpdateCompanyInput{
		ID:      id,
		Name:    req.Name,
		State:   req.State,
		GSTIN:   req.GSTIN,
		Address: req.Address,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Company updated successfully", company)
}

// Delete handles deleting a company
func (h *CompanyHandler) Delete(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.companyService.DeleteCompany(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Company deleted successfully", nil)
}

// List handles listing companies
func (h *CompanyHandler) List(c *gin.Context) {
	params := bindPagination(c)

	result, err := h.companyService.ListCompanies(c.Request.Context(), &repository.CompanyFilterParams{
		Pagination: &params,
		Search:     c.Query("search"),
		SortBy:     c.Query("sort_by"),
		SortOrder:  c.Query("sort_order"),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Companies retrieved successfully", result)
}
