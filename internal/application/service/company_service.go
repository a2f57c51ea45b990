package service

import (
	"context"

	"github.com/HarshJ166/invomax-sub000/internal/domain/entity"
	"github.com/HarshJ166/invomax-sub000/internal/domain/repository"
	"github.com/HarshJ166/invomax-sub000/pkg/apperror"
	"github.com/HarshJ166/invomax-sub000/pkg/pagination"
	"github.com/google/uuid"
)

// CompanyService handles company setup. Creating a company seeds its
// invoice sequence so numbering is configured from day one.
type CompanyService struct {
	companyRepo repository.CompanyRepository
}

// NewCompanyService creates a new company service
func NewCompanyService(companyRepo repository.CompanyRepository) *CompanyService {
	return &CompanyService{companyRepo: companyRepo}
}

// CreateCompanyInput represents the input for creating a company
type CreateCompanyInput struct {
	Name                 string
	State                string
	GSTIN                string
	Address              *string
	InvoicePrefix        string
	InvoiceNumberInitial int64
}

// CreateCompany persists a company and seeds its invoice sequence. The
// sequence stores the last used number, so it is seeded one below the
// configured initial and the first allocation lands exactly on it.
func (s *CompanyService) CreateCompany(ctx context.Context, input *CreateCompanyInput) (*entity.Company, error) {
	var fieldErrors []apperror.FieldError
	if input.Name == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "name", Message: "must not be empty"})
	}
	if input.State == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "state", Message: "must not be empty"})
	}
	if input.InvoicePrefix == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "invoice_prefix", Message: "must not be empty"})
	}
	if input.InvoiceNumberInitial < 1 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "invoice_number_initial", Message: "must be at least 1"})
	}
	if len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	company := &entity.Company{
		Name:                 input.Name,
		State:                input.State,
		GSTIN:                input.GSTIN,
		Address:              input.Address,
		InvoicePrefix:        input.InvoicePrefix,
		InvoiceNumberInitial: input.InvoiceNumberInitial,
	}
	seq := &entity.InvoiceSequence{
		Prefix:     input.InvoicePrefix,
		NextNumber: input.InvoiceNumberInitial - 1,
	}

	if err := s.companyRepo.CreateWithSequence(ctx, company, seq); err != nil {
		return nil, err
	}
	return company, nil
}

// GetCompany retrieves a company by ID
func (s *CompanyService) GetCompany(ctx context.Context, id uuid.UUID) (*entity.Company, error) {
	company, err := s.companyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, apperror.NewNotFoundError("Company")
	}
	return company, nil
}

// UpdateCompanyInput represents the input for updating a company
type UpdateCompanyInput struct {
	ID      uuid.UUID
	Name    string
	State   string
	GSTIN   string
	Address *string
}

// UpdateCompany updates company details. Numbering config is immutable
// after setup; the sequence row is the single source of truth for it.
func (s *CompanyService) UpdateCompany(ctx context.Context, input *UpdateCompanyInput) (*entity.Company, error) {
	company, err := s.companyRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, apperror.NewNotFoundError("Company")
	}

	company.Name = input.Name
	company.State = input.State
	company.GSTIN = input.GSTIN
	company.Address = input.Address

	if err := s.companyRepo.Update(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}

// DeleteCompany deletes a company
func (s *CompanyService) DeleteCompany(ctx context.Context, id uuid.UUID) error {
	company, err := s.companyRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if company == nil {
		return apperror.NewNotFoundError("Company")
	}
	return s.companyRepo.Delete(ctx, id)
}

// ListCompanies lists companies with filtering
func (s *CompanyService) ListCompanies(ctx context.Context, params *repository.CompanyFilterParams) (*pagination.PaginatedResult[entity.Company], error) {
	companies, total, err := s.companyRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}
	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(companies, pag), nil
}
