package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/HarshJ166/invomax-sub000/internal/domain/entity"
	"github.com/HarshJ166/invomax-sub000/internal/domain/repository"
	"github.com/HarshJ166/invomax-sub000/pkg/apperror"
	"github.com/HarshJ166/invomax-sub000/pkg/pagination"
	"github.com/google/uuid"
)

const (
	// maxIdentifierProbes bounds the -n suffix search for a free
	// quotation identifier.
	maxIdentifierProbes = 1000
	// maxInsertRetries bounds full resolve+insert cycles when the store
	// reports the resolved identifier as taken. Two concurrent saves can
	// both observe a candidate as free; the uniqueness constraint breaks
	// the tie and the loser re-resolves.
	maxInsertRetries = 3
)

// QuotationService handles quotation CRUD and unique identifier
// resolution. Quotation identifiers are free text and user-editable, so
// uniqueness is enforced on write rather than by a counter.
type QuotationService struct {
	quotationRepo repository.QuotationRepository
	companyRepo   repository.CompanyRepository
	clientRepo    repository.ClientRepository
	taxService    *TaxService
}

// NewQuotationService creates a new quotation service
func NewQuotationService(
	quotationRepo repository.QuotationRepository,
	companyRepo repository.CompanyRepository,
	clientRepo repository.ClientRepository,
	taxService *TaxService,
) *QuotationService {
	return &QuotationService{
		quotationRepo: quotationRepo,
		companyRepo:   companyRepo,
		clientRepo:    clientRepo,
		taxService:    taxService,
	}
}

// resolveUnique returns candidate if it is not taken, otherwise the
// first free candidate-n suffix.
func (s *QuotationService) resolveUnique(ctx context.Context, candidate string) (string, error) {
	existing, err := s.quotationRepo.ListIdentifiers(ctx)
	if err != nil {
		return "", err
	}

	taken := make(map[string]struct{}, len(existing))
	for _, id := range existing {
		taken[id] = struct{}{}
	}

	if _, ok := taken[candidate]; !ok {
		return candidate, nil
	}
	for n := 1; n <= maxIdentifierProbes; n++ {
		probe := fmt.Sprintf("%s-%d", candidate, n)
		if _, ok := taken[probe]; !ok {
			return probe, nil
		}
	}
	return "", apperror.ErrIdentifierSpaceExhausted
}

// CreateQuotationInput represents the input for creating a quotation
type CreateQuotationInput struct {
	CompanyID   uuid.UUID
	ClientID    *uuid.UUID
	QuotationID string
	Date        time.Time
	Items       entity.LineItems
	Notes       *string
}

// CreateQuotation prices the quotation and persists it under a unique
// identifier. Resolution and insert run as one cycle so that a
// concurrent save claiming the same identifier surfaces as a store
// uniqueness violation here, which triggers a fresh cycle.
func (s *QuotationService) CreateQuotation(ctx context.Context, input *CreateQuotationInput) (*entity.Quotation, error) {
	if input.QuotationID == "" {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "quotation_id", Message: "must not be empty"},
		})
	}

	company, err := s.companyRepo.GetByID(ctx, input.CompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, apperror.NewNotFoundError("Company")
	}

	var clientName, buyerState string
	if input.ClientID != nil {
		client, err := s.clientRepo.GetByID(ctx, *input.ClientID)
		if err != nil {
			return nil, err
		}
		if client == nil {
			return nil, apperror.NewNotFoundError("Client")
		}
		clientName = client.Name
		buyerState = client.State
	}

	breakdown, err := s.taxService.ComputeBreakdown(input.Items, company.State, buyerState)
	if err != nil {
		return nil, err
	}

	for attempt := 0; attempt < maxInsertRetries; attempt++ {
		quotationID, err := s.resolveUnique(ctx, input.QuotationID)
		if err != nil {
			return nil, err
		}

		quotation := &entity.Quotation{
			CompanyID:   input.CompanyID,
			ClientID:    input.ClientID,
			QuotationID: quotationID,
			Date:        input.Date,
			ClientName:  clientName,
			Items:       input.Items,
			Subtotal:    breakdown.Subtotal,
			CGST:        breakdown.CGST,
			SGST:        breakdown.SGST,
			IGST:        breakdown.IGST,
			Total:       breakdown.Total,
			Notes:       input.Notes,
		}

		err = s.quotationRepo.Create(ctx, quotation)
		if err == nil {
			return quotation, nil
		}
		if !errors.Is(err, repository.ErrDuplicateIdentifier) {
			return nil, err
		}
	}
	return nil, apperror.ErrIdentifierSpaceExhausted
}

// GetQuotation retrieves a quotation by ID
func (s *QuotationService) GetQuotation(ctx context.Context, id uuid.UUID) (*entity.Quotation, error) {
	quotation, err := s.quotationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if quotation == nil {
		return nil, apperror.NewNotFoundError("Quotation")
	}
	return quotation, nil
}

// UpdateQuotationInput represents the input for updating a quotation
type UpdateQuotationInput struct {
	ID       uuid.UUID
	ClientID *uuid.UUID
	Date     time.Time
	Items    entity.LineItems
	Notes    *string
}

// UpdateQuotation reprices and updates a quotation. The identifier is
// not editable after creation; re-keying a quotation is a delete and
// re-create.
func (s *QuotationService) UpdateQuotation(ctx context.Context, input *UpdateQuotationInput) (*entity.Quotation, error) {
	quotation, err := s.quotationRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if quotation == nil {
		return nil, apperror.NewNotFoundError("Quotation")
	}

	company, err := s.companyRepo.GetByID(ctx, quotation.CompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, apperror.NewNotFoundError("Company")
	}

	var clientName, buyerState string
	if input.ClientID != nil {
		client, err := s.clientRepo.GetByID(ctx, *input.ClientID)
		if err != nil {
			return nil, err
		}
		if client == nil {
			return nil, apperror.NewNotFoundError("Client")
		}
		clientName = client.Name
		buyerState = client.State
	}

	breakdown, err := s.taxService.ComputeBreakdown(input.Items, company.State, buyerState)
	if err != nil {
		return nil, err
	}

	quotation.ClientID = input.ClientID
	quotation.Client = nil
	quotation.Date = input.Date
	quotation.ClientName = clientName
	quotation.Items = input.Items
	quotation.Subtotal = breakdown.Subtotal
	quotation.CGST = breakdown.CGST
	quotation.SGST = breakdown.SGST
	quotation.IGST = breakdown.IGST
	quotation.Total = breakdown.Total
	quotation.Notes = input.Notes

	if err := s.quotationRepo.Update(ctx, quotation); err != nil {
		return nil, err
	}
	return quotation, nil
}

// DeleteQuotation deletes a quotation
func (s *QuotationService) DeleteQuotation(ctx context.Context, id uuid.UUID) error {
	quotation, err := s.quotationRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if quotation == nil {
		return apperror.NewNotFoundError("Quotation")
	}
	return s.quotationRepo.Delete(ctx, id)
}

// ListQuotations lists quotations for a company with filtering
func (s *QuotationService) ListQuotations(ctx context.Context, companyID uuid.UUID, params *repository.QuotationFilterParams) (*pagination.PaginatedResult[entity.Quotation], error) {
	quotations, total, err := s.quotationRepo.List(ctx, companyID, params)
	if err != nil {
		return nil, err
	}
	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(quotations, pag), nil
}
