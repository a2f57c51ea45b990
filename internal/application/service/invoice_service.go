package service

import (
	"context"
	"time"

	"github.com/HarshJ166/invomax-sub000/internal/domain/entity"
	"github.com/HarshJ166/invomax-sub000/internal/domain/enum"
	"github.com/HarshJ166/invomax-sub000/internal/domain/repository"
	"github.com/HarshJ166/invomax-sub000/pkg/apperror"
	"github.com/HarshJ166/invomax-sub000/pkg/pagination"
	"github.com/google/uuid"
)

// InvoiceService composes the engines into the invoice lifecycle:
// pricing through the tax service, numbering through the sequence
// service, deletion through the archiver.
type InvoiceService struct {
	invoiceRepo    repository.InvoiceRepository
	companyRepo    repository.CompanyRepository
	clientRepo     repository.ClientRepository
	taxService     *TaxService
	sequenceSvc    *SequenceService
	archiveService *ArchiveService
}

// NewInvoiceService creates a new invoice service
func NewInvoiceService(
	invoiceRepo repository.InvoiceRepository,
	companyRepo repository.CompanyRepository,
	clientRepo repository.ClientRepository,
	taxService *TaxService,
	sequenceSvc *SequenceService,
	archiveService *ArchiveService,
) *InvoiceService {
	return &InvoiceService{
		invoiceRepo:    invoiceRepo,
		companyRepo:    companyRepo,
		clientRepo:     clientRepo,
		taxService:     taxService,
		sequenceSvc:    sequenceSvc,
		archiveService: archiveService,
	}
}

// CreateInvoiceInput represents the input for creating an invoice
type CreateInvoiceInput struct {
	CompanyID uuid.UUID
	ClientID  *uuid.UUID
	Date      time.Time
	Status    enum.InvoiceStatus
	Items     entity.LineItems
	Notes     *string
}

// buyerState resolves the client's state; a missing client means the
// jurisdiction is unknown and the tax service falls back to inter-state.
func (s *InvoiceService) buyerState(ctx context.Context, clientID *uuid.UUID) (string, error) {
	if clientID == nil {
		return "", nil
	}
	client, err := s.clientRepo.GetByID(ctx, *clientID)
	if err != nil {
		return "", err
	}
	if client == nil {
		return "", apperror.NewNotFoundError("Client")
	}
	return client.State, nil
}

// CreateInvoice prices the line items, allocates the next invoice number
// for the company and persists the invoice. A failed persist after
// allocation leaves a gap in the sequence, which is tolerated; a
// duplicate number is not possible because allocation is atomic.
func (s *InvoiceService) CreateInvoice(ctx context.Context, input *CreateInvoiceInput) (*entity.Invoice, error) {
	company, err := s.companyRepo.GetByID(ctx, input.CompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, apperror.NewNotFoundError("Company")
	}

	buyerState, err := s.buyerState(ctx, input.ClientID)
	if err != nil {
		return nil, err
	}

	breakdown, err := s.taxService.ComputeBreakdown(input.Items, company.State, buyerState)
	if err != nil {
		return nil, err
	}

	invoiceNo, err := s.sequenceSvc.Allocate(ctx, input.CompanyID)
	if err != nil {
		return nil, err
	}

	invoice := &entity.Invoice{
		CompanyID: input.CompanyID,
		ClientID:  input.ClientID,
		InvoiceNo: invoiceNo,
		Date:      input.Date,
		Status:    input.Status,
		Items:     input.Items,
		Subtotal:  breakdown.Subtotal,
		CGST:      breakdown.CGST,
		SGST:      breakdown.SGST,
		IGST:      breakdown.IGST,
		Total:     breakdown.Total,
		Notes:     input.Notes,
	}

	if err := s.invoiceRepo.Create(ctx, invoice); err != nil {
		return nil, err
	}
	return invoice, nil
}

// GetInvoice retrieves an invoice by ID
func (s *InvoiceService) GetInvoice(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	invoice, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}
	return invoice, nil
}

// PeekNextInvoiceNo returns the number the next invoice would receive,
// for display before submission
func (s *InvoiceService) PeekNextInvoiceNo(ctx context.Context, companyID uuid.UUID) (string, error) {
	return s.sequenceSvc.PeekNext(ctx, companyID)
}

// UpdateInvoiceInput represents the input for updating an invoice
type UpdateInvoiceInput struct {
	ID       uuid.UUID
	ClientID *uuid.UUID
	Date     time.Time
	Status   enum.InvoiceStatus
	Items    entity.LineItems
	Notes    *string
}

// UpdateInvoice reprices and updates an invoice. Invoices that are paid
// or cancelled are frozen.
func (s *InvoiceService) UpdateInvoice(ctx context.Context, input *UpdateInvoiceInput) (*entity.Invoice, error) {
	invoice, err := s.invoiceRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}
	if invoice.Status.IsLocked() {
		return nil, apperror.ErrRecordLocked
	}

	company, err := s.companyRepo.GetByID(ctx, invoice.CompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, apperror.NewNotFoundError("Company")
	}

	buyerState, err := s.buyerState(ctx, input.ClientID)
	if err != nil {
		return nil, err
	}

	breakdown, err := s.taxService.ComputeBreakdown(input.Items, company.State, buyerState)
	if err != nil {
		return nil, err
	}

	invoice.ClientID = input.ClientID
	invoice.Client = nil
	invoice.Date = input.Date
	invoice.Status = input.Status
	invoice.Items = input.Items
	invoice.Subtotal = breakdown.Subtotal
	invoice.CGST = breakdown.CGST
	invoice.SGST = breakdown.SGST
	invoice.IGST = breakdown.IGST
	invoice.Total = breakdown.Total
	invoice.Notes = input.Notes

	if err := s.invoiceRepo.Update(ctx, invoice); err != nil {
		return nil, err
	}
	return invoice, nil
}

// UpdateInvoiceStatus updates only the status of an invoice
func (s *InvoiceService) UpdateInvoiceStatus(ctx context.Context, id uuid.UUID, status enum.InvoiceStatus) error {
	invoice, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if invoice == nil {
		return apperror.NewNotFoundError("Invoice")
	}
	if invoice.Status.IsLocked() {
		return apperror.ErrRecordLocked
	}
	return s.invoiceRepo.UpdateStatus(ctx, id, status)
}

// ListInvoices lists invoices for a company with filtering
func (s *InvoiceService) ListInvoices(ctx context.Context, companyID uuid.UUID, params *repository.InvoiceFilterParams) (*pagination.PaginatedResult[entity.Invoice], error) {
	invoices, total, err := s.invoiceRepo.List(ctx, companyID, params)
	if err != nil {
		return nil, err
	}
	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(invoices, pag), nil
}

// DeleteInvoice archives an invoice. Paid invoices are never archivable.
func (s *InvoiceService) DeleteInvoice(ctx context.Context, id uuid.UUID) (*entity.InvoiceArchive, error) {
	invoice, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}
	if invoice.Status == enum.InvoiceStatusPaid {
		return nil, apperror.NewConflictError("Paid invoices cannot be deleted")
	}
	return s.archiveService.ArchiveInvoice(ctx, invoice)
}

// RestoreInvoice brings an archived invoice back under its original id
func (s *InvoiceService) RestoreInvoice(ctx context.Context, archiveID uuid.UUID) (*entity.Invoice, error) {
	return s.archiveService.RestoreInvoice(ctx, archiveID)
}

// ListArchivedInvoices lists a company's archived invoices
func (s *InvoiceService) ListArchivedInvoices(ctx context.Context, companyID uuid.UUID, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.InvoiceArchive], error) {
	return s.archiveService.ListInvoiceArchives(ctx, companyID, params)
}

// HSNReport computes the per-HSN tax summary for an invoice
func (s *InvoiceService) HSNReport(ctx context.Context, id uuid.UUID) ([]HSNSummary, error) {
	invoice, err := s.GetInvoice(ctx, id)
	if err != nil {
		return nil, err
	}

	company, err := s.companyRepo.GetByID(ctx, invoice.CompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, apperror.NewNotFoundError("Company")
	}

	buyerState, err := s.buyerState(ctx, invoice.ClientID)
	if err != nil {
		return nil, err
	}

	return s.taxService.ComputeHSNSummary(invoice.Items, company.State, buyerState)
}
