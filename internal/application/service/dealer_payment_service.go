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
	"github.com/shopspring/decimal"
)

// DealerPaymentService handles dealer bills. Paid and balance amounts
// are always derived through the balance service, never taken from the
// caller as-is.
type DealerPaymentService struct {
	paymentRepo    repository.DealerPaymentRepository
	companyRepo    repository.CompanyRepository
	balanceService *BalanceService
	archiveService *ArchiveService
}

// NewDealerPaymentService creates a new dealer payment service
func NewDealerPaymentService(
	paymentRepo repository.DealerPaymentRepository,
	companyRepo repository.CompanyRepository,
	balanceService *BalanceService,
	archiveService *ArchiveService,
) *DealerPaymentService {
	return &DealerPaymentService{
		paymentRepo:    paymentRepo,
		companyRepo:    companyRepo,
		balanceService: balanceService,
		archiveService: archiveService,
	}
}

// CreateDealerPaymentInput represents the input for creating a dealer bill
type CreateDealerPaymentInput struct {
	CompanyID       uuid.UUID
	DealerName      string
	Date            time.Time
	Items           entity.LineItems
	BillAmountTotal decimal.Decimal
	PaymentStatus   enum.PaymentStatus
	PaidAmount      decimal.Decimal
	Notes           *string
}

// CreateDealerPayment persists a dealer bill with derived paid/balance amounts
func (s *DealerPaymentService) CreateDealerPayment(ctx context.Context, input *CreateDealerPaymentInput) (*entity.DealerPayment, error) {
	if input.DealerName == "" {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "dealer_name", Message: "must not be empty"},
		})
	}

	company, err := s.companyRepo.GetByID(ctx, input.CompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, apperror.NewNotFoundError("Company")
	}

	paid, balance, err := s.balanceService.Derive(input.BillAmountTotal, input.PaymentStatus, input.PaidAmount)
	if err != nil {
		return nil, err
	}

	payment := &entity.DealerPayment{
		CompanyID:       input.CompanyID,
		DealerName:      input.DealerName,
		Date:            input.Date,
		Items:           input.Items,
		BillAmountTotal: input.BillAmountTotal,
		PaymentStatus:   input.PaymentStatus,
		PaidAmount:      paid,
		BalanceAmount:   balance,
		Notes:           input.Notes,
	}

	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}
	return payment, nil
}

// GetDealerPayment retrieves a dealer bill by ID
func (s *DealerPaymentService) GetDealerPayment(ctx context.Context, id uuid.UUID) (*entity.DealerPayment, error) {
	payment, err := s.paymentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, apperror.NewNotFoundError("Dealer payment")
	}
	return payment, nil
}

// UpdateDealerPaymentInput represents the input for updating a dealer bill
type UpdateDealerPaymentInput struct {
	ID              uuid.UUID
	DealerName      string
	Date            time.Time
	Items           entity.LineItems
	BillAmountTotal decimal.Decimal
	PaymentStatus   enum.PaymentStatus
	PaidAmount      decimal.Decimal
	Notes           *string
}

// UpdateDealerPayment updates a dealer bill, re-deriving paid/balance
func (s *DealerPaymentService) UpdateDealerPayment(ctx context.Context, input *UpdateDealerPaymentInput) (*entity.DealerPayment, error) {
	payment, err := s.paymentRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, apperror.NewNotFoundError("Dealer payment")
	}

	payment.DealerName = input.DealerName
	payment.Date = input.Date
	payment.Items = input.Items
	payment.BillAmountTotal = input.BillAmountTotal
	payment.Notes = input.Notes

	if err := s.balanceService.ApplyStatus(payment, input.PaymentStatus, input.PaidAmount); err != nil {
		return nil, err
	}

	if err := s.paymentRepo.Update(ctx, payment); err != nil {
		return nil, err
	}
	return payment, nil
}

// UpdatePaymentStatus transitions a dealer bill to a new payment status.
// Moving to unpaid or paid resets the paid amount to the canonical value
// regardless of what was stored.
func (s *DealerPaymentService) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status enum.PaymentStatus, paidAmount decimal.Decimal) (*entity.DealerPayment, error) {
	payment, err := s.paymentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, apperror.NewNotFoundError("Dealer payment")
	}

	if err := s.balanceService.ApplyStatus(payment, status, paidAmount); err != nil {
		return nil, err
	}

	if err := s.paymentRepo.Update(ctx, payment); err != nil {
		return nil, err
	}
	return payment, nil
}

// ListDealerPayments lists dealer bills for a company with filtering
func (s *DealerPaymentService) ListDealerPayments(ctx context.Context, companyID uuid.UUID, params *repository.DealerPaymentFilterParams) (*pagination.PaginatedResult[entity.DealerPayment], error) {
	payments, total, err := s.paymentRepo.List(ctx, companyID, params)
	if err != nil {
		return nil, err
	}
	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(payments, pag), nil
}

// DeleteDealerPayment archives a dealer bill
func (s *DealerPaymentService) DeleteDealerPayment(ctx context.Context, id uuid.UUID) (*entity.DealerPaymentArchive, error) {
	payment, err := s.paymentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, apperror.NewNotFoundError("Dealer payment")
	}
	return s.archiveService.ArchiveDealerPayment(ctx, payment)
}

// RestoreDealerPayment brings an archived dealer bill back under its original id
func (s *DealerPaymentService) RestoreDealerPayment(ctx context.Context, archiveID uuid.UUID) (*entity.DealerPayment, error) {
	return s.archiveService.RestoreDealerPayment(ctx, archiveID)
}

// ListArchivedDealerPayments lists a company's archived dealer bills
func (s *DealerPaymentService) ListArchivedDealerPayments(ctx context.Context, companyID uuid.UUID, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.DealerPaymentArchive], error) {
	return s.archiveService.ListDealerPaymentArchives(ctx, companyID, params)
}
