package service

import (
	"context"

	"github.com/HarshJ166/invomax-sub000/internal/domain/entity"
	"github.com/HarshJ166/invomax-sub000/internal/domain/repository"
	"github.com/HarshJ166/invomax-sub000/pkg/pagination"
	"github.com/google/uuid"
)

// ArchiveService relocates records between live and archive tables. It
// is a pure relocation primitive: business rules about what may be
// archived (e.g. paid invoices may not) belong to the calling service.
type ArchiveService struct {
	archiveRepo repository.ArchiveRepository
}

// NewArchiveService creates a new archive service
func NewArchiveService(archiveRepo repository.ArchiveRepository) *ArchiveService {
	return &ArchiveService{archiveRepo: archiveRepo}
}

// ArchiveInvoice moves a live invoice into the archive table
func (s *ArchiveService) ArchiveInvoice(ctx context.Context, invoice *entity.Invoice) (*entity.InvoiceArchive, error) {
	return s.archiveRepo.ArchiveInvoice(ctx, invoice)
}

// RestoreInvoice moves an archived invoice back to the live table,
// restoring its original id
func (s *ArchiveService) RestoreInvoice(ctx context.Context, archiveID uuid.UUID) (*entity.Invoice, error) {
	return s.archiveRepo.RestoreInvoice(ctx, archiveID)
}

// ListInvoiceArchives lists archived invoices for a company
func (s *ArchiveService) ListInvoiceArchives(ctx context.Context, companyID uuid.UUID, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.InvoiceArchive], error) {
	archives, total, err := s.archiveRepo.ListInvoiceArchives(ctx, companyID, params)
	if err != nil {
		return nil, err
	}
	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(archives, pag), nil
}

// ArchiveDealerPayment moves a live dealer bill into the archive table
func (s *ArchiveService) ArchiveDealerPayment(ctx context.Context, payment *entity.DealerPayment) (*entity.DealerPaymentArchive, error) {
	return s.archiveRepo.ArchiveDealerPayment(ctx, payment)
}

// RestoreDealerPayment moves an archived dealer bill back to the live table
func (s *ArchiveService) RestoreDealerPayment(ctx context.Context, archiveID uuid.UUID) (*entity.DealerPayment, error) {
	return s.archiveRepo.RestoreDealerPayment(ctx, archiveID)
}

// ListDealerPaymentArchives lists archived dealer bills for a company
func (s *ArchiveService) ListDealerPaymentArchives(ctx context.Context, companyID uuid.UUID, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.DealerPaymentArchive], error) {
	archives, total, err := s.archiveRepo.ListDealerPaymentArchives(ctx, companyID, params)
	if err != nil {
		return nil, err
	}
	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(archives, pag), nil
}
