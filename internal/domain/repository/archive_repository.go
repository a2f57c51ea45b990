package repository

import (
	"context"

	"github.com/HarshJ166/invomax-sub000/internal/domain/entity"
	"github.com/HarshJ166/invomax-sub000/pkg/pagination"
	"github.com/google/uuid"
)

// ArchiveRepository relocates records between the live tables and their
// append-only archive tables. Every operation is all-or-nothing: after
// archive or restore a record exists in exactly one of the two tables,
// never neither and never both.
type ArchiveRepository interface {
	ArchiveInvoice(ctx context.Context, invoice *entity.Invoice) (*entity.InvoiceArchive, error)
	RestoreInvoice(ctx context.Context, archiveID uuid.UUID) (*entity.Invoice, error)
	ListInvoiceArchives(ctx context.Context, companyID uuid.UUID, params *pagination.PaginationParams) ([]entity.InvoiceArchive, int64, error)

	ArchiveDealerPayment(ctx context.Context, payment *entity.DealerPayment) (*entity.DealerPaymentArchive, error)
	RestoreDealerPayment(ctx context.Context, archiveID uuid.UUID) (*entity.DealerPayment, error)
	ListDealerPaymentArchives(ctx context.Context, companyID uuid.UUID, params *pagination.PaginationParams) ([]entity.DealerPaymentArchive, int64, error)
}
