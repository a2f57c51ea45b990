package repository

import (
	"context"
	"errors"
	"time"

	"github.com/HarshJ166/invomax-sub000/internal/domain/entity"
	domainRepo "github.com/HarshJ166/invomax-sub000/internal/domain/repository"
	"github.com/HarshJ166/invomax-sub000/pkg/apperror"
	"github.com/HarshJ166/invomax-sub000/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type archiveRepository struct {
	db *gorm.DB
}

// NewArchiveRepository creates a new archive repository
func NewArchiveRepository(db *gorm.DB) domainRepo.ArchiveRepository {
	return &archiveRepository{db: db}
}

// ArchiveInvoice inserts the archive copy and deletes the live row in one
// transaction. If the live row vanished between read and delete, the
// whole unit rolls back so the record is never duplicated.
func (r *archiveRepository) ArchiveInvoice(ctx context.Context, invoice *entity.Invoice) (*entity.InvoiceArchive, error) {
	arch := entity.NewInvoiceArchive(invoice, time.Now().UTC())

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(arch).Error; err != nil {
			return err
		}
		res := tx.Delete(&entity.Invoice{}, "id = ?", invoice.ID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperror.NewNotFoundError("Invoice")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return arch, nil
}

// RestoreInvoice looks the archive row up by its own id, re-creates the
// live invoice under the original id and removes the archive row, all in
// one transaction.
func (r *archiveRepository) RestoreInvoice(ctx context.Context, archiveID uuid.UUID) (*entity.Invoice, error) {
	var invoice *entity.Invoice

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var arch entity.InvoiceArchive
		if err := tx.First(&arch, "id = ?", archiveID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.ErrArchiveNotFound
			}
			return err
		}

		invoice = arch.ToInvoice()
		if err := tx.Create(invoice).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.InvoiceArchive{}, "id = ?", archiveID).Error
	})
	if err != nil {
		return nil, err
	}
	return invoice, nil
}

func (r *archiveRepository) ListInvoiceArchives(ctx context.Context, companyID uuid.UUID, params *pagination.PaginationParams) ([]entity.InvoiceArchive, int64, error) {
	var archives []entity.InvoiceArchive
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.InvoiceArchive{}).Where("company_id = ?", companyID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("archived_at DESC").
		Find(&archives).Error

	return archives, total, err
}

// ArchiveDealerPayment mirrors ArchiveInvoice for dealer bills.
func (r *archiveRepository) ArchiveDealerPayment(ctx context.Context, payment *entity.DealerPayment) (*entity.DealerPaymentArchive, error) {
	arch := entity.NewDealerPaymentArchive(payment, time.Now().UTC())

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(arch).Error; err != nil {
			return err
		}
		res := tx.Delete(&entity.DealerPayment{}, "id = ?", payment.ID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperror.NewNotFoundError("Dealer payment")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return arch, nil
}

func (r *archiveRepository) RestoreDealerPayment(ctx context.Context, archiveID uuid.UUID) (*entity.DealerPayment, error) {
	var payment *entity.DealerPayment

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var arch entity.DealerPaymentArchive
		if err := tx.First(&arch, "id = ?", archiveID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.ErrArchiveNotFound
			}
			return err
		}

		payment = arch.ToDealerPayment()
		if err := tx.Create(payment).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.DealerPaymentArchive{}, "id = ?", archiveID).Error
	})
	if err != nil {
		return nil, err
	}
	return payment, nil
}

func (r *archiveRepository) ListDealerPaymentArchives(ctx context.Context, companyID uuid.UUID, params *pagination.PaginationParams) ([]entity.DealerPaymentArchive, int64, error) {
	var archives []entity.DealerPaymentArchive
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.DealerPaymentArchive{}).Where("company_id = ?", companyID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("archived_at DESC").
		Find(&archives).Error

	return archives, total, err
}
