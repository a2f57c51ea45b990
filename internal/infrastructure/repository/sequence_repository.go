package repository

import (
	"context"
	"errors"

	"github.com/HarshJ166/invomax-sub000/internal/domain/entity"
	domainRepo "github.com/HarshJ166/invomax-sub000/internal/domain/repository"
	"github.com/HarshJ166/invomax-sub000/pkg/apperror"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type sequenceRepository struct {
	db *gorm.DB
}

// NewSequenceRepository creates a new invoice sequence repository
func NewSequenceRepository(db *gorm.DB) domainRepo.SequenceRepository {
	return &sequenceRepository{db: db}
}

// Allocate runs the read-increment-format cycle in one transaction.
// The increment is a single UPDATE expression, so the database serializes
// concurrent allocations on the row and the value read afterwards inside
// the same transaction is the one this caller produced.
func (r *sequenceRepository) Allocate(ctx context.Context, companyID uuid.UUID) (string, error) {
	var invoiceNo string

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&entity.InvoiceSequence{}).
			Where("company_id = ?", companyID).
			Update("next_number", gorm.Expr("next_number + 1"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperror.ErrSequenceNotConfigured
		}

		var seq entity.InvoiceSequence
		if err := tx.Where("company_id = ?", companyID).First(&seq).Error; err != nil {
			return err
		}
		invoiceNo = seq.Format(seq.NextNumber)
		return nil
	})
	if err != nil {
		return "", err
	}
	return invoiceNo, nil
}

func (r *sequenceRepository) Get(ctx context.Context, companyID uuid.UUID) (*entity.InvoiceSequence, error) {
	var seq entity.InvoiceSequence
	err := r.db.WithContext(ctx).Where("company_id = ?", companyID).First(&seq).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.ErrSequenceNotConfigured
	}
	if err != nil {
		return nil, err
	}
	return &seq, nil
}
