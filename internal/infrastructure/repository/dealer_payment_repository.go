package repository

import (
	"context"
	"errors"

	"github.com/HarshJ166/invomax-sub000/internal/domain/entity"
	domainRepo "github.com/HarshJ166/invomax-sub000/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type dealerPaymentRepository struct {
	db *gorm.DB
}

// NewDealerPaymentRepository creates a new dealer payment repository
func NewDealerPaymentRepository(db *gorm.DB) domainRepo.DealerPaymentRepository {
	return &dealerPaymentRepository{db: db}
}

func (r *dealerPaymentRepository) Create(ctx context.Context, payment *entity.DealerPayment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

func (r *dealerPaymentRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.DealerPayment, error) {
	var payment entity.DealerPayment
	err := r.db.WithContext(ctx).First(&payment, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &payment, err
}

func (r *dealerPaymentRepository) Update(ctx context.Context, payment *entity.DealerPayment) error {
	return r.db.WithContext(ctx).Save(payment).Error
}

func (r *dealerPaymentRepository) List(ctx context.Context, companyID uuid.UUID, params *domainRepo.DealerPaymentFilterParams) ([]entity.DealerPayment, int64, error) {
	var payments []entity.DealerPayment
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.DealerPayment{}).Where("company_id = ?", companyID)

	if params.Search != "" {
		query = query.Where("dealer_name LIKE ?", "%"+params.Search+"%")
	}

	if params.Status != nil {
		query = query.Where("payment_status = ?", *params.Status)
	}

	if params.StartDate != nil {
		query = query.Where("date >= ?", *params.StartDate)
	}

	if params.EndDate != nil {
		query = query.Where("date <= ?", *params.EndDate)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sortBy := "created_at"
	sortOrder := "DESC"
	if params.SortBy != "" {
		sortBy = params.SortBy
	}
	if params.SortOrder == "ASC" || params.SortOrder == "asc" {
		sortOrder = "ASC"
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order(sortBy + " " + sortOrder).
		Find(&payments).Error

	return payments, total, err
}
