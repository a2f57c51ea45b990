package repository

import (
	"context"
	"time"

	"github.com/HarshJ166/invomax-sub000/internal/domain/entity"
	"github.com/HarshJ166/invomax-sub000/internal/domain/enum"
	"github.com/HarshJ166/invomax-sub000/pkg/pagination"
	"github.com/google/uuid"
)

// DealerPaymentRepository defines the interface for dealer bill data operations
type DealerPaymentRepository interface {
	Create(ctx context.Context, payment *entity.DealerPayment) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.DealerPayment, error)
	Update(ctx context.Context, payment *entity.DealerPayment) error
	List(ctx context.Context, companyID uuid.UUID, params *DealerPaymentFilterParams) ([]entity.DealerPayment, int64, error)
}

// DealerPaymentFilterParams contains filtering parameters for dealer bill queries
type DealerPaymentFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	Status     *enum.PaymentStatus
	StartDate  *time.Time
	EndDate    *time.Time
	SortBy     string
	SortOrder  string
}
