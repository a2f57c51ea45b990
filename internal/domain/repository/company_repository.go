package repository

import (
	"context"

	"github.com/HarshJ166/invomax-sub000/internal/domain/entity"
	"github.com/HarshJ166/invomax-sub000/pkg/pagination"
	"github.com/google/uuid"
)

// CompanyRepository defines the interface for company data operations
type CompanyRepository interface {
	// CreateWithSequence persists a company together with its seeded
	// invoice sequence row in one atomic unit.
	CreateWithSequence(ctx context.Context, company *entity.Company, seq *entity.InvoiceSequence) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Company, error)
	Update(ctx context.Context, company *entity.Company) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *CompanyFilterParams) ([]entity.Company, int64, error)
}

// CompanyFilterParams contains filtering parameters for company queries
type CompanyFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	SortBy     string
	SortOrder  string
}
