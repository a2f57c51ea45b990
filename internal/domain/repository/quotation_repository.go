package repository

import (
	"context"
	"errors"

	"github.com/HarshJ166/invomax-sub000/internal/domain/entity"
	"github.com/HarshJ166/invomax-sub000/pkg/pagination"
	"github.com/google/uuid"
)

// ErrDuplicateIdentifier is returned by Create when the store rejects
// the quotation identifier as already taken. Callers are expected to
// re-resolve and retry.
var ErrDuplicateIdentifier = errors.New("quotation identifier already exists")

// QuotationRepository defines the interface for quotation data operations
type QuotationRepository interface {
	Create(ctx context.Context, quotation *entity.Quotation) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Quotation, error)
	GetByQuotationID(ctx context.Context, quotationID string) (*entity.Quotation, error)
	Update(ctx context.Context, quotation *entity.Quotation) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, companyID uuid.UUID, params *QuotationFilterParams) ([]entity.Quotation, int64, error)
	// ListIdentifiers returns every stored quotation identifier,
	// including those held by soft-deleted rows, which still occupy
	// the unique index.
	ListIdentifiers(ctx context.Context) ([]string, error)
}

// QuotationFilterParams contains filtering parameters for quotation queries
type QuotationFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	ClientID   *uuid.UUID
	SortBy     string
	SortOrder  string
}
