package repository

import (
	"context"

	"github.com/HarshJ166/invomax-sub000/internal/domain/entity"
	"github.com/google/uuid"
)

// SequenceRepository owns the per-company invoice numbering counter.
// Allocate is the only operation that mutates it.
type SequenceRepository interface {
	// Allocate atomically increments the company's counter and returns
	// the formatted document number. Two concurrent calls never observe
	// the same counter value; gaps from aborted transactions are
	// tolerated, duplicates are not.
	Allocate(ctx context.Context, companyID uuid.UUID) (string, error)
	// Get returns the sequence row without mutating it.
	Get(ctx context.Context, companyID uuid.UUID) (*entity.InvoiceSequence, error)
}
