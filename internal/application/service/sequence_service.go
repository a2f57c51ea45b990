package service

import (
	"context"

	"github.com/HarshJ166/invomax-sub000/internal/domain/repository"
	"github.com/google/uuid"
)

// SequenceService allocates invoice numbers from the per-company
// counter. Atomicity lives in the repository's transaction; this layer
// only exposes the two operations.
type SequenceService struct {
	sequenceRepo repository.SequenceRepository
}

// NewSequenceService creates a new sequence service
func NewSequenceService(sequenceRepo repository.SequenceRepository) *SequenceService {
	return &SequenceService{sequenceRepo: sequenceRepo}
}

// Allocate returns the next invoice number for the company and advances
// the counter. Fails with the sequence-not-configured error when the
// company has no sequence row.
func (s *SequenceService) Allocate(ctx context.Context, companyID uuid.UUID) (string, error) {
	return s.sequenceRepo.Allocate(ctx, companyID)
}

// PeekNext returns the number the next allocation would produce without
// advancing the counter. Display only: the shown number must still be
// allocated atomically at save time and may differ under concurrency.
func (s *SequenceService) PeekNext(ctx context.Context, companyID uuid.UUID) (string, error) {
	seq, err := s.sequenceRepo.Get(ctx, companyID)
	if err != nil {
		return "", err
	}
	return seq.Format(seq.NextNumber + 1), nil
}
