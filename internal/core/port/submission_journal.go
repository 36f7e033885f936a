package port

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"

	"crowdfund-web/internal/core/domain"
)

// SubmissionJournal records write requests so that a replayed form never
// produces a second transaction. Implementations must make Reserve atomic.
type SubmissionJournal interface {
	// Reserve stores sub in the reserved state. When a submission with the
	// same ID already exists it is returned unchanged with created=false.
	Reserve(ctx context.Context, sub domain.Submission) (stored domain.Submission, created bool, err error)
	MarkSubmitted(ctx context.Context, id uuid.UUID, hash common.Hash) error
	MarkConfirmed(ctx context.Context, id uuid.UUID, block uint64) error
	MarkFailed(ctx context.Context, id uuid.UUID, reason string) error
	// Submitted lists submissions sent but not yet settled, oldest first.
	Submitted(ctx context.Context, limit int) ([]domain.Submission, error)
}
