package domain

import (
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
)

// SubmissionStatus tracks a write request through its lifecycle.
type SubmissionStatus string

const (
	SubmissionReserved  SubmissionStatus = "reserved"
	SubmissionSubmitted SubmissionStatus = "submitted"
	SubmissionConfirmed SubmissionStatus = "confirmed"
	SubmissionFailed    SubmissionStatus = "failed"
)

// MethodAddTier is the only write entry point used by the front-end.
const MethodAddTier = "addTier"

// Submission is one user-initiated transaction request. Its ID is minted
// when the form is rendered, which makes replays of the same form
// detectable.
type Submission struct {
	ID          uuid.UUID
	Campaign    common.Address
	From        common.Address
	Method      string
	TierName    string
	TierAmount  *big.Int
	Status      SubmissionStatus
	TxHash      *common.Hash
	BlockNumber *uint64
	Error       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Settled reports whether no further status change is expected.
func (s Submission) Settled() bool {
	return s.Status == SubmissionConfirmed || s.Status == SubmissionFailed
}
