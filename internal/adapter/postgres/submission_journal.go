package postgres

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"crowdfund-web/internal/core/domain"
	"crowdfund-web/internal/core/port"
)

var _ port.SubmissionJournal = (*SubmissionJournal)(nil)

// ErrSubmissionNotFound is returned when a status update names an unknown
// submission.
var ErrSubmissionNotFound = errors.New("submission not found")

// SubmissionJournal implements port.SubmissionJournal on PostgreSQL.
type SubmissionJournal struct {
	pool *pgxpool.Pool
}

// NewSubmissionJournal returns a journal backed by pool.
func NewSubmissionJournal(pool *pgxpool.Pool) *SubmissionJournal {
	return &SubmissionJournal{pool: pool}
}

const submissionColumns = `
    id, campaign, from_account, method, tier_name, tier_amount::text,
    status, tx_hash, block_number, error, created_at, updated_at`

// Reserve inserts sub unless its ID is already journaled. The insert and
// the conflict check are one statement, so two concurrent replays of the
// same form cannot both get created=true.
func (j *SubmissionJournal) Reserve(ctx context.Context, sub domain.Submission) (domain.Submission, bool, error) {
	amount := "0"
	if sub.TierAmount != nil {
		amount = sub.TierAmount.String()
	}
	rows, err := j.pool.Query(ctx, `
        INSERT INTO submissions (id, campaign, from_account, method, tier_name, tier_amount, status)
        VALUES ($1, $2, $3, $4, $5, $6::numeric, $7)
        ON CONFLICT (id) DO NOTHING
        RETURNING`+submissionColumns,
		sub.ID, sub.Campaign.Hex(), sub.From.Hex(), sub.Method, sub.TierName, amount, string(domain.SubmissionReserved))
	if err != nil {
		return domain.Submission{}, false, err
	}
	stored, err := pgx.CollectExactlyOneRow(rows, scanSubmission)
	if err == nil {
		return stored, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return domain.Submission{}, false, err
	}

	rows, err = j.pool.Query(ctx, `SELECT`+submissionColumns+` FROM submissions WHERE id = $1`, sub.ID)
	if err != nil {
		return domain.Submission{}, false, err
	}
	stored, err = pgx.CollectExactlyOneRow(rows, scanSubmission)
	if err != nil {
		return domain.Submission{}, false, fmt.Errorf("load submission %s: %w", sub.ID, err)
	}
	return stored, false, nil
}

func (j *SubmissionJournal) MarkSubmitted(ctx context.Context, id uuid.UUID, hash common.Hash) error {
	return j.update(ctx, id, `
        UPDATE submissions
        SET status = 'submitted', tx_hash = $2, updated_at = now()
        WHERE id = $1`, hash.Hex())
}

func (j *SubmissionJournal) MarkConfirmed(ctx context.Context, id uuid.UUID, block uint64) error {
	return j.update(ctx, id, `
        UPDATE submissions
        SET status = 'confirmed', block_number = $2, error = '', updated_at = now()
        WHERE id = $1`, int64(block))
}

func (j *SubmissionJournal) MarkFailed(ctx context.Context, id uuid.UUID, reason string) error {
	return j.update(ctx, id, `
        UPDATE submissions
        SET status = 'failed', error = $2, updated_at = now()
        WHERE id = $1`, reason)
}

// Submitted lists up to limit broadcast submissions awaiting a receipt,
// oldest first.
func (j *SubmissionJournal) Submitted(ctx context.Context, limit int) ([]domain.Submission, error) {
	rows, err := j.pool.Query(ctx, `
        SELECT`+submissionColumns+`
        FROM submissions
        WHERE status = 'submitted'
        ORDER BY created_at
        LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanSubmission)
}

func (j *SubmissionJournal) update(ctx context.Context, id uuid.UUID, query string, arg any) error {
	tag, err := j.pool.Exec(ctx, query, id, arg)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", ErrSubmissionNotFound, id)
	}
	return nil
}

// submissionRow mirrors one submissions row as scanned from PostgreSQL.
type submissionRow struct {
	ID          uuid.UUID
	Campaign    string
	From        string
	Method      string
	TierName    string
	TierAmount  string
	Status      string
	TxHash      *string
	BlockNumber *int64
	Error       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func scanSubmission(row pgx.CollectableRow) (domain.Submission, error) {
	var r submissionRow
	err := row.Scan(
		&r.ID,
		&r.Campaign,
		&r.From,
		&r.Method,
		&r.TierName,
		&r.TierAmount,
		&r.Status,
		&r.TxHash,
		&r.BlockNumber,
		&r.Error,
		&r.CreatedAt,
		&r.UpdatedAt,
	)
	if err != nil {
		return domain.Submission{}, err
	}
	return r.toDomain()
}

func (r submissionRow) toDomain() (domain.Submission, error) {
	amount, ok := new(big.Int).SetString(r.TierAmount, 10)
	if !ok {
		return domain.Submission{}, fmt.Errorf("submission %s: bad tier amount %q", r.ID, r.TierAmount)
	}
	sub := domain.Submission{
		ID:         r.ID,
		Campaign:   common.HexToAddress(r.Campaign),
		From:       common.HexToAddress(r.From),
		Method:     r.Method,
		TierName:   r.TierName,
		TierAmount: amount,
		Status:     domain.SubmissionStatus(r.Status),
		Error:      r.Error,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
	if r.TxHash != nil {
		h := common.HexToHash(*r.TxHash)
		sub.TxHash = &h
	}
	if r.BlockNumber != nil {
		b := uint64(*r.BlockNumber)
		sub.BlockNumber = &b
	}
	return sub, nil
}
