package postgres

import (
	"context"
	"io"
	"log/slog"
	"math/big"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crowdfund-web/internal/core/domain"
	"crowdfund-web/internal/db"
)

var (
	campaignAddr = common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3")
	ownerAddr    = common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
)

func TestSubmissionRowToDomain(t *testing.T) {
	hash := "0x8a5e1c7e35b2c8f4b1a3a4f5d2c6e7f8091a2b3c4d5e6f708192a3b4c5d6e7f8"
	block := int64(42)
	r := submissionRow{
		ID:          uuid.New(),
		Campaign:    campaignAddr.Hex(),
		From:        ownerAddr.Hex(),
		Method:      domain.MethodAddTier,
		TierName:    "Bronze",
		TierAmount:  "115792089237316195423570985008687907853269984665640564039457584007913129639935",
		Status:      "confirmed",
		TxHash:      &hash,
		BlockNumber: &block,
	}

	sub, err := r.toDomain()
	require.NoError(t, err)
	assert.Equal(t, campaignAddr, sub.Campaign)
	assert.Equal(t, ownerAddr, sub.From)
	assert.Equal(t, domain.SubmissionConfirmed, sub.Status)
	assert.Equal(t, r.TierAmount, sub.TierAmount.String())
	require.NotNil(t, sub.TxHash)
	assert.Equal(t, common.HexToHash(hash), *sub.TxHash)
	require.NotNil(t, sub.BlockNumber)
	assert.Equal(t, uint64(42), *sub.BlockNumber)
	assert.True(t, sub.Settled())
}

func TestSubmissionRowToDomainBadAmount(t *testing.T) {
	_, err := submissionRow{ID: uuid.New(), TierAmount: "1e3"}.toDomain()
	assert.Error(t, err)
}

// openJournal connects to the database named by PSQL_TEST_ADDRESS and
// migrates it, or skips the test.
func openJournal(t *testing.T) *SubmissionJournal {
	t.Helper()
	addr := os.Getenv("PSQL_TEST_ADDRESS")
	if addr == "" {
		t.Skip("PSQL_TEST_ADDRESS not set")
	}
	require.NoError(t, db.Migrate(addr, slog.New(slog.NewTextHandler(io.Discard, nil))))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	pool, err := pgxpool.New(ctx, addr)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return NewSubmissionJournal(pool)
}

func newSubmission() domain.Submission {
	return domain.Submission{
		ID:         uuid.New(),
		Campaign:   campaignAddr,
		From:       ownerAddr,
		Method:     domain.MethodAddTier,
		TierName:   "Bronze",
		TierAmount: big.NewInt(10),
		Status:     domain.SubmissionReserved,
	}
}

func TestSubmissionJournalLifecycle(t *testing.T) {
	j := openJournal(t)
	ctx := context.Background()
	sub := newSubmission()

	stored, created, err := j.Reserve(ctx, sub)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, domain.SubmissionReserved, stored.Status)
	assert.Equal(t, "10", stored.TierAmount.String())

	replay, created, err := j.Reserve(ctx, sub)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, sub.ID, replay.ID)

	hash := common.HexToHash("0xabc")
	require.NoError(t, j.MarkSubmitted(ctx, sub.ID, hash))

	pending, err := j.Submitted(ctx, 1000)
	require.NoError(t, err)
	var found bool
	for _, p := range pending {
		if p.ID == sub.ID {
			found = true
			require.NotNil(t, p.TxHash)
			assert.Equal(t, hash, *p.TxHash)
		}
	}
	assert.True(t, found, "submitted entry listed as pending")

	require.NoError(t, j.MarkConfirmed(ctx, sub.ID, 77))
	settled, _, err := j.Reserve(ctx, sub)
	require.NoError(t, err)
	assert.Equal(t, domain.SubmissionConfirmed, settled.Status)
	require.NotNil(t, settled.BlockNumber)
	assert.Equal(t, uint64(77), *settled.BlockNumber)
}

func TestSubmissionJournalConcurrentReserve(t *testing.T) {
	j := openJournal(t)
	sub := newSubmission()

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		winners int
	)
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, created, err := j.Reserve(context.Background(), sub)
			assert.NoError(t, err)
			if created {
				mu.Lock()
				winners++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, winners)
}

func TestSubmissionJournalUnknownID(t *testing.T) {
	j := openJournal(t)
	err := j.MarkFailed(context.Background(), uuid.New(), "boom")
	assert.ErrorIs(t, err, ErrSubmissionNotFound)
}
