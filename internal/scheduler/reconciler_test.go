package scheduler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"crowdfund-web/internal/core/domain"
	"crowdfund-web/internal/core/port/mocks"
	"crowdfund-web/internal/metrics"
)

func submitted(hash string) domain.Submission {
	h := common.HexToHash(hash)
	return domain.Submission{ID: uuid.New(), Status: domain.SubmissionSubmitted, TxHash: &h}
}

func newReconciler(t *testing.T) (*Reconciler, *mocks.MockSubmissionJournal, *mocks.MockTierWriter, *prometheus.Registry) {
	t.Helper()
	journal := mocks.NewMockSubmissionJournal(t)
	writer := mocks.NewMockTierWriter(t)
	reg := prometheus.NewRegistry()
	r := New("@every 1h", 10, journal, writer, slog.New(slog.NewTextHandler(io.Discard, nil)), metrics.New(reg))
	return r, journal, writer, reg
}

func TestRunOnceSettlesMinedSubmissions(t *testing.T) {
	r, journal, writer, reg := newReconciler(t)
	ok, reverted, pending := submitted("0x01"), submitted("0x02"), submitted("0x03")

	journal.EXPECT().Submitted(mock.Anything, 10).Return([]domain.Submission{ok, reverted, pending}, nil).Once()
	writer.EXPECT().Receipt(mock.Anything, *ok.TxHash).
		Return(&types.Receipt{Status: types.ReceiptStatusSuccessful, BlockNumber: big.NewInt(9)}, nil).Once()
	writer.EXPECT().Receipt(mock.Anything, *reverted.TxHash).
		Return(&types.Receipt{Status: types.ReceiptStatusFailed, BlockNumber: big.NewInt(9)}, nil).Once()
	writer.EXPECT().Receipt(mock.Anything, *pending.TxHash).Return(nil, nil).Once()
	journal.EXPECT().MarkConfirmed(mock.Anything, ok.ID, uint64(9)).Return(nil).Once()
	journal.EXPECT().MarkFailed(mock.Anything, reverted.ID, domain.ErrTxReverted.Error()).Return(nil).Once()

	n, err := r.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	series, err := testutil.GatherAndCount(reg, "crowdfund_reconciled_submissions_total")
	require.NoError(t, err)
	assert.Equal(t, 2, series)
}

func TestRunOnceKeepsGoingAfterEntryError(t *testing.T) {
	r, journal, writer, _ := newReconciler(t)
	broken, noHash, ok := submitted("0x01"), submitted("0x02"), submitted("0x03")
	noHash.TxHash = nil

	journal.EXPECT().Submitted(mock.Anything, 10).Return([]domain.Submission{broken, noHash, ok}, nil).Once()
	writer.EXPECT().Receipt(mock.Anything, *broken.TxHash).Return(nil, errors.New("rpc down")).Once()
	writer.EXPECT().Receipt(mock.Anything, *ok.TxHash).
		Return(&types.Receipt{Status: types.ReceiptStatusSuccessful, BlockNumber: big.NewInt(3)}, nil).Once()
	journal.EXPECT().MarkConfirmed(mock.Anything, ok.ID, uint64(3)).Return(nil).Once()

	n, err := r.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestRunOnceJournalError(t *testing.T) {
	r, journal, _, _ := newReconciler(t)
	journal.EXPECT().Submitted(mock.Anything, 10).Return(nil, errors.New("db down")).Once()

	_, err := r.RunOnce(context.Background())
	assert.ErrorContains(t, err, "db down")
}

func TestStartRejectsBadSpec(t *testing.T) {
	r := New("every now and then", 0, nil, nil, slog.New(slog.NewTextHandler(io.Discard, nil)), nil)
	assert.Error(t, r.Start())
	assert.Equal(t, 50, r.batch)
}

func TestStartStop(t *testing.T) {
	r, _, _, _ := newReconciler(t)
	require.NoError(t, r.Start())
	r.Stop()
}
