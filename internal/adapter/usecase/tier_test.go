package usecase

import (
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"crowdfund-web/internal/core/domain"
	"crowdfund-web/internal/core/port"
)

var submissionID = uuid.MustParse("6f1c2e8a-4b1d-4d55-9a57-0c6f3f1f8a10")

func tierRequest() port.AddTierRequest {
	return port.AddTierRequest{
		Campaign:     campaignAddr.Hex(),
		Name:         "Bronze",
		Amount:       "10",
		SubmissionID: submissionID.String(),
	}
}

func amountIs(n int64) any {
	return mock.MatchedBy(func(a *big.Int) bool { return a != nil && a.Cmp(big.NewInt(n)) == 0 })
}

// reserveNew echoes the submission back as freshly reserved.
func reserveNew(_ context.Context, sub domain.Submission) (domain.Submission, bool, error) {
	return sub, true, nil
}

func TestAddTierConfirmsExactlyOnce(t *testing.T) {
	f := newFixture(t)
	tx := types.NewTx(&types.LegacyTx{Nonce: 1})

	f.wallet.EXPECT().Account().Return(ownerAddr, true)
	f.journal.EXPECT().Reserve(mock.Anything, mock.MatchedBy(func(s domain.Submission) bool {
		return s.ID == submissionID && s.Campaign == campaignAddr && s.From == ownerAddr &&
			s.Method == domain.MethodAddTier && s.TierName == "Bronze" &&
			s.TierAmount.Cmp(big.NewInt(10)) == 0 && s.Status == domain.SubmissionReserved
	})).RunAndReturn(reserveNew).Once()
	f.writer.EXPECT().AddTier(mock.Anything, ownerAddr, campaignAddr, "Bronze", amountIs(10)).Return(tx, nil).Once()
	f.journal.EXPECT().MarkSubmitted(mock.Anything, submissionID, tx.Hash()).Return(nil).Once()
	f.writer.EXPECT().WaitMined(mock.Anything, tx).
		Return(&types.Receipt{Status: types.ReceiptStatusSuccessful, BlockNumber: big.NewInt(42)}, nil).Once()
	f.journal.EXPECT().MarkConfirmed(mock.Anything, submissionID, uint64(42)).Return(nil).Once()

	sub, err := f.uc.AddTier(context.Background(), tierRequest())
	require.NoError(t, err)
	assert.Equal(t, domain.SubmissionConfirmed, sub.Status)
	require.NotNil(t, sub.TxHash)
	assert.Equal(t, tx.Hash(), *sub.TxHash)
	require.NotNil(t, sub.BlockNumber)
	assert.Equal(t, uint64(42), *sub.BlockNumber)

	// The same form replayed finds the journal entry and never reaches the writer.
	confirmed := *sub
	f.journal.EXPECT().Reserve(mock.Anything, mock.Anything).Return(confirmed, false, nil).Once()

	again, err := f.uc.AddTier(context.Background(), tierRequest())
	require.NoError(t, err)
	assert.Equal(t, domain.SubmissionConfirmed, again.Status)
}

func TestAddTierReplays(t *testing.T) {
	cases := []struct {
		name    string
		status  domain.SubmissionStatus
		errText string
		wantErr error
	}{
		{name: "reserved", status: domain.SubmissionReserved, wantErr: domain.ErrTxInFlight},
		{name: "submitted", status: domain.SubmissionSubmitted, wantErr: domain.ErrTxInFlight},
		{name: "failed", status: domain.SubmissionFailed, errText: "execution reverted: not owner"},
		{name: "confirmed", status: domain.SubmissionConfirmed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			f.wallet.EXPECT().Account().Return(ownerAddr, true)
			stored := domain.Submission{ID: submissionID, Campaign: campaignAddr, Status: tc.status, Error: tc.errText}
			f.journal.EXPECT().Reserve(mock.Anything, mock.Anything).Return(stored, false, nil).Once()

			sub, err := f.uc.AddTier(context.Background(), tierRequest())
			require.NotNil(t, sub)
			assert.Equal(t, tc.status, sub.Status)
			switch {
			case tc.wantErr != nil:
				assert.ErrorIs(t, err, tc.wantErr)
			case tc.errText != "":
				assert.EqualError(t, err, tc.errText)
			default:
				assert.NoError(t, err)
			}
		})
	}
}

func TestAddTierWriterFailure(t *testing.T) {
	f := newFixture(t)
	rejected := errors.New("insufficient funds for gas * price + value")

	f.wallet.EXPECT().Account().Return(ownerAddr, true)
	f.journal.EXPECT().Reserve(mock.Anything, mock.Anything).RunAndReturn(reserveNew).Once()
	f.writer.EXPECT().AddTier(mock.Anything, ownerAddr, campaignAddr, "Bronze", amountIs(10)).Return(nil, rejected).Once()
	f.journal.EXPECT().MarkFailed(mock.Anything, submissionID, rejected.Error()).Return(nil).Once()

	sub, err := f.uc.AddTier(context.Background(), tierRequest())
	require.ErrorIs(t, err, rejected)
	assert.Equal(t, domain.SubmissionFailed, sub.Status)
	assert.Equal(t, rejected.Error(), sub.Error)
}

func TestAddTierReverted(t *testing.T) {
	f := newFixture(t)
	tx := types.NewTx(&types.LegacyTx{Nonce: 2})

	f.wallet.EXPECT().Account().Return(otherAddr, true)
	f.journal.EXPECT().Reserve(mock.Anything, mock.Anything).RunAndReturn(reserveNew).Once()
	f.writer.EXPECT().AddTier(mock.Anything, otherAddr, campaignAddr, "Bronze", amountIs(10)).Return(tx, nil).Once()
	f.journal.EXPECT().MarkSubmitted(mock.Anything, submissionID, tx.Hash()).Return(nil).Once()
	f.writer.EXPECT().WaitMined(mock.Anything, tx).
		Return(&types.Receipt{Status: types.ReceiptStatusFailed, BlockNumber: big.NewInt(7)}, nil).Once()
	f.journal.EXPECT().MarkFailed(mock.Anything, submissionID, domain.ErrTxReverted.Error()).Return(nil).Once()

	sub, err := f.uc.AddTier(context.Background(), tierRequest())
	assert.ErrorIs(t, err, domain.ErrTxReverted)
	assert.Equal(t, domain.SubmissionFailed, sub.Status)
}

func TestAddTierConfirmTimeoutLeavesSubmitted(t *testing.T) {
	f := newFixture(t, WithConfirmTimeout(20*time.Millisecond))
	tx := types.NewTx(&types.LegacyTx{Nonce: 3})

	f.wallet.EXPECT().Account().Return(ownerAddr, true)
	f.journal.EXPECT().Reserve(mock.Anything, mock.Anything).RunAndReturn(reserveNew).Once()
	f.writer.EXPECT().AddTier(mock.Anything, ownerAddr, campaignAddr, "Bronze", amountIs(10)).Return(tx, nil).Once()
	f.journal.EXPECT().MarkSubmitted(mock.Anything, submissionID, tx.Hash()).Return(nil).Once()
	f.writer.EXPECT().WaitMined(mock.Anything, tx).
		RunAndReturn(func(ctx context.Context, _ *types.Transaction) (*types.Receipt, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		}).Once()

	sub, err := f.uc.AddTier(context.Background(), tierRequest())
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, domain.SubmissionSubmitted, sub.Status)
}

func TestAddTierRejectsBeforeReserving(t *testing.T) {
	t.Run("wallet not connected", func(t *testing.T) {
		f := newFixture(t)
		f.wallet.EXPECT().Account().Return(common.Address{}, false)

		_, err := f.uc.AddTier(context.Background(), tierRequest())
		assert.ErrorIs(t, err, domain.ErrWalletNotConnected)
	})

	t.Run("invalid campaign", func(t *testing.T) {
		f := newFixture(t)
		req := tierRequest()
		req.Campaign = "0x1234"

		_, err := f.uc.AddTier(context.Background(), req)
		assert.ErrorIs(t, err, domain.ErrInvalidAddress)
	})

	for _, amount := range []string{"", "ten", "-1", "1.5"} {
		t.Run("amount "+amount, func(t *testing.T) {
			f := newFixture(t)
			f.wallet.EXPECT().Account().Return(ownerAddr, true)
			req := tierRequest()
			req.Amount = amount

			_, err := f.uc.AddTier(context.Background(), req)
			assert.ErrorIs(t, err, domain.ErrInvalidAmount)
		})
	}
}

func TestAddTierMintsMissingSubmissionID(t *testing.T) {
	f := newFixture(t)
	f.wallet.EXPECT().Account().Return(ownerAddr, true)
	f.journal.EXPECT().Reserve(mock.Anything, mock.MatchedBy(func(s domain.Submission) bool {
		return s.ID != uuid.Nil
	})).Return(domain.Submission{Status: domain.SubmissionSubmitted}, false, nil).Once()

	req := tierRequest()
	req.SubmissionID = ""
	_, err := f.uc.AddTier(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrTxInFlight)
}
