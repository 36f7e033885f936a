package usecase

import (
	"context"
	"io"
	"log/slog"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crowdfund-web/internal/core/domain"
	"crowdfund-web/internal/core/port/mocks"
)

var (
	campaignAddr = common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3")
	ownerAddr    = common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
	otherAddr    = common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")
	fixedNow     = time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
)

type fixture struct {
	reader  *mocks.MockCampaignReader
	factory *mocks.MockCampaignFactory
	writer  *mocks.MockTierWriter
	journal *mocks.MockSubmissionJournal
	wallet  *mocks.MockWallet
	uc      *CampaignUseCase
}

func newFixture(t *testing.T, opts ...Option) *fixture {
	t.Helper()
	f := &fixture{
		reader:  mocks.NewMockCampaignReader(t),
		factory: mocks.NewMockCampaignFactory(t),
		writer:  mocks.NewMockTierWriter(t),
		journal: mocks.NewMockSubmissionJournal(t),
		wallet:  mocks.NewMockWallet(t),
	}
	base := []Option{
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		WithClock(func() time.Time { return fixedNow }),
		WithReadTimeout(time.Second),
		WithLagGrace(50 * time.Millisecond),
	}
	f.uc = NewCampaignUseCase(f.reader, f.factory, f.writer, f.journal, f.wallet, append(base, opts...)...)
	return f
}

// blockString and blockInt simulate a read that never answers.
func blockString(ctx context.Context, _ common.Address) (string, error) {
	<-ctx.Done()
	return "", ctx.Err()
}

func blockInt(ctx context.Context, _ common.Address) (*big.Int, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func TestStartCampaign(t *testing.T) {
	f := newFixture(t)
	f.wallet.EXPECT().Account().Return(ownerAddr, true).Once()
	f.wallet.EXPECT().Account().Return(common.Address{}, false).Once()

	got, err := f.uc.StartCampaign(context.Background())
	require.NoError(t, err)
	assert.Equal(t, ownerAddr, got)

	_, err = f.uc.StartCampaign(context.Background())
	assert.ErrorIs(t, err, domain.ErrWalletNotConnected)
}

func TestReadTimeoutOption(t *testing.T) {
	f := newFixture(t, WithReadTimeout(10*time.Millisecond), WithListingConcurrency(2), WithConfirmTimeout(time.Second))
	assert.Equal(t, 10*time.Millisecond, f.uc.readTimeout)
	assert.Equal(t, 2, f.uc.listingConcurrency)
	assert.Equal(t, time.Second, f.uc.confirmTimeout)
	assert.Equal(t, time.UTC, f.uc.location)
}
