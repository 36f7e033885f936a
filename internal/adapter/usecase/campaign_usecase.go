package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"crowdfund-web/internal/core/domain"
	"crowdfund-web/internal/core/port"
)

// CampaignUseCase implements port.CampaignUseCase on top of the contract
// read/write ports, the wallet and the submission journal.
type CampaignUseCase struct {
	reader  port.CampaignReader
	factory port.CampaignFactory
	writer  port.TierWriter
	journal port.SubmissionJournal
	wallet  port.Wallet
	logger  *slog.Logger

	now                func() time.Time
	location           *time.Location
	readTimeout        time.Duration
	lagGrace           time.Duration
	confirmTimeout     time.Duration
	listingConcurrency int
}

// Option configures a CampaignUseCase.
type Option func(*CampaignUseCase)

// WithClock overrides the time source used for deadline checks.
func WithClock(now func() time.Time) Option {
	return func(u *CampaignUseCase) { u.now = now }
}

// WithLocation sets the location dates are rendered in.
func WithLocation(loc *time.Location) Option {
	return func(u *CampaignUseCase) { u.location = loc }
}

// WithReadTimeout bounds the reads serving one page.
func WithReadTimeout(d time.Duration) Option {
	return func(u *CampaignUseCase) { u.readTimeout = d }
}

// WithLagGrace sets how long non-gating reads may lag a ready page.
func WithLagGrace(d time.Duration) Option {
	return func(u *CampaignUseCase) { u.lagGrace = d }
}

// WithConfirmTimeout bounds the wait for a transaction receipt.
func WithConfirmTimeout(d time.Duration) Option {
	return func(u *CampaignUseCase) { u.confirmTimeout = d }
}

// WithListingConcurrency caps concurrent card reads.
func WithListingConcurrency(n int) Option {
	return func(u *CampaignUseCase) { u.listingConcurrency = n }
}

// WithLogger sets the logger for degraded reads.
func WithLogger(l *slog.Logger) Option {
	return func(u *CampaignUseCase) { u.logger = l }
}

// NewCampaignUseCase wires the use case. Defaults: UTC dates, 5s reads,
// 250ms lag grace, 2m confirmation timeout, 8 concurrent cards.
func NewCampaignUseCase(
	reader port.CampaignReader,
	factory port.CampaignFactory,
	writer port.TierWriter,
	journal port.SubmissionJournal,
	wallet port.Wallet,
	opts ...Option,
) *CampaignUseCase {
	u := &CampaignUseCase{
		reader:             reader,
		factory:            factory,
		writer:             writer,
		journal:            journal,
		wallet:             wallet,
		logger:             slog.Default(),
		now:                time.Now,
		location:           time.UTC,
		readTimeout:        5 * time.Second,
		lagGrace:           250 * time.Millisecond,
		confirmTimeout:     2 * time.Minute,
		listingConcurrency: 8,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// StartCampaign returns the connected account that will own a new campaign.
func (u *CampaignUseCase) StartCampaign(_ context.Context) (common.Address, error) {
	account, ok := u.wallet.Account()
	if !ok {
		return common.Address{}, domain.ErrWalletNotConnected
	}
	return account, nil
}

var _ port.CampaignUseCase = (*CampaignUseCase)(nil)
