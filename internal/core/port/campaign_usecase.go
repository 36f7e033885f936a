package port

import (
	"context"

	"github.com/ethereum/go-ethereum/common"

	"crowdfund-web/internal/core/domain"
)

// CampaignUseCase defines the operations behind the campaign pages. It is
// the primary port into the application.
type CampaignUseCase interface {
	// ListCampaigns builds one card per factory campaign. A failed factory
	// read yields a listing with Loaded=false rather than an error.
	ListCampaigns(ctx context.Context) (*CampaignListing, error)

	// OwnerCampaigns is ListCampaigns restricted to campaigns owned by owner.
	OwnerCampaigns(ctx context.Context, owner string) (*CampaignListing, error)

	// CampaignDetail reads and derives one campaign. A missing or malformed
	// address fails before any contract call.
	CampaignDetail(ctx context.Context, address string) (*domain.CampaignView, error)

	// AddTier submits exactly one addTier transaction per submission ID and
	// waits for its confirmation.
	AddTier(ctx context.Context, req AddTierRequest) (*domain.Submission, error)

	// StartCampaign returns the connected account, or
	// domain.ErrWalletNotConnected.
	StartCampaign(ctx context.Context) (common.Address, error)
}

// CampaignListing is a rendered set of campaign cards.
type CampaignListing struct {
	// Loaded is false when the factory could not be read.
	Loaded bool
	Cards  []domain.CampaignCard
}

// AddTierRequest carries the raw tier form values.
type AddTierRequest struct {
	Campaign     string
	Name         string
	Amount       string
	SubmissionID string
}
