package port

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"crowdfund-web/internal/core/domain"
)

// CampaignReader is the read surface of a single campaign contract. Each
// method is one independent contract call. It is an outbound port.
type CampaignReader interface {
	Name(ctx context.Context, campaign common.Address) (string, error)
	Description(ctx context.Context, campaign common.Address) (string, error)
	// CreationDate and Deadline return integer-second unix timestamps.
	CreationDate(ctx context.Context, campaign common.Address) (*big.Int, error)
	Deadline(ctx context.Context, campaign common.Address) (*big.Int, error)
	Goal(ctx context.Context, campaign common.Address) (*big.Int, error)
	// Balance is the campaign's funded balance (getContractBalance).
	Balance(ctx context.Context, campaign common.Address) (*big.Int, error)
	Tiers(ctx context.Context, campaign common.Address) ([]domain.Tier, error)
	Owner(ctx context.Context, campaign common.Address) (common.Address, error)
	State(ctx context.Context, campaign common.Address) (domain.State, error)
}

// CampaignFactory enumerates deployed campaigns.
type CampaignFactory interface {
	AllCampaigns(ctx context.Context) ([]domain.CampaignSummary, error)
}
