package ethereum

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"

	"crowdfund-web/internal/core/domain"
	"crowdfund-web/internal/core/port"
	"crowdfund-web/internal/metrics"
)

var _ port.CampaignReader = (*CampaignReader)(nil)

// CampaignReader implements port.CampaignReader with one eth_call per field.
type CampaignReader struct {
	caller  bind.ContractCaller
	metrics *metrics.Metrics
}

// NewCampaignReader returns a reader calling through caller. m may be nil.
func NewCampaignReader(caller bind.ContractCaller, m *metrics.Metrics) *CampaignReader {
	return &CampaignReader{caller: caller, metrics: m}
}

type tierTuple struct {
	Name    string
	Amount  *big.Int
	Backers *big.Int
}

func (r *CampaignReader) Name(ctx context.Context, campaign common.Address) (string, error) {
	return r.str(ctx, campaign, methodName)
}

func (r *CampaignReader) Description(ctx context.Context, campaign common.Address) (string, error) {
	return r.str(ctx, campaign, methodDescription)
}

func (r *CampaignReader) CreationDate(ctx context.Context, campaign common.Address) (*big.Int, error) {
	return r.uint256(ctx, campaign, methodCreationDate)
}

func (r *CampaignReader) Deadline(ctx context.Context, campaign common.Address) (*big.Int, error) {
	return r.uint256(ctx, campaign, methodDeadline)
}

func (r *CampaignReader) Goal(ctx context.Context, campaign common.Address) (*big.Int, error) {
	return r.uint256(ctx, campaign, methodGoal)
}

func (r *CampaignReader) Balance(ctx context.Context, campaign common.Address) (*big.Int, error) {
	return r.uint256(ctx, campaign, methodBalance)
}

func (r *CampaignReader) Tiers(ctx context.Context, campaign common.Address) ([]domain.Tier, error) {
	out, err := call(ctx, r.caller, r.metrics, campaignABI, campaign, methodTiers)
	if err != nil {
		return nil, err
	}
	raw, err := convert[[]tierTuple](out[0], methodTiers)
	if err != nil {
		return nil, err
	}
	tiers := make([]domain.Tier, len(raw))
	for i, t := range raw {
		tiers[i] = domain.Tier{Name: t.Name, Amount: t.Amount, Backers: t.Backers}
	}
	return tiers, nil
}

func (r *CampaignReader) Owner(ctx context.Context, campaign common.Address) (common.Address, error) {
	out, err := call(ctx, r.caller, r.metrics, campaignABI, campaign, methodOwner)
	if err != nil {
		return common.Address{}, err
	}
	return single[common.Address](out, methodOwner)
}

func (r *CampaignReader) State(ctx context.Context, campaign common.Address) (domain.State, error) {
	out, err := call(ctx, r.caller, r.metrics, campaignABI, campaign, methodState)
	if err != nil {
		return domain.StateUnknown, err
	}
	v, err := single[uint8](out, methodState)
	if err != nil {
		return domain.StateUnknown, err
	}
	return domain.StateFromUint8(v), nil
}

func (r *CampaignReader) str(ctx context.Context, campaign common.Address, method string) (string, error) {
	out, err := call(ctx, r.caller, r.metrics, campaignABI, campaign, method)
	if err != nil {
		return "", err
	}
	return single[string](out, method)
}

func (r *CampaignReader) uint256(ctx context.Context, campaign common.Address, method string) (*big.Int, error) {
	out, err := call(ctx, r.caller, r.metrics, campaignABI, campaign, method)
	if err != nil {
		return nil, err
	}
	return single[*big.Int](out, method)
}
