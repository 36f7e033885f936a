package ethereum

import (
	"context"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"

	"crowdfund-web/internal/core/domain"
	"crowdfund-web/internal/core/port"
	"crowdfund-web/internal/metrics"
)

var _ port.CampaignFactory = (*FactoryReader)(nil)

// FactoryReader lists the campaigns registered in one factory contract.
type FactoryReader struct {
	caller  bind.ContractCaller
	address common.Address
	metrics *metrics.Metrics
}

func NewFactoryReader(caller bind.ContractCaller, address common.Address, m *metrics.Metrics) *FactoryReader {
	return &FactoryReader{caller: caller, address: address, metrics: m}
}

type campaignTuple struct {
	CampaignAddress common.Address
	Owner           common.Address
	Name            string
}

// AllCampaigns returns the registry in contract order.
func (f *FactoryReader) AllCampaigns(ctx context.Context) ([]domain.CampaignSummary, error) {
	out, err := call(ctx, f.caller, f.metrics, factoryABI, f.address, methodAllCampaigns)
	if err != nil {
		return nil, err
	}
	raw, err := convert[[]campaignTuple](out[0], methodAllCampaigns)
	if err != nil {
		return nil, err
	}
	list := make([]domain.CampaignSummary, len(raw))
	for i, c := range raw {
		list[i] = domain.CampaignSummary{Address: c.CampaignAddress, Owner: c.Owner, Name: c.Name}
	}
	return list, nil
}
