package ethereum

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	goethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"crowdfund-web/internal/core/port"
	"crowdfund-web/internal/metrics"
)

var _ port.TierWriter = (*TierTransactor)(nil)

// Backend is what TierTransactor needs from a node. *ethclient.Client
// satisfies it.
type Backend interface {
	bind.ContractBackend
	bind.DeployBackend
}

// TierTransactor sends addTier transactions signed by a port.Signer.
type TierTransactor struct {
	backend Backend
	signer  port.Signer
	metrics *metrics.Metrics
}

func NewTierTransactor(backend Backend, signer port.Signer, m *metrics.Metrics) *TierTransactor {
	return &TierTransactor{backend: backend, signer: signer, metrics: m}
}

// AddTier estimates gas, signs and broadcasts addTier(name, amount).
func (t *TierTransactor) AddTier(ctx context.Context, from, campaign common.Address, name string, amount *big.Int) (*types.Transaction, error) {
	opts, err := t.signer.TransactOpts(ctx, from)
	if err != nil {
		return nil, err
	}
	bound := bind.NewBoundContract(campaign, campaignABI, t.backend, t.backend, t.backend)
	tx, err := bound.Transact(opts, methodAddTier, name, amount)
	t.metrics.Transaction(methodAddTier, err)
	if err != nil {
		return nil, err
	}
	return tx, nil
}

func (t *TierTransactor) WaitMined(ctx context.Context, tx *types.Transaction) (*types.Receipt, error) {
	return bind.WaitMined(ctx, t.backend, tx)
}

func (t *TierTransactor) Receipt(ctx context.Context, hash common.Hash) (*types.Receipt, error) {
	receipt, err := t.backend.TransactionReceipt(ctx, hash)
	if errors.Is(err, goethereum.NotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("receipt %s: %w", hash.Hex(), err)
	}
	return receipt, nil
}
