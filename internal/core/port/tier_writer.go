package port

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// TierWriter submits addTier transactions and observes their receipts.
type TierWriter interface {
	// AddTier signs with from and sends addTier(name, amount) to campaign.
	AddTier(ctx context.Context, from, campaign common.Address, name string, amount *big.Int) (*types.Transaction, error)
	// WaitMined blocks until tx is included or ctx is done.
	WaitMined(ctx context.Context, tx *types.Transaction) (*types.Receipt, error)
	// Receipt returns the receipt of hash, or nil when it is not mined yet.
	Receipt(ctx context.Context, hash common.Hash) (*types.Receipt, error)
}
