package port

import (
	"context"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
)

// Wallet is the session provider: it knows the connected account.
type Wallet interface {
	// Account returns the connected account, if any.
	Account() (common.Address, bool)
	// Accounts lists the accounts that can be connected.
	Accounts() []common.Address
	Connect(account common.Address) error
	Disconnect()
}

// Signer produces transaction options signing for from.
type Signer interface {
	TransactOpts(ctx context.Context, from common.Address) (*bind.TransactOpts, error)
}
