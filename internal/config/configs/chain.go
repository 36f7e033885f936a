package configs

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// Chain configures access to the EVM network hosting the crowdfunding
// contracts. Defaults target Base Sepolia.
type Chain struct {
	// RPCURL is the JSON-RPC endpoint used for reads and transactions.
	RPCURL string `env:"RPC_URL" envDefault:"https://sepolia.base.org"`
	// ChainID is used to sign transactions (EIP-155).
	ChainID int64 `env:"ID" envDefault:"84532"`
	// FactoryAddress is the registry contract enumerating all campaigns.
	FactoryAddress common.Address `env:"FACTORY_ADDRESS,required,notEmpty"`
	// ReadTimeout bounds every batch of contract reads serving one page.
	ReadTimeout time.Duration `env:"READ_TIMEOUT" envDefault:"5s"`
	// LagGrace is how long non-gating reads may lag once a page is ready.
	LagGrace time.Duration `env:"LAG_GRACE" envDefault:"250ms"`
	// ConfirmTimeout bounds the wait for a submitted transaction receipt.
	ConfirmTimeout time.Duration `env:"CONFIRM_TIMEOUT" envDefault:"2m"`
	// ListingConcurrency caps concurrent card reads on listing pages.
	ListingConcurrency int `env:"LISTING_CONCURRENCY" envDefault:"8"`
}
