// Package wallet provides the process-wide keystore wallet: a set of
// unlocked local accounts, at most one of them connected at a time.
package wallet

import (
	"context"
	"fmt"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/common"

	"crowdfund-web/internal/core/domain"
	"crowdfund-web/internal/core/port"
)

var (
	_ port.Wallet = (*Keystore)(nil)
	_ port.Signer = (*Keystore)(nil)
)

// Keystore implements port.Wallet and port.Signer over a go-ethereum
// keystore directory.
type Keystore struct {
	ks      *keystore.KeyStore
	chainID *big.Int

	mu        sync.RWMutex
	connected *common.Address
}

// Open loads every key in dir and unlocks it with passphrase. An empty dir
// yields a wallet without accounts.
func Open(dir, passphrase string, chainID int64) (*Keystore, error) {
	w := &Keystore{chainID: big.NewInt(chainID)}
	if dir == "" {
		return w, nil
	}
	w.ks = keystore.NewKeyStore(dir, keystore.StandardScryptN, keystore.StandardScryptP)
	for _, acct := range w.ks.Accounts() {
		if err := w.ks.Unlock(acct, passphrase); err != nil {
			return nil, fmt.Errorf("unlock %s: %w", acct.Address.Hex(), err)
		}
	}
	return w, nil
}

func (w *Keystore) Account() (common.Address, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if w.connected == nil {
		return common.Address{}, false
	}
	return *w.connected, true
}

func (w *Keystore) Accounts() []common.Address {
	if w.ks == nil {
		return nil
	}
	list := w.ks.Accounts()
	out := make([]common.Address, len(list))
	for i, a := range list {
		out[i] = a.Address
	}
	return out
}

// Connect makes account the connected account. It must be in the keystore.
func (w *Keystore) Connect(account common.Address) error {
	if w.ks == nil || !w.ks.HasAddress(account) {
		return fmt.Errorf("%w: %s", domain.ErrUnknownAccount, account.Hex())
	}
	w.mu.Lock()
	w.connected = &account
	w.mu.Unlock()
	return nil
}

func (w *Keystore) Disconnect() {
	w.mu.Lock()
	w.connected = nil
	w.mu.Unlock()
}

// TransactOpts signs with the unlocked key of from.
func (w *Keystore) TransactOpts(ctx context.Context, from common.Address) (*bind.TransactOpts, error) {
	if w.ks == nil || !w.ks.HasAddress(from) {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownAccount, from.Hex())
	}
	opts, err := bind.NewKeyStoreTransactorWithChainID(w.ks, accounts.Account{Address: from}, w.chainID)
	if err != nil {
		return nil, err
	}
	opts.Context = ctx
	return opts, nil
}
