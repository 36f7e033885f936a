package wallet

import (
	"context"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crowdfund-web/internal/core/domain"
)

const passphrase = "correct horse"

// newKeystoreDir writes n light-scrypt keys into a temporary directory.
func newKeystoreDir(t *testing.T, n int) (string, []common.Address) {
	t.Helper()
	dir := t.TempDir()
	ks := keystore.NewKeyStore(dir, keystore.LightScryptN, keystore.LightScryptP)
	addrs := make([]common.Address, n)
	for i := range addrs {
		acct, err := ks.NewAccount(passphrase)
		require.NoError(t, err)
		addrs[i] = acct.Address
	}
	return dir, addrs
}

func TestOpenEmptyDir(t *testing.T) {
	w, err := Open("", "", 84532)
	require.NoError(t, err)
	assert.Empty(t, w.Accounts())

	_, ok := w.Account()
	assert.False(t, ok)
	assert.ErrorIs(t, w.Connect(common.HexToAddress("0x01")), domain.ErrUnknownAccount)
}

func TestOpenWrongPassphrase(t *testing.T) {
	dir, _ := newKeystoreDir(t, 1)
	_, err := Open(dir, "wrong", 84532)
	assert.Error(t, err)
}

func TestConnectDisconnect(t *testing.T) {
	dir, addrs := newKeystoreDir(t, 2)
	w, err := Open(dir, passphrase, 84532)
	require.NoError(t, err)
	assert.ElementsMatch(t, addrs, w.Accounts())

	_, ok := w.Account()
	assert.False(t, ok, "nothing connected after open")

	require.NoError(t, w.Connect(addrs[1]))
	got, ok := w.Account()
	require.True(t, ok)
	assert.Equal(t, addrs[1], got)

	err = w.Connect(common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8"))
	assert.ErrorIs(t, err, domain.ErrUnknownAccount)
	got, _ = w.Account()
	assert.Equal(t, addrs[1], got, "failed connect keeps the current account")

	w.Disconnect()
	_, ok = w.Account()
	assert.False(t, ok)
}

func TestTransactOptsSigns(t *testing.T) {
	dir, addrs := newKeystoreDir(t, 1)
	w, err := Open(dir, passphrase, 84532)
	require.NoError(t, err)

	ctx := context.Background()
	opts, err := w.TransactOpts(ctx, addrs[0])
	require.NoError(t, err)
	assert.Equal(t, addrs[0], opts.From)
	assert.Equal(t, ctx, opts.Context)

	tx := types.NewTx(&types.LegacyTx{Nonce: 0, GasPrice: big.NewInt(1), Gas: 21000})
	signed, err := opts.Signer(addrs[0], tx)
	require.NoError(t, err)
	sender, err := types.Sender(types.LatestSignerForChainID(big.NewInt(84532)), signed)
	require.NoError(t, err)
	assert.Equal(t, addrs[0], sender)

	_, err = w.TransactOpts(ctx, common.HexToAddress("0x02"))
	assert.ErrorIs(t, err, domain.ErrUnknownAccount)
}
