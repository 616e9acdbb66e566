package wallet_test

import (
	"context"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/memecoins/memecoins-sdk/client/core/testnet"
	"github.com/memecoins/memecoins-sdk/client/core/wallet"
)

func TestTransactOpts(t *testing.T) {
	network := testnet.Launched(t, testnet.DefaultWalletsConfig())
	w := network.Wallets()[0]

	opts, err := w.TransactOpts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, w.Address(), opts.From)
	assert.NotNil(t, opts.Signer)
	assert.NotNil(t, opts.Context)
}

func TestTransfer(t *testing.T) {
	ctx := context.Background()
	network := testnet.Launched(t, testnet.WalletsConfig{NumWallets: 1})

	w, err := wallet.NewFromPrivateKey("0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80", network.Client())
	require.NoError(t, err)
	assert.Equal(t, network.Wallets()[0].Address(), w.Address())

	to := common.HexToAddress("0x00000000000000000000000000000000000000cc")
	amount := big.NewInt(1_000_000_000)
	receipt, err := w.Transfer(ctx, to, amount)
	require.NoError(t, err)
	assert.Equal(t, types.ReceiptStatusSuccessful, receipt.Status)

	got, err := network.Client().BalanceAt(ctx, to, nil)
	require.NoError(t, err)
	assert.Equal(t, amount, got)

	_, err = w.Transfer(ctx, to, big.NewInt(-1))
	assert.Error(t, err)
}

func TestWithProvider(t *testing.T) {
	network := testnet.Launched(t, testnet.DefaultWalletsConfig())

	offline, err := wallet.NewFromMnemonic(testnet.Mnemonic, "", "", nil)
	require.NoError(t, err)
	assert.Nil(t, offline.Provider())

	online := offline.WithProvider(network.Client())
	assert.Nil(t, offline.Provider(), "原对象不变")

	balance, err := online.Balance(context.Background())
	require.NoError(t, err)
	assert.Equal(t, testnet.DefaultCoinAmount, balance)
}
