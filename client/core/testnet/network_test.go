package testnet

import (
	"context"
	"math/big"
	"os"
	"path/filepath"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLaunch(t *testing.T) {
	ctx := context.Background()
	balance := big.NewInt(1_000_000_000_000_000_000)
	network := Launched(t, WalletsConfig{NumWallets: 3, Balance: balance})

	wallets := network.Wallets()
	require.Len(t, wallets, 3)
	assert.Equal(t, common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"), wallets[0].Address())
	assert.Equal(t, common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8"), wallets[1].Address())

	for _, w := range wallets {
		got, err := w.Balance(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, balance.Cmp(got), "wallet %s balance %s", w.Address().Hex(), got)
	}

	chainID, err := network.Client().ChainID(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1337), chainID.Int64())
}

func TestLaunchInvalid(t *testing.T) {
	_, err := Launch(context.Background(), WalletsConfig{})
	assert.Error(t, err)
}

func TestAutoCommit(t *testing.T) {
	ctx := context.Background()
	network := Launched(t, DefaultWalletsConfig())
	wallets := network.Wallets()

	before, err := network.Client().BlockNumber(ctx)
	require.NoError(t, err)

	amount := big.NewInt(12345)
	receipt, err := wallets[0].Transfer(ctx, wallets[1].Address(), amount)
	require.NoError(t, err)
	assert.Equal(t, before+1, receipt.BlockNumber.Uint64())

	got, err := wallets[1].Balance(ctx)
	require.NoError(t, err)
	assert.Equal(t, new(big.Int).Add(DefaultCoinAmount, amount), got)

	network.Commit()
	after, err := network.Client().BlockNumber(ctx)
	require.NoError(t, err)
	assert.Equal(t, before+2, after)
}

func TestClose(t *testing.T) {
	network, err := Launch(context.Background(), DefaultWalletsConfig())
	require.NoError(t, err)
	require.NoError(t, network.Close())
	assert.NoError(t, network.Close())
}

func TestArtifactDir(t *testing.T) {
	t.Setenv("ARTIFACT_DIR", "/tmp/custom")
	assert.Equal(t, "/tmp/custom", ArtifactDir())

	t.Setenv("ARTIFACT_DIR", "")
	dir := ArtifactDir()
	assert.True(t, filepath.IsAbs(dir))
	_, err := os.Stat(filepath.Join(dir, "memecoins-contract-abi.json"))
	assert.NoError(t, err)
}
