package testnet

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/memecoins/memecoins-sdk/client/core/tokenfactory"
	"github.com/memecoins/memecoins-sdk/client/core/wallet"
	"github.com/memecoins/memecoins-sdk/contracts/memecoins"
)

// DefaultFeeAmount 测试部署使用的创建资产费用
const DefaultFeeAmount uint64 = 50

// ArtifactDir 返回合约产物目录
//
// 优先使用 ARTIFACT_DIR 环境变量，否则从当前目录向上查找 go.mod 所在的仓库根目录。
func ArtifactDir() string {
	if dir := os.Getenv("ARTIFACT_DIR"); dir != "" {
		return dir
	}
	cwd, err := os.Getwd()
	if err != nil {
		return memecoins.DefaultArtifactDir
	}
	for dir := cwd; ; dir = filepath.Dir(dir) {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return filepath.Join(dir, memecoins.DefaultArtifactDir)
		}
		if parent := filepath.Dir(dir); parent == dir {
			return memecoins.DefaultArtifactDir
		}
	}
}

// RequireArtifact 合约字节码未构建时跳过测试
func RequireArtifact(t testing.TB) string {
	t.Helper()
	dir := ArtifactDir()
	if !memecoins.Available(dir) {
		t.Skipf("合约产物不存在: %s", memecoins.BinaryPath(dir))
	}
	return dir
}

// Launched 启动测试网并在测试结束时关闭
func Launched(t testing.TB, cfg WalletsConfig) *Network {
	t.Helper()
	network, err := Launch(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = network.Close() })
	return network
}

// Setup 启动两钱包测试网，由部署者部署并初始化代币工厂
//
// 收费配置为原生币 DefaultFeeAmount，收费地址为部署者。返回 (合约, 部署者, 普通用户)。
func Setup(t testing.TB) (*tokenfactory.Contract, *wallet.Wallet, *wallet.Wallet) {
	t.Helper()
	dir := RequireArtifact(t)

	network := Launched(t, DefaultWalletsConfig())
	wallets := network.Wallets()
	deployer, user := wallets[1], wallets[0]

	contract, err := tokenfactory.Deploy(context.Background(), deployer, tokenfactory.FeeInfo{
		Amount:  DefaultFeeAmount,
		Address: deployer.Address(),
	}, tokenfactory.WithArtifactDir(dir))
	require.NoError(t, err)

	return contract, deployer, user
}
