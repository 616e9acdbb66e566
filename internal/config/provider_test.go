package config

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"

	rpcconfig "github.com/memecoins/memecoins-sdk/internal/config/rpc"
	"github.com/memecoins/memecoins-sdk/pkg/interfaces/config"
	"github.com/memecoins/memecoins-sdk/pkg/types"
)

// TestProviderDefaults 测试空配置时的默认值
func TestProviderDefaults(t *testing.T) {
	provider := NewProvider(nil)

	assert.Equal(t, "info", provider.GetLog().Level)
	assert.Equal(t, 30*time.Second, provider.GetRPC().Timeout)
	assert.Empty(t, provider.GetRPC().URL)
	require.NotNil(t, provider.GetWallet())
	assert.Nil(t, provider.GetWallet().Secret)
	require.NotNil(t, provider.GetContract())
	assert.Nil(t, provider.GetContract().ArtifactDir)
}

// TestProviderUserConfig 测试用户配置覆盖
func TestProviderUserConfig(t *testing.T) {
	provider := NewProvider(&types.AppConfig{
		Log:    &types.UserLogConfig{Level: types.StringPtr("debug")},
		RPC:    &types.UserRPCConfig{URL: types.StringPtr("http://localhost:8545")},
		Wallet: &types.UserWalletConfig{Secret: types.StringPtr("0x01")},
		Contract: &types.UserContractConfig{
			AssetID: types.StringPtr("0x0000000000000000000000000000000000000000"),
		},
	})

	assert.Equal(t, "debug", provider.GetLog().Level)
	assert.Equal(t, "http://localhost:8545", provider.GetRPC().URL)
	assert.Equal(t, "0x01", *provider.GetWallet().Secret)
	assert.NotNil(t, provider.GetContract().AssetID)
}

type appOptions struct{ cfg *types.AppConfig }

func (a appOptions) GetAppConfig() *types.AppConfig { return a.cfg }

// TestModule 测试 fx 模块装配
func TestModule(t *testing.T) {
	var (
		provider config.Provider
		rpcOpts  *rpcconfig.RPCOptions
	)
	app := fx.New(
		fx.NopLogger,
		fx.Provide(func() config.AppOptions {
			return appOptions{cfg: &types.AppConfig{
				RPC: &types.UserRPCConfig{URL: types.StringPtr("http://node:8545")},
			}}
		}),
		Module(),
		fx.Populate(&provider, &rpcOpts),
	)
	require.NoError(t, app.Start(context.Background()))
	defer app.Stop(context.Background())

	assert.Equal(t, "http://node:8545", provider.GetRPC().URL)
	assert.Equal(t, "http://node:8545", rpcOpts.URL)
}
