package config

import (
	"github.com/memecoins/memecoins-sdk/internal/config/log"
	"github.com/memecoins/memecoins-sdk/internal/config/rpc"
	"github.com/memecoins/memecoins-sdk/pkg/interfaces/config"
	"github.com/memecoins/memecoins-sdk/pkg/types"
)

// Provider 实现配置提供者接口
type Provider struct {
	appConfig *types.AppConfig
}

// NewProvider 创建配置提供者
func NewProvider(appConfig *types.AppConfig) config.Provider {
	if appConfig == nil {
		appConfig = &types.AppConfig{}
	}
	return &Provider{
		appConfig: appConfig,
	}
}

// GetLog 获取日志配置
func (p *Provider) GetLog() *log.LogOptions {
	return log.New(p.appConfig.Log).GetOptions()
}

// GetRPC 获取节点连接配置
func (p *Provider) GetRPC() *rpc.RPCOptions {
	return rpc.New(p.appConfig.RPC).GetOptions()
}

// GetWallet 获取钱包配置
func (p *Provider) GetWallet() *types.UserWalletConfig {
	if p.appConfig.Wallet == nil {
		return &types.UserWalletConfig{}
	}
	return p.appConfig.Wallet
}

// GetContract 获取合约配置
func (p *Provider) GetContract() *types.UserContractConfig {
	if p.appConfig.Contract == nil {
		return &types.UserContractConfig{}
	}
	return p.appConfig.Contract
}
