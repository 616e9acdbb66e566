// Package config provides configuration provider interfaces.
package config

import (
	logconfig "github.com/memecoins/memecoins-sdk/internal/config/log"
	rpcconfig "github.com/memecoins/memecoins-sdk/internal/config/rpc"
	"github.com/memecoins/memecoins-sdk/pkg/types"
)

// Provider 配置提供者接口
type Provider interface {
	// GetLog 获取日志配置
	GetLog() *logconfig.LogOptions

	// GetRPC 获取节点连接配置
	GetRPC() *rpcconfig.RPCOptions

	// GetWallet 获取钱包配置（原样返回用户配置，可能为空字段）
	GetWallet() *types.UserWalletConfig

	// GetContract 获取合约配置
	GetContract() *types.UserContractConfig
}
