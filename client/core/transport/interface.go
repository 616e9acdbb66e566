// Package transport provides the node connection used by the SDK and the CLI.
package transport

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"

	rpcconfig "github.com/memecoins/memecoins-sdk/internal/config/rpc"
)

// Provider 节点访问接口 - 合约绑定、部署与钱包共用的唯一通道
//
// *Client（ethclient）与测试网络的 simulated 客户端都满足该接口。
type Provider interface {
	bind.ContractBackend
	bind.DeployBackend

	// ChainID 获取链ID
	ChainID(ctx context.Context) (*big.Int, error)

	// BalanceAt 获取账户原生币余额，blockNumber 为 nil 表示最新区块
	BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error)

	// BlockNumber 获取最新区块高度
	BlockNumber(ctx context.Context) (uint64, error)
}

// ClientConfig 客户端配置
type ClientConfig struct {
	// 单次连接探测超时
	Timeout time.Duration `json:"timeout"`
	// 失败后的重试次数（不含首次）
	RetryAttempts int `json:"retry_attempts"`
	// 重试间隔
	RetryBackoff time.Duration `json:"retry_backoff"`
}

// DefaultClientConfig 返回默认客户端配置
func DefaultClientConfig() ClientConfig {
	opts := rpcconfig.New(nil).GetOptions()
	return ClientConfigFromOptions(opts)
}

// ClientConfigFromOptions 从 RPC 配置选项构造客户端配置
func ClientConfigFromOptions(opts *rpcconfig.RPCOptions) ClientConfig {
	return ClientConfig{
		Timeout:       opts.Timeout,
		RetryAttempts: opts.RetryAttempts,
		RetryBackoff:  opts.RetryBackoff,
	}
}
