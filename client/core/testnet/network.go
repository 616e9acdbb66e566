// Package testnet launches an in-process chain with funded wallets for tests and local runs.
//
// End-to-end tests that call Setup or RequireArtifact skip unless the compiled
// contract is present as memecoins-contract.bin in ARTIFACT_DIR, which defaults
// to contracts/memecoins/out/release under the module root:
//
//	ARTIFACT_DIR=/path/to/out/release go test ./client/core/tokenfactory/... ./cmd/memecoins/...
//
// The bin file holds the hex creation bytecode, optionally 0x-prefixed.
package testnet

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient/simulated"
	"github.com/ethereum/go-ethereum/params"

	"github.com/memecoins/memecoins-sdk/client/core/transport"
	"github.com/memecoins/memecoins-sdk/client/core/wallet"
)

// Mnemonic 测试网钱包使用的固定助记词
const Mnemonic = "test test test test test test test test test test test junk"

// DefaultBlockGasLimit 默认区块 gas 上限
const DefaultBlockGasLimit uint64 = 30_000_000

// DefaultCoinAmount 每个钱包的默认初始余额（1000 ether）
var DefaultCoinAmount = new(big.Int).Mul(big.NewInt(1000), big.NewInt(params.Ether))

// WalletsConfig 测试网钱包配置
type WalletsConfig struct {
	NumWallets    int      // 钱包数量
	Balance       *big.Int // 每个钱包的初始余额
	BlockGasLimit uint64   // 区块 gas 上限
}

// DefaultWalletsConfig 两个钱包、默认余额
func DefaultWalletsConfig() WalletsConfig {
	return WalletsConfig{
		NumWallets:    2,
		Balance:       new(big.Int).Set(DefaultCoinAmount),
		BlockGasLimit: DefaultBlockGasLimit,
	}
}

// Network 内存中的模拟链
type Network struct {
	backend *simulated.Backend
	client  *Client
	wallets []*wallet.Wallet

	closeOnce sync.Once
	closeErr  error
}

// Launch 启动模拟链，并在创世块中为派生钱包注资
func Launch(ctx context.Context, cfg WalletsConfig) (*Network, error) {
	if cfg.NumWallets <= 0 {
		return nil, errors.New("testnet: at least one wallet is required")
	}
	if cfg.Balance == nil {
		cfg.Balance = new(big.Int).Set(DefaultCoinAmount)
	}
	if cfg.BlockGasLimit == 0 {
		cfg.BlockGasLimit = DefaultBlockGasLimit
	}

	signer, err := wallet.NewMnemonicSigner(Mnemonic, "")
	if err != nil {
		return nil, fmt.Errorf("testnet: %w", err)
	}
	wallets, err := signer.DeriveWallets(cfg.NumWallets, nil)
	if err != nil {
		return nil, fmt.Errorf("testnet: derive wallets: %w", err)
	}

	alloc := make(types.GenesisAlloc, len(wallets))
	for _, w := range wallets {
		alloc[w.Address()] = types.Account{Balance: new(big.Int).Set(cfg.Balance)}
	}

	backend := simulated.NewBackend(alloc, simulated.WithBlockGasLimit(cfg.BlockGasLimit))
	client := &Client{Client: backend.Client(), backend: backend}

	if _, err := client.ChainID(ctx); err != nil {
		_ = backend.Close()
		return nil, fmt.Errorf("testnet: probe chain id: %w", err)
	}

	for i, w := range wallets {
		wallets[i] = w.WithProvider(client)
	}

	return &Network{backend: backend, client: client, wallets: wallets}, nil
}

// Client 返回节点连接
func (n *Network) Client() transport.Provider {
	return n.client
}

// Wallets 返回已注资的钱包（按派生索引排序）
func (n *Network) Wallets() []*wallet.Wallet {
	out := make([]*wallet.Wallet, len(n.wallets))
	copy(out, n.wallets)
	return out
}

// Commit 手动出块
func (n *Network) Commit() common.Hash {
	return n.client.commit()
}

// Close 关闭模拟链
func (n *Network) Close() error {
	n.closeOnce.Do(func() {
		n.closeErr = n.backend.Close()
	})
	return n.closeErr
}

// Client 每笔交易发送后立即出块的模拟链客户端
type Client struct {
	simulated.Client

	backend *simulated.Backend
	mu      sync.Mutex
}

var _ transport.Provider = (*Client)(nil)

// SendTransaction 发送交易并出块
func (c *Client) SendTransaction(ctx context.Context, tx *types.Transaction) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.Client.SendTransaction(ctx, tx); err != nil {
		return err
	}
	c.backend.Commit()
	return nil
}

func (c *Client) commit() common.Hash {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.backend.Commit()
}
