package transport

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"

	logInterface "github.com/memecoins/memecoins-sdk/pkg/interfaces/infrastructure/log"
)

// ErrNoEndpoint 未配置节点地址
var ErrNoEndpoint = errors.New("can't find NODE_URL")

// Client 基于 ethclient 的节点客户端
type Client struct {
	*ethclient.Client

	url    string
	config ClientConfig

	mu      sync.RWMutex
	chainID *big.Int
}

var _ Provider = (*Client)(nil)

// Connect 连接节点并探测链ID
//
// 每次尝试在 Timeout 内完成拨号与 eth_chainId 探测，失败后按 RetryBackoff 重试 RetryAttempts 次。
func Connect(ctx context.Context, url string, config ClientConfig, logger logInterface.Logger) (*Client, error) {
	if url == "" {
		return nil, ErrNoEndpoint
	}
	if config.Timeout <= 0 {
		config.Timeout = DefaultClientConfig().Timeout
	}

	var lastErr error
	for attempt := 0; attempt <= config.RetryAttempts; attempt++ {
		if attempt > 0 {
			if logger != nil {
				logger.Warnf("连接节点失败，%s 后重试 (%d/%d): %v", config.RetryBackoff, attempt, config.RetryAttempts, lastErr)
			}
			select {
			case <-ctx.Done():
				return nil, fmt.Errorf("connect %s: %w", url, ctx.Err())
			case <-time.After(config.RetryBackoff):
			}
		}

		client, err := dial(ctx, url, config)
		if err == nil {
			if logger != nil {
				logger.With("url", url, "chain_id", client.chainID.String()).Debug("已连接节点")
			}
			return client, nil
		}
		lastErr = err
	}

	return nil, fmt.Errorf("connect %s after %d attempts: %w", url, config.RetryAttempts+1, lastErr)
}

func dial(ctx context.Context, url string, config ClientConfig) (*Client, error) {
	probeCtx, cancel := context.WithTimeout(ctx, config.Timeout)
	defer cancel()

	rpcClient, err := rpc.DialContext(probeCtx, url)
	if err != nil {
		return nil, fmt.Errorf("dial: %w", err)
	}

	eth := ethclient.NewClient(rpcClient)
	chainID, err := eth.ChainID(probeCtx)
	if err != nil {
		eth.Close()
		return nil, fmt.Errorf("probe chain id: %w", err)
	}

	return &Client{
		Client:  eth,
		url:     url,
		config:  config,
		chainID: chainID,
	}, nil
}

// URL 返回节点地址
func (c *Client) URL() string {
	return c.url
}

// ChainID 返回连接时探测到的链ID
func (c *Client) ChainID(ctx context.Context) (*big.Int, error) {
	c.mu.RLock()
	id := c.chainID
	c.mu.RUnlock()
	if id != nil {
		return new(big.Int).Set(id), nil
	}

	id, err := c.Client.ChainID(ctx)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	c.chainID = id
	c.mu.Unlock()
	return new(big.Int).Set(id), nil
}
