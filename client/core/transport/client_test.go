package transport

import (
	"context"
	"math/big"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"

	logpkg "github.com/memecoins/memecoins-sdk/internal/core/infrastructure/log"
	rpcconfig "github.com/memecoins/memecoins-sdk/internal/config/rpc"
)

// ethService 实现最小的 eth 命名空间
type ethService struct {
	chainID int64
	calls   atomic.Int32
	fail    atomic.Int32 // 前 N 次调用返回错误
}

func (s *ethService) ChainId() (*hexutil.Big, error) {
	s.calls.Add(1)
	if s.fail.Load() > 0 {
		s.fail.Add(-1)
		return nil, assert.AnError
	}
	return (*hexutil.Big)(big.NewInt(s.chainID)), nil
}

func (s *ethService) BlockNumber() hexutil.Uint64 {
	return 7
}

func newNode(t *testing.T, svc *ethService) string {
	t.Helper()
	server := rpc.NewServer()
	require.NoError(t, server.RegisterName("eth", svc))
	httpServer := httptest.NewServer(server)
	t.Cleanup(func() {
		httpServer.Close()
		server.Stop()
	})
	return httpServer.URL
}

func fastConfig(retries int) ClientConfig {
	return ClientConfig{Timeout: 2 * time.Second, RetryAttempts: retries, RetryBackoff: 10 * time.Millisecond}
}

func TestConnect(t *testing.T) {
	svc := &ethService{chainID: 1337}
	url := newNode(t, svc)

	client, err := Connect(context.Background(), url, fastConfig(0), logpkg.NewNop())
	require.NoError(t, err)
	defer client.Close()

	assert.Equal(t, url, client.URL())

	id, err := client.ChainID(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1337), id.Int64())

	// 链ID在连接时缓存
	_, err = client.ChainID(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(1), svc.calls.Load())

	height, err := client.BlockNumber(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(7), height)
}

func TestConnectRetry(t *testing.T) {
	svc := &ethService{chainID: 5}
	svc.fail.Store(2)
	url := newNode(t, svc)

	client, err := Connect(context.Background(), url, fastConfig(2), logpkg.NewNop())
	require.NoError(t, err)
	defer client.Close()
	assert.Equal(t, int32(3), svc.calls.Load())
}

func TestConnectExhausted(t *testing.T) {
	svc := &ethService{chainID: 5}
	svc.fail.Store(10)
	url := newNode(t, svc)

	_, err := Connect(context.Background(), url, fastConfig(1), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "after 2 attempts")
	assert.Equal(t, int32(2), svc.calls.Load())
}

func TestConnectNoEndpoint(t *testing.T) {
	_, err := Connect(context.Background(), "", fastConfig(0), nil)
	assert.ErrorIs(t, err, ErrNoEndpoint)
}

func TestConnectCanceled(t *testing.T) {
	svc := &ethService{chainID: 5}
	svc.fail.Store(10)
	url := newNode(t, svc)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Connect(ctx, url, ClientConfig{Timeout: time.Second, RetryAttempts: 3, RetryBackoff: time.Hour}, nil)
	require.Error(t, err)
}

func TestModule(t *testing.T) {
	svc := &ethService{chainID: 31337}
	url := newNode(t, svc)

	var provider Provider
	app := fx.New(
		fx.NopLogger,
		fx.Supply(&rpcconfig.RPCOptions{URL: url, Timeout: time.Second}),
		Module(),
		fx.Populate(&provider),
	)
	require.NoError(t, app.Err())
	require.NoError(t, app.Start(context.Background()))

	id, err := provider.ChainID(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(31337), id.Int64())

	require.NoError(t, app.Stop(context.Background()))
}

func TestDefaultClientConfig(t *testing.T) {
	cfg := DefaultClientConfig()
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, 3, cfg.RetryAttempts)
	assert.Equal(t, time.Second, cfg.RetryBackoff)
}
