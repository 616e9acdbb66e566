package tokenfactory

import (
	"context"
	"errors"
	"math/big"
	"sync"
	"testing"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/require"

	"github.com/memecoins/memecoins-sdk/client/core/transport"
	"github.com/memecoins/memecoins-sdk/client/core/wallet"
	"github.com/memecoins/memecoins-sdk/contracts/memecoins"
)

const (
	ownerKey = "0x4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318"
	userKey  = "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
)

var factoryAddress = common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3")

// revertErr 模拟节点返回的带 data 字段的回滚错误
type revertErr struct {
	data []byte
}

func (e *revertErr) Error() string          { return "execution reverted" }
func (e *revertErr) ErrorData() interface{} { return hexutil.Encode(e.data) }

// fakeBackend 按方法名返回预置 ABI 编码输出，并记录所有调用与交易
type fakeBackend struct {
	t   testing.TB
	abi abi.ABI

	mu       sync.Mutex
	outputs  map[string][]byte
	reverts  map[string][]byte // eth_call（含预执行）回滚
	replays  map[string][]byte // 仅在指定区块重放时回滚
	logs     map[string][]*types.Log
	failMine bool
	calls    []ethereum.CallMsg
	sent     []*types.Transaction
	receipts map[common.Hash]*types.Receipt
	filtered []types.Log
}

var _ transport.Provider = (*fakeBackend)(nil)

func newFakeBackend(t testing.TB) *fakeBackend {
	parsed, err := memecoins.ABI()
	require.NoError(t, err)
	return &fakeBackend{
		t:        t,
		abi:      parsed,
		outputs:  make(map[string][]byte),
		reverts:  make(map[string][]byte),
		replays:  make(map[string][]byte),
		logs:     make(map[string][]*types.Log),
		receipts: make(map[common.Hash]*types.Receipt),
	}
}

// returns 预置方法返回值
func (f *fakeBackend) returns(method string, values ...interface{}) {
	f.t.Helper()
	out, err := f.abi.Methods[method].Outputs.Pack(values...)
	require.NoError(f.t, err)
	f.outputs[method] = out
}

// revertWith 预置方法回滚的自定义错误
func (f *fakeBackend) revertWith(method, name string, args ...interface{}) {
	f.t.Helper()
	f.reverts[method] = f.errorData(name, args...)
}

func (f *fakeBackend) errorData(name string, args ...interface{}) []byte {
	f.t.Helper()
	abiErr := f.abi.Errors[name]
	packed, err := abiErr.Inputs.Pack(args...)
	require.NoError(f.t, err)
	return append(append([]byte{}, abiErr.ID[:4]...), packed...)
}

// eventLog 构造指定事件的日志
func (f *fakeBackend) eventLog(event string, topics []common.Hash, values ...interface{}) *types.Log {
	f.t.Helper()
	ev := f.abi.Events[event]
	data, err := ev.Inputs.NonIndexed().Pack(values...)
	require.NoError(f.t, err)
	return &types.Log{
		Address: factoryAddress,
		Topics:  append([]common.Hash{ev.ID}, topics...),
		Data:    data,
	}
}

// emits 预置方法交易回执中的事件日志
func (f *fakeBackend) emits(method, event string, topics []common.Hash, values ...interface{}) {
	f.t.Helper()
	f.logs[method] = append(f.logs[method], f.eventLog(event, topics, values...))
}

func (f *fakeBackend) methodOf(data []byte) string {
	if len(data) < 4 {
		return ""
	}
	m, err := f.abi.MethodById(data[:4])
	if err != nil {
		return ""
	}
	return m.Name
}

func (f *fakeBackend) sentMethods() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	names := make([]string, 0, len(f.sent))
	for _, tx := range f.sent {
		names = append(names, f.methodOf(tx.Data()))
	}
	return names
}

func (f *fakeBackend) CodeAt(ctx context.Context, account common.Address, blockNumber *big.Int) ([]byte, error) {
	return []byte{0x60, 0x00}, nil
}

func (f *fakeBackend) PendingCodeAt(ctx context.Context, account common.Address) ([]byte, error) {
	return []byte{0x60, 0x00}, nil
}

func (f *fakeBackend) CallContract(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)

	method := f.methodOf(call.Data)
	if data, ok := f.reverts[method]; ok {
		return nil, &revertErr{data: data}
	}
	if data, ok := f.replays[method]; ok && blockNumber != nil {
		return nil, &revertErr{data: data}
	}
	return f.outputs[method], nil
}

func (f *fakeBackend) HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error) {
	return &types.Header{Number: big.NewInt(9), BaseFee: big.NewInt(1_000_000_000)}, nil
}

func (f *fakeBackend) PendingNonceAt(ctx context.Context, account common.Address) (uint64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return uint64(len(f.sent)), nil
}

func (f *fakeBackend) SuggestGasPrice(ctx context.Context) (*big.Int, error) {
	return big.NewInt(2_000_000_000), nil
}

func (f *fakeBackend) SuggestGasTipCap(ctx context.Context) (*big.Int, error) {
	return big.NewInt(1_000_000_000), nil
}

func (f *fakeBackend) EstimateGas(ctx context.Context, call ethereum.CallMsg) (uint64, error) {
	return 100_000, nil
}

func (f *fakeBackend) SendTransaction(ctx context.Context, tx *types.Transaction) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, tx)

	receipt := &types.Receipt{
		Status:      types.ReceiptStatusSuccessful,
		TxHash:      tx.Hash(),
		BlockNumber: big.NewInt(10),
		GasUsed:     50_000,
	}
	if f.failMine {
		receipt.Status = types.ReceiptStatusFailed
	}
	if receipt.Status == types.ReceiptStatusSuccessful {
		for i, l := range f.logs[f.methodOf(tx.Data())] {
			cp := *l
			if tx.To() != nil {
				cp.Address = *tx.To()
			}
			cp.TxHash = tx.Hash()
			cp.Index = uint(i)
			cp.BlockNumber = 10
			receipt.Logs = append(receipt.Logs, &cp)
		}
	}
	f.receipts[tx.Hash()] = receipt
	return nil
}

func (f *fakeBackend) TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if r, ok := f.receipts[txHash]; ok {
		return r, nil
	}
	return nil, ethereum.NotFound
}

func (f *fakeBackend) FilterLogs(ctx context.Context, q ethereum.FilterQuery) ([]types.Log, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.filtered, nil
}

func (f *fakeBackend) SubscribeFilterLogs(ctx context.Context, q ethereum.FilterQuery, ch chan<- types.Log) (ethereum.Subscription, error) {
	return nil, errors.New("subscriptions not supported")
}

func (f *fakeBackend) ChainID(ctx context.Context) (*big.Int, error) {
	return big.NewInt(1337), nil
}

func (f *fakeBackend) BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error) {
	return big.NewInt(0), nil
}

func (f *fakeBackend) BlockNumber(ctx context.Context) (uint64, error) {
	return 10, nil
}

// newFakeContract 绑定到 fake 后端的合约客户端，签名者为 ownerKey
func newFakeContract(t *testing.T) (*Contract, *fakeBackend, *wallet.Wallet) {
	t.Helper()
	backend := newFakeBackend(t)
	owner, err := wallet.NewFromPrivateKey(ownerKey, backend)
	require.NoError(t, err)
	c, err := New(factoryAddress, owner)
	require.NoError(t, err)
	return c, backend, owner
}
