// Package tokenfactory wraps the generated token factory binding with wallet-aware calls.
package tokenfactory

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/memecoins/memecoins-sdk/client/core/tokenfactory/bindings"
	"github.com/memecoins/memecoins-sdk/client/core/transport"
	"github.com/memecoins/memecoins-sdk/client/core/wallet"
	"github.com/memecoins/memecoins-sdk/contracts/memecoins"
	corelog "github.com/memecoins/memecoins-sdk/internal/core/infrastructure/log"
	logInterface "github.com/memecoins/memecoins-sdk/pkg/interfaces/infrastructure/log"
)

// Contract 代币工厂合约客户端
type Contract struct {
	instance    *bindings.TokenFactory
	address     common.Address
	wallet      *wallet.Wallet
	abi         abi.ABI
	logger      logInterface.Logger
	artifactDir string
	policy      TxPolicy
}

// Option 合约客户端选项
type Option func(*Contract)

// WithLogger 指定日志器
func WithLogger(logger logInterface.Logger) Option {
	return func(c *Contract) {
		if logger != nil {
			c.logger = logger.With("module", "tokenfactory")
		}
	}
}

// WithArtifactDir 指定部署字节码所在目录
func WithArtifactDir(dir string) Option {
	return func(c *Contract) {
		c.artifactDir = dir
	}
}

// WithTxPolicy 指定部署与管理类交易的策略（NewAsset 使用请求中的 gas 上限）
func WithTxPolicy(policy TxPolicy) Option {
	return func(c *Contract) {
		c.policy = policy
	}
}

func newContract(w *wallet.Wallet, opts []Option) (*Contract, error) {
	if w == nil {
		return nil, ErrNoAccount
	}
	if w.Provider() == nil {
		return nil, wallet.ErrNoProvider
	}
	parsed, err := memecoins.ABI()
	if err != nil {
		return nil, err
	}
	c := &Contract{
		wallet:      w,
		abi:         parsed,
		logger:      corelog.NewModuleLogger(nil, "tokenfactory"),
		artifactDir: memecoins.DefaultArtifactDir,
		policy:      DefaultTxPolicy(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *Contract) bind(address common.Address) error {
	instance, err := bindings.NewTokenFactory(address, c.provider())
	if err != nil {
		return fmt.Errorf("bind token factory %s: %w", address.Hex(), err)
	}
	c.instance = instance
	c.address = address
	return nil
}

// ========== 部署与绑定 ==========

// Deploy 部署合约并以部署者为所有者完成初始化
//
// 初始化失败时同时返回已绑定的合约与错误。
func Deploy(ctx context.Context, w *wallet.Wallet, feeInfo FeeInfo, opts ...Option) (*Contract, error) {
	c, err := newContract(w, opts)
	if err != nil {
		return nil, err
	}

	artifacts, err := memecoins.LoadArtifacts(c.artifactDir)
	if err != nil {
		return nil, err
	}

	auth, err := w.TransactOpts(ctx)
	if err != nil {
		return nil, err
	}
	c.policy.apply(auth)

	address, tx, _, err := bind.DeployContract(auth, c.abi, artifacts.Bytecode, c.provider())
	if err != nil {
		return nil, fmt.Errorf("deploy token factory: %w", asRevert(c.abi, err))
	}
	c.logger.With("tx", tx.Hash().Hex(), "address", address.Hex()).Debug("部署交易已发送")

	if _, err := bind.WaitDeployed(ctx, c.provider(), tx); err != nil {
		return nil, fmt.Errorf("wait deploy %s: %w", tx.Hash().Hex(), err)
	}
	if err := c.bind(address); err != nil {
		return nil, err
	}
	c.logger.With("address", address.Hex(), "deployer", w.Address().Hex()).Info("合约已部署")

	if _, err := c.Initialize(ctx, w.Address(), feeInfo); err != nil {
		// 合约已上链，返回绑定对象以便调用方重试 Initialize
		return c, fmt.Errorf("initialize %s: %w", address.Hex(), err)
	}
	return c, nil
}

// New 绑定已部署的合约
func New(address common.Address, w *wallet.Wallet, opts ...Option) (*Contract, error) {
	c, err := newContract(w, opts)
	if err != nil {
		return nil, err
	}
	if err := c.bind(address); err != nil {
		return nil, err
	}
	return c, nil
}

// WithAccount 返回使用另一个钱包签名的副本，钱包连接不同节点时重新绑定
func (c *Contract) WithAccount(w *wallet.Wallet) (*Contract, error) {
	if w == nil {
		return nil, ErrNoAccount
	}
	if w.Provider() == nil {
		return nil, wallet.ErrNoProvider
	}
	cp := *c
	cp.wallet = w
	if w.Provider() != c.provider() {
		if err := cp.bind(c.address); err != nil {
			return nil, err
		}
	}
	return &cp, nil
}

// Address 返回合约地址
func (c *Contract) Address() common.Address {
	return c.address
}

// Account 返回当前签名钱包
func (c *Contract) Account() *wallet.Wallet {
	return c.wallet
}

func (c *Contract) String() string {
	return c.address.Hex()
}

func (c *Contract) provider() transport.Provider {
	return c.wallet.Provider()
}

// ========== 管理操作 ==========

// Initialize 设置所有者与收费配置（仅可调用一次）
func (c *Contract) Initialize(ctx context.Context, owner common.Address, feeInfo FeeInfo) (*Response[struct{}], error) {
	fee := feeInfo.toBinding()
	tx, receipt, err := c.transact(ctx, "initialize", c.policy, nil, func(opts *bind.TransactOpts) (*types.Transaction, error) {
		return c.instance.Initialize(opts, owner, fee)
	}, owner, fee)
	if err != nil {
		return nil, err
	}
	return &Response[struct{}]{Tx: tx, Receipt: receipt}, nil
}

// TransferOwnership 转移合约所有权
func (c *Contract) TransferOwnership(ctx context.Context, newOwner common.Address) (*Response[struct{}], error) {
	tx, receipt, err := c.transact(ctx, "transferOwnership", c.policy, nil, func(opts *bind.TransactOpts) (*types.Transaction, error) {
		return c.instance.TransferOwnership(opts, newOwner)
	}, newOwner)
	if err != nil {
		return nil, err
	}
	return &Response[struct{}]{Tx: tx, Receipt: receipt}, nil
}

// SetFeeInfo 更新收费配置（仅所有者）
func (c *Contract) SetFeeInfo(ctx context.Context, feeInfo FeeInfo) (*Response[struct{}], error) {
	fee := feeInfo.toBinding()
	tx, receipt, err := c.transact(ctx, "setFeeInfo", c.policy, nil, func(opts *bind.TransactOpts) (*types.Transaction, error) {
		return c.instance.SetFeeInfo(opts, fee)
	}, fee)
	if err != nil {
		return nil, err
	}
	return &Response[struct{}]{Tx: tx, Receipt: receipt}, nil
}

// ========== 资产 ==========

// NewAsset 创建资产并向调用者铸造 MintAmount
//
// 收费资产为原生币时，FeeAmount 随交易转账；资产标识取自回执中的 AssetNew 事件。
func (c *Contract) NewAsset(ctx context.Context, req NewAssetRequest) (*Response[AssetID], error) {
	var value *big.Int
	if req.FeeAsset == (common.Address{}) && req.FeeAmount > 0 {
		value = new(big.Int).SetUint64(req.FeeAmount)
	}
	policy := TxPolicy{GasLimit: req.GasLimit}
	logo := optionalString(req.Logo)
	description := optionalString(req.Description)
	metadata := metadataListToBinding(req.Metadata)

	tx, receipt, err := c.transact(ctx, "newAsset", policy, value, func(opts *bind.TransactOpts) (*types.Transaction, error) {
		return c.instance.NewAsset(opts, req.Name, req.Symbol, req.Decimals, req.MintAmount, logo, description, metadata)
	}, req.Name, req.Symbol, req.Decimals, req.MintAmount, logo, description, metadata)
	if err != nil {
		return nil, err
	}

	events, err := c.AssetNewEvents(receipt)
	if err != nil {
		return nil, err
	}
	if len(events) == 0 {
		return nil, fmt.Errorf("newAsset %s: AssetNew: %w", tx.Hash().Hex(), ErrEventNotFound)
	}
	asset := events[0].Asset
	c.logger.With("asset", asset.Hex(), "name", req.Name, "symbol", req.Symbol).Info("资产已创建")

	return &Response[AssetID]{Value: asset, Tx: tx, Receipt: receipt}, nil
}

// ========== 查询 ==========

func (c *Contract) callOpts(ctx context.Context) *bind.CallOpts {
	return &bind.CallOpts{Context: ctx, From: c.wallet.Address()}
}

func (c *Contract) readErr(method string, err error) error {
	return fmt.Errorf("%s: %w", method, asRevert(c.abi, err))
}

// Owner 查询所有权状态
func (c *Contract) Owner(ctx context.Context) (Ownership, error) {
	out, err := c.instance.Owner(c.callOpts(ctx))
	if err != nil {
		return Ownership{}, c.readErr("owner", err)
	}
	o := Ownership{State: State(out.State)}
	if o.State == StateInitialized {
		o.Owner = out.Account
	}
	return o, nil
}

// TotalAssets 查询已创建的资产数量
func (c *Contract) TotalAssets(ctx context.Context) (uint64, error) {
	n, err := c.instance.TotalAssets(c.callOpts(ctx))
	if err != nil {
		return 0, c.readErr("totalAssets", err)
	}
	return n, nil
}

// TotalSupply 查询资产总供应量，资产不存在时 found 为 false
func (c *Contract) TotalSupply(ctx context.Context, asset AssetID) (uint64, bool, error) {
	out, err := c.instance.TotalSupply(c.callOpts(ctx), asset)
	if err != nil {
		return 0, false, c.readErr("totalSupply", err)
	}
	return out.Supply, out.Exists, nil
}

// Name 查询资产名称
func (c *Contract) Name(ctx context.Context, asset AssetID) (string, bool, error) {
	out, err := c.instance.Name(c.callOpts(ctx), asset)
	if err != nil {
		return "", false, c.readErr("name", err)
	}
	return out.Name, out.Exists, nil
}

// Symbol 查询资产符号
func (c *Contract) Symbol(ctx context.Context, asset AssetID) (string, bool, error) {
	out, err := c.instance.Symbol(c.callOpts(ctx), asset)
	if err != nil {
		return "", false, c.readErr("symbol", err)
	}
	return out.Symbol, out.Exists, nil
}

// Decimals 查询资产精度
func (c *Contract) Decimals(ctx context.Context, asset AssetID) (uint8, bool, error) {
	out, err := c.instance.Decimals(c.callOpts(ctx), asset)
	if err != nil {
		return 0, false, c.readErr("decimals", err)
	}
	return out.Decimals, out.Exists, nil
}

// GetAsset 按名称查找资产标识
func (c *Contract) GetAsset(ctx context.Context, name string) (AssetID, bool, error) {
	out, err := c.instance.GetAsset(c.callOpts(ctx), name)
	if err != nil {
		return ZeroAssetID, false, c.readErr("getAsset", err)
	}
	return out.Asset, out.Exists, nil
}

// FeeInfo 查询当前收费配置
func (c *Contract) FeeInfo(ctx context.Context) (FeeInfo, error) {
	out, err := c.instance.GetFeeInfo(c.callOpts(ctx))
	if err != nil {
		return FeeInfo{}, c.readErr("getFeeInfo", err)
	}
	return feeInfoFromBinding(out), nil
}

// Metadata 查询资产的元数据
func (c *Contract) Metadata(ctx context.Context, asset AssetID, key string) (Metadata, bool, error) {
	out, err := c.instance.Metadata(c.callOpts(ctx), asset, key)
	if err != nil {
		return Metadata{}, false, c.readErr("metadata", err)
	}
	if !out.Exists {
		return Metadata{}, false, nil
	}
	return metadataFromBinding(out.Value), true, nil
}

// BalanceOf 查询账户持有的资产数量
func (c *Contract) BalanceOf(ctx context.Context, account common.Address, asset AssetID) (*big.Int, error) {
	balance, err := c.instance.BalanceOf(c.callOpts(ctx), account, asset)
	if err != nil {
		return nil, c.readErr("balanceOf", err)
	}
	return balance, nil
}

// ========== 交易执行 ==========

type sendFunc func(opts *bind.TransactOpts) (*types.Transaction, error)

// transact 预执行、发送并等待回执
//
// 预执行与实际交易使用相同的 from/value/data，回滚在发送前按 ABI 解码；
// 回执 status=0 时在所在区块的父状态上重放以取得回滚原因。
func (c *Contract) transact(ctx context.Context, method string, policy TxPolicy, value *big.Int, send sendFunc, args ...interface{}) (*types.Transaction, *types.Receipt, error) {
	if c.wallet == nil {
		return nil, nil, ErrNoAccount
	}
	opts, err := c.wallet.TransactOpts(ctx)
	if err != nil {
		return nil, nil, err
	}
	policy.apply(opts)
	opts.Value = value

	input, err := c.abi.Pack(method, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("pack %s: %w", method, err)
	}
	msg := ethereum.CallMsg{
		From:  opts.From,
		To:    &c.address,
		Gas:   policy.GasLimit,
		Value: value,
		Data:  input,
	}
	if _, err := c.provider().CallContract(ctx, msg, nil); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", method, asRevert(c.abi, err))
	}

	tx, err := send(opts)
	if err != nil {
		return nil, nil, fmt.Errorf("send %s: %w", method, asRevert(c.abi, err))
	}
	logger := c.logger.With("method", method, "tx", tx.Hash().Hex())
	logger.Debug("交易已发送")

	receipt, err := bind.WaitMined(ctx, c.provider(), tx)
	if err != nil {
		return tx, nil, fmt.Errorf("wait %s %s: %w", method, tx.Hash().Hex(), err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		failure := c.replay(ctx, msg, receipt)
		logger.With("block", receipt.BlockNumber.String()).Warnf("交易执行失败: %v", failure)
		return tx, receipt, failure
	}

	logger.With("block", receipt.BlockNumber.String(), "gas_used", receipt.GasUsed).Info("交易已确认")
	return tx, receipt, nil
}

func (c *Contract) replay(ctx context.Context, msg ethereum.CallMsg, receipt *types.Receipt) error {
	failed := fmt.Errorf("%s: %w", receipt.TxHash.Hex(), ErrTransactionFailed)

	var parent *big.Int
	if receipt.BlockNumber != nil && receipt.BlockNumber.Sign() > 0 {
		parent = new(big.Int).Sub(receipt.BlockNumber, big.NewInt(1))
	}
	if _, err := c.provider().CallContract(ctx, msg, parent); err != nil {
		var rev *RevertError
		if errors.As(asRevert(c.abi, err), &rev) {
			return fmt.Errorf("%w: %w", failed, rev)
		}
	}
	return failed
}
