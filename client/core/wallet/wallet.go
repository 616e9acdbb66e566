package wallet

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/memecoins/memecoins-sdk/client/core/transport"
)

var (
	// ErrNoProvider 钱包未绑定节点连接
	ErrNoProvider = errors.New("wallet has no provider")
	// ErrInvalidPrivateKey 私钥格式无效
	ErrInvalidPrivateKey = errors.New("invalid private key")
)

// Wallet 已解锁的账户，持有私钥并绑定一个节点连接
type Wallet struct {
	key        *ecdsa.PrivateKey
	address    common.Address
	provider   transport.Provider
	signerType SignerType
	path       string // 助记词派生路径（仅 mnemonic 类型）
}

var _ Signer = (*Wallet)(nil)

// NewFromPrivateKey 从十六进制私钥创建钱包（可带 0x 前缀）
func NewFromPrivateKey(hexKey string, provider transport.Provider) (*Wallet, error) {
	hexKey = strings.TrimPrefix(strings.TrimSpace(hexKey), "0x")
	key, err := crypto.HexToECDSA(hexKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPrivateKey, err)
	}
	return newWallet(key, provider, SignerTypePrivateKey, ""), nil
}

// NewFromKey 从已有的 ECDSA 私钥创建钱包
func NewFromKey(key *ecdsa.PrivateKey, provider transport.Provider) *Wallet {
	return newWallet(key, provider, SignerTypePrivateKey, "")
}

func newWallet(key *ecdsa.PrivateKey, provider transport.Provider, signerType SignerType, path string) *Wallet {
	return &Wallet{
		key:        key,
		address:    crypto.PubkeyToAddress(key.PublicKey),
		provider:   provider,
		signerType: signerType,
		path:       path,
	}
}

// Address 返回账户地址
func (w *Wallet) Address() common.Address {
	return w.address
}

// Provider 返回绑定的节点连接
func (w *Wallet) Provider() transport.Provider {
	return w.provider
}

// WithProvider 返回绑定到另一个节点连接的副本
func (w *Wallet) WithProvider(provider transport.Provider) *Wallet {
	cp := *w
	cp.provider = provider
	return &cp
}

// Type 返回签名器类型
func (w *Wallet) Type() SignerType {
	return w.signerType
}

// DerivationPath 返回派生路径，非助记词钱包返回空串
func (w *Wallet) DerivationPath() string {
	return w.path
}

// PrivateKey 返回私钥
func (w *Wallet) PrivateKey() *ecdsa.PrivateKey {
	return w.key
}

// SignTx 签名交易
func (w *Wallet) SignTx(tx *types.Transaction, chainID *big.Int) (*types.Transaction, error) {
	return types.SignTx(tx, types.LatestSignerForChainID(chainID), w.key)
}

// SignHash 签名 32 字节哈希
func (w *Wallet) SignHash(hash []byte) ([]byte, error) {
	if len(hash) != common.HashLength {
		return nil, fmt.Errorf("hash must be %d bytes, got %d", common.HashLength, len(hash))
	}
	return crypto.Sign(hash, w.key)
}

// String 返回地址的十六进制表示
func (w *Wallet) String() string {
	return w.address.Hex()
}

// ========== 链上操作 ==========

// TransactOpts 构造绑定当前链 ID 的交易选项
func (w *Wallet) TransactOpts(ctx context.Context) (*bind.TransactOpts, error) {
	if w.provider == nil {
		return nil, ErrNoProvider
	}
	chainID, err := w.provider.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("get chain id: %w", err)
	}
	opts, err := bind.NewKeyedTransactorWithChainID(w.key, chainID)
	if err != nil {
		return nil, fmt.Errorf("create transactor: %w", err)
	}
	opts.Context = ctx
	return opts, nil
}

// Balance 查询账户原生币余额
func (w *Wallet) Balance(ctx context.Context) (*big.Int, error) {
	if w.provider == nil {
		return nil, ErrNoProvider
	}
	balance, err := w.provider.BalanceAt(ctx, w.address, nil)
	if err != nil {
		return nil, fmt.Errorf("get balance of %s: %w", w.address.Hex(), err)
	}
	return balance, nil
}

// Transfer 转账原生币并等待回执
func (w *Wallet) Transfer(ctx context.Context, to common.Address, amount *big.Int) (*types.Receipt, error) {
	if w.provider == nil {
		return nil, ErrNoProvider
	}
	if amount == nil || amount.Sign() < 0 {
		return nil, fmt.Errorf("invalid transfer amount: %v", amount)
	}

	chainID, err := w.provider.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("get chain id: %w", err)
	}
	nonce, err := w.provider.PendingNonceAt(ctx, w.address)
	if err != nil {
		return nil, fmt.Errorf("get nonce: %w", err)
	}
	tip, err := w.provider.SuggestGasTipCap(ctx)
	if err != nil {
		return nil, fmt.Errorf("suggest gas tip: %w", err)
	}
	head, err := w.provider.HeaderByNumber(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("get latest header: %w", err)
	}
	feeCap := new(big.Int).Set(tip)
	if head.BaseFee != nil {
		feeCap.Add(feeCap, new(big.Int).Mul(head.BaseFee, big.NewInt(2)))
	}
	gas, err := w.provider.EstimateGas(ctx, ethereum.CallMsg{From: w.address, To: &to, Value: amount})
	if err != nil {
		return nil, fmt.Errorf("estimate gas: %w", err)
	}

	tx, err := w.SignTx(types.NewTx(&types.DynamicFeeTx{
		ChainID:   chainID,
		Nonce:     nonce,
		GasTipCap: tip,
		GasFeeCap: feeCap,
		Gas:       gas,
		To:        &to,
		Value:     amount,
	}), chainID)
	if err != nil {
		return nil, fmt.Errorf("sign transfer: %w", err)
	}
	if err := w.provider.SendTransaction(ctx, tx); err != nil {
		return nil, fmt.Errorf("send transfer: %w", err)
	}

	receipt, err := bind.WaitMined(ctx, w.provider, tx)
	if err != nil {
		return nil, fmt.Errorf("wait transfer %s: %w", tx.Hash().Hex(), err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return receipt, fmt.Errorf("transfer %s reverted", tx.Hash().Hex())
	}
	return receipt, nil
}
