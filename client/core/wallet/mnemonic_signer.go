package wallet

import (
	"crypto/ecdsa"
	"errors"
	"fmt"
	"sync"

	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/memecoins/memecoins-sdk/client/core/transport"
)

// MnemonicSigner 助记词 HD 派生器
type MnemonicSigner struct {
	mnemonic    string
	passphrase  string
	masterKey   *hdkeychain.ExtendedKey
	derivedKeys map[string]*ecdsa.PrivateKey // path -> key
	mu          sync.Mutex
}

// NewMnemonicSigner 创建助记词派生器
func NewMnemonicSigner(mnemonic, passphrase string) (*MnemonicSigner, error) {
	if mnemonic == "" {
		return nil, errors.New("mnemonic is required")
	}
	mnemonic = normalizeSpaces(mnemonic)
	if !NewMnemonicManager().ValidateMnemonic(mnemonic) {
		return nil, ErrInvalidMnemonic
	}
	return &MnemonicSigner{
		mnemonic:    mnemonic,
		passphrase:  passphrase,
		derivedKeys: make(map[string]*ecdsa.PrivateKey),
	}, nil
}

// initMasterKey 初始化主密钥
func (s *MnemonicSigner) initMasterKey() error {
	if s.masterKey != nil {
		return nil
	}

	seed, err := NewMnemonicManager().MnemonicToSeed(s.mnemonic, s.passphrase)
	if err != nil {
		return fmt.Errorf("mnemonic to seed: %w", err)
	}

	// 主网参数只影响扩展密钥的序列化前缀，不影响派生结果
	masterKey, err := hdkeychain.NewMaster(seed, &chaincfg.MainNetParams)
	if err != nil {
		return fmt.Errorf("create master key: %w", err)
	}
	s.masterKey = masterKey
	return nil
}

// DeriveKey 按路径派生私钥（带缓存）
func (s *MnemonicSigner) DeriveKey(path string) (*ecdsa.PrivateKey, error) {
	dp, err := ParseDerivationPath(path)
	if err != nil {
		return nil, err
	}
	canonical := dp.String()

	s.mu.Lock()
	defer s.mu.Unlock()

	if key, ok := s.derivedKeys[canonical]; ok {
		return key, nil
	}
	if err := s.initMasterKey(); err != nil {
		return nil, err
	}

	key := s.masterKey
	for _, index := range dp.ToUint32Array() {
		key, err = key.Derive(index)
		if err != nil {
			return nil, fmt.Errorf("derive %s: %w", canonical, err)
		}
	}

	ecPriv, err := key.ECPrivKey()
	if err != nil {
		return nil, fmt.Errorf("get private key: %w", err)
	}
	privateKey, err := crypto.ToECDSA(ecPriv.Serialize())
	if err != nil {
		return nil, fmt.Errorf("convert private key: %w", err)
	}

	s.derivedKeys[canonical] = privateKey
	return privateKey, nil
}

// Wallet 按路径派生钱包并绑定节点连接
func (s *MnemonicSigner) Wallet(path string, provider transport.Provider) (*Wallet, error) {
	if path == "" {
		path = DefaultDerivationPath().String()
	}
	key, err := s.DeriveKey(path)
	if err != nil {
		return nil, err
	}
	dp, _ := ParseDerivationPath(path)
	return newWallet(key, provider, SignerTypeMnemonic, dp.String()), nil
}

// DeriveWallets 派生账户 0 下从索引 0 开始的 count 个钱包
func (s *MnemonicSigner) DeriveWallets(count int, provider transport.Provider) ([]*Wallet, error) {
	wallets := make([]*Wallet, 0, count)
	for i := 0; i < count; i++ {
		w, err := s.Wallet(PathForIndex(uint32(i)), provider)
		if err != nil {
			return nil, err
		}
		wallets = append(wallets, w)
	}
	return wallets, nil
}

// NewFromMnemonic 从助记词创建钱包，path 为空时使用 m/44'/60'/0'/0/0
func NewFromMnemonic(mnemonic, passphrase, path string, provider transport.Provider) (*Wallet, error) {
	signer, err := NewMnemonicSigner(mnemonic, passphrase)
	if err != nil {
		return nil, err
	}
	return signer.Wallet(path, provider)
}
