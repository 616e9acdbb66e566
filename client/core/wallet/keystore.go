package wallet

import (
	"crypto/ecdsa"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/google/uuid"

	"github.com/memecoins/memecoins-sdk/client/core/transport"
)

// NewFromKeystore 从 Keystore v3 文件解密私钥并创建钱包
func NewFromKeystore(path, password string, provider transport.Provider) (*Wallet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read keystore %s: %w", path, err)
	}
	key, err := keystore.DecryptKey(data, password)
	if err != nil {
		return nil, fmt.Errorf("decrypt keystore %s: %w", path, err)
	}
	return newWallet(key.PrivateKey, provider, SignerTypeKeystore, ""), nil
}

// KeystoreOptions Keystore 加密参数
type KeystoreOptions struct {
	// Light 使用轻量 scrypt 参数（测试或低配设备）
	Light bool
}

// SaveKeystore 将私钥加密保存到目录，返回文件路径
// 文件名沿用 geth 约定: UTC--<时间>--<地址>
func SaveKeystore(dir string, privateKey *ecdsa.PrivateKey, password string, opts KeystoreOptions) (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("generate key id: %w", err)
	}
	key := &keystore.Key{
		Id:         id,
		Address:    crypto.PubkeyToAddress(privateKey.PublicKey),
		PrivateKey: privateKey,
	}

	scryptN, scryptP := keystore.StandardScryptN, keystore.StandardScryptP
	if opts.Light {
		scryptN, scryptP = keystore.LightScryptN, keystore.LightScryptP
	}
	data, err := keystore.EncryptKey(key, password, scryptN, scryptP)
	if err != nil {
		return "", fmt.Errorf("encrypt key: %w", err)
	}

	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("create keystore dir: %w", err)
	}
	name := fmt.Sprintf("UTC--%s--%x", time.Now().UTC().Format("2006-01-02T15-04-05.000000000Z"), key.Address.Bytes())
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", fmt.Errorf("write keystore: %w", err)
	}
	return path, nil
}

// SaveKeystore 将钱包私钥加密保存到目录
func (w *Wallet) SaveKeystore(dir, password string, opts KeystoreOptions) (string, error) {
	return SaveKeystore(dir, w.key, password, opts)
}
