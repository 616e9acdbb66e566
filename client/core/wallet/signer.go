package wallet

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// Signer 签名器接口 - 统一的签名抽象
type Signer interface {
	// Address 返回签名地址
	Address() common.Address

	// SignTx 使用 EIP-155 / EIP-1559 规则签名交易
	SignTx(tx *types.Transaction, chainID *big.Int) (*types.Transaction, error)

	// SignHash 签名 32 字节哈希，返回 65 字节 [R || S || V] 签名
	SignHash(hash []byte) ([]byte, error)

	// Type 返回签名器类型
	Type() SignerType
}

// SignerType 签名器类型
type SignerType string

const (
	SignerTypePrivateKey SignerType = "private_key" // 十六进制私钥
	SignerTypeKeystore   SignerType = "keystore"    // 加密Keystore文件
	SignerTypeMnemonic   SignerType = "mnemonic"    // BIP39助记词
)
