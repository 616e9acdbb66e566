// Package memecoins 提供代币工厂合约的构建产物（ABI 与部署字节码）。
package memecoins

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

const (
	// DefaultArtifactDir 默认产物目录（相对仓库根目录）
	DefaultArtifactDir = "contracts/memecoins/out/release"

	// BinaryFile 部署字节码文件名（十六进制文本）
	BinaryFile = "memecoins-contract.bin"

	// ABIFile ABI 文件名
	ABIFile = "memecoins-contract-abi.json"
)

// ErrArtifactNotFound 合约字节码尚未构建
var ErrArtifactNotFound = errors.New("contract artifact not found")

//go:embed out/release/memecoins-contract-abi.json
var abiJSON []byte

var (
	parsedOnce sync.Once
	parsedABI  abi.ABI
	parsedErr  error
)

// Artifacts 一次部署所需的产物
type Artifacts struct {
	Dir      string
	Bytecode []byte
}

// ABIJSON 返回嵌入的 ABI 原文
func ABIJSON() []byte {
	return abiJSON
}

// ABI 解析嵌入的 ABI（仅解析一次）
func ABI() (abi.ABI, error) {
	parsedOnce.Do(func() {
		parsedABI, parsedErr = abi.JSON(strings.NewReader(string(abiJSON)))
		if parsedErr != nil {
			parsedErr = fmt.Errorf("parse embedded abi: %w", parsedErr)
		}
	})
	return parsedABI, parsedErr
}

// BinaryPath 返回目录下字节码文件的路径，dir 为空时使用默认目录
func BinaryPath(dir string) string {
	if dir == "" {
		dir = DefaultArtifactDir
	}
	return filepath.Join(dir, BinaryFile)
}

// LoadArtifacts 从产物目录读取部署字节码
//
// 文件内容为十六进制文本，允许 0x 前缀与首尾空白。
func LoadArtifacts(dir string) (*Artifacts, error) {
	path := BinaryPath(dir)

	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrArtifactNotFound, path)
		}
		return nil, fmt.Errorf("read artifact %s: %w", path, err)
	}

	code, err := decodeBytecode(raw)
	if err != nil {
		return nil, fmt.Errorf("decode artifact %s: %w", path, err)
	}

	return &Artifacts{Dir: filepath.Dir(path), Bytecode: code}, nil
}

// Available 报告产物目录下是否存在字节码文件
func Available(dir string) bool {
	_, err := os.Stat(BinaryPath(dir))
	return err == nil
}

func decodeBytecode(raw []byte) ([]byte, error) {
	text := strings.TrimSpace(string(raw))
	text = strings.TrimPrefix(strings.TrimPrefix(text, "0x"), "0X")
	if text == "" {
		return nil, errors.New("empty bytecode")
	}
	code, err := hexutil.Decode("0x" + text)
	if err != nil {
		return nil, fmt.Errorf("invalid hex bytecode: %w", err)
	}
	return code, nil
}
