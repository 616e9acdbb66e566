package wallet

import (
	"crypto/rand"
	"errors"
	"fmt"
	"strings"

	"github.com/tyler-smith/go-bip39"
)

// MnemonicStrength 助记词强度
type MnemonicStrength int

const (
	// Mnemonic12Words 12个助记词 (128 bits 熵)
	Mnemonic12Words MnemonicStrength = 128
	// Mnemonic24Words 24个助记词 (256 bits 熵)
	Mnemonic24Words MnemonicStrength = 256
)

// ErrInvalidMnemonic 助记词无效
var ErrInvalidMnemonic = errors.New("invalid mnemonic")

// MnemonicManager 助记词管理器
type MnemonicManager struct {
	wordSet map[string]struct{}
}

// NewMnemonicManager 创建新的助记词管理器
func NewMnemonicManager() *MnemonicManager {
	words := bip39.GetWordList()
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return &MnemonicManager{wordSet: set}
}

// GenerateMnemonic 生成助记词
func (m *MnemonicManager) GenerateMnemonic(strength MnemonicStrength) (string, error) {
	switch strength {
	case Mnemonic12Words, Mnemonic24Words:
	default:
		return "", fmt.Errorf("invalid mnemonic strength: %d, must be 128 or 256", strength)
	}

	entropy := make([]byte, int(strength)/8)
	if _, err := rand.Read(entropy); err != nil {
		return "", fmt.Errorf("failed to generate entropy: %w", err)
	}

	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", fmt.Errorf("failed to generate mnemonic: %w", err)
	}
	return mnemonic, nil
}

// ValidateMnemonic 验证助记词是否有效
func (m *MnemonicManager) ValidateMnemonic(mnemonic string) bool {
	return bip39.IsMnemonicValid(normalizeSpaces(mnemonic))
}

// ValidateMnemonicWithDetails 验证助记词并返回详细信息
func (m *MnemonicManager) ValidateMnemonicWithDetails(mnemonic string) (bool, string) {
	mnemonic = normalizeSpaces(mnemonic)
	if mnemonic == "" {
		return false, "助记词不能为空"
	}

	words := strings.Split(mnemonic, " ")
	switch len(words) {
	case 12, 15, 18, 21, 24:
	default:
		return false, fmt.Sprintf("助记词数量无效: %d，应为 12, 15, 18, 21 或 24", len(words))
	}

	for i, word := range words {
		if _, ok := m.wordSet[word]; !ok {
			return false, fmt.Sprintf("第 %d 个单词 '%s' 不在 BIP39 词表中", i+1, word)
		}
	}

	if !bip39.IsMnemonicValid(mnemonic) {
		return false, "校验和验证失败，请检查助记词是否正确"
	}
	return true, "助记词有效"
}

// MnemonicToSeed 将助记词转换为种子
// passphrase 是可选的密码（BIP39 第25个词）
func (m *MnemonicManager) MnemonicToSeed(mnemonic, passphrase string) ([]byte, error) {
	mnemonic = normalizeSpaces(mnemonic)
	if !bip39.IsMnemonicValid(mnemonic) {
		return nil, ErrInvalidMnemonic
	}
	return bip39.NewSeed(mnemonic, passphrase), nil
}

// GetWordCount 获取助记词单词数量
func (m *MnemonicManager) GetWordCount(mnemonic string) int {
	return len(strings.Fields(mnemonic))
}

// normalizeSpaces 规范化空格（将多个连续空格替换为单个空格）
func normalizeSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
