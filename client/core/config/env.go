// Package config 从 .env 文件与进程环境变量加载客户端配置
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/memecoins/memecoins-sdk/pkg/types"
)

// 环境变量键
const (
	KeySecret             = "SECRET"
	KeyNodeURL            = "NODE_URL"
	KeyAssetID            = "ASSET_ID"
	KeyKeystore           = "KEYSTORE"
	KeyKeystorePassword   = "KEYSTORE_PASSWORD"
	KeyMnemonic           = "MNEMONIC"
	KeyMnemonicPassphrase = "MNEMONIC_PASSPHRASE"
	KeyDerivationPath     = "DERIVATION_PATH"
	KeyArtifactDir        = "ARTIFACT_DIR"
	KeyLogLevel           = "LOG_LEVEL"
	KeyLogFile            = "LOG_FILE"
	KeyRPCTimeout         = "RPC_TIMEOUT"
	KeyRPCRetryAttempts   = "RPC_RETRY_ATTEMPTS"
	KeyRPCRetryBackoff    = "RPC_RETRY_BACKOFF"
)

// DefaultEnvFile 默认的 dotenv 文件
const DefaultEnvFile = ".env"

// WalletSource 钱包来源
type WalletSource int

const (
	WalletSourceNone WalletSource = iota
	WalletSourceSecret
	WalletSourceKeystore
	WalletSourceMnemonic
)

// String 返回来源对应的环境变量名
func (s WalletSource) String() string {
	switch s {
	case WalletSourceSecret:
		return KeySecret
	case WalletSourceKeystore:
		return KeyKeystore
	case WalletSourceMnemonic:
		return KeyMnemonic
	default:
		return "none"
	}
}

// MissingKeysError 缺少必需的配置项
type MissingKeysError struct {
	Keys []string
}

func (e *MissingKeysError) Error() string {
	msgs := make([]string, len(e.Keys))
	for i, k := range e.Keys {
		msgs[i] = "can't find " + k
	}
	return strings.Join(msgs, "; ")
}

// Env 环境配置
type Env struct {
	v       *viper.Viper
	envFile string
	loaded  bool
}

// LoadEnv 读取 dotenv 文件并叠加进程环境变量
//
// envFile 为空时使用 .env；文件不存在不视为错误。进程环境变量优先于文件内容。
func LoadEnv(envFile string) (*Env, error) {
	if envFile == "" {
		envFile = DefaultEnvFile
	}

	v := viper.New()
	v.AutomaticEnv()

	env := &Env{v: v, envFile: envFile}

	if _, err := os.Stat(envFile); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return env, nil
		}
		return nil, fmt.Errorf("stat env file %s: %w", envFile, err)
	}

	v.SetConfigFile(envFile)
	v.SetConfigType("env")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read env file %s: %w", envFile, err)
	}
	env.loaded = true

	return env, nil
}

// FromMap 以给定键值构造配置，不读取文件与进程环境
func FromMap(values map[string]string) *Env {
	v := viper.New()
	for k, val := range values {
		v.Set(k, val)
	}
	return &Env{v: v}
}

// File 返回 dotenv 文件路径
func (e *Env) File() string {
	return e.envFile
}

// FileLoaded 报告 dotenv 文件是否被读取
func (e *Env) FileLoaded() bool {
	return e.loaded
}

// Get 读取配置项，首尾空白被去除
func (e *Env) Get(key string) string {
	return strings.TrimSpace(e.v.GetString(key))
}

// Has 报告配置项是否存在且非空
func (e *Env) Has(key string) bool {
	return e.Get(key) != ""
}

// Set 覆盖配置项（命令行参数优先于环境）
func (e *Env) Set(key, value string) {
	e.v.Set(key, value)
}

// Require 检查所有键都已配置，缺失项在同一个错误中报告
func (e *Env) Require(keys ...string) error {
	var missing []string
	for _, k := range keys {
		if !e.Has(k) {
			missing = append(missing, k)
		}
	}
	if len(missing) > 0 {
		return &MissingKeysError{Keys: missing}
	}
	return nil
}

// WalletSource 按 SECRET > KEYSTORE > MNEMONIC 的优先级选择钱包来源
func (e *Env) WalletSource() WalletSource {
	switch {
	case e.Has(KeySecret):
		return WalletSourceSecret
	case e.Has(KeyKeystore):
		return WalletSourceKeystore
	case e.Has(KeyMnemonic):
		return WalletSourceMnemonic
	default:
		return WalletSourceNone
	}
}

// RequireWallet 检查至少配置了一种钱包来源
func (e *Env) RequireWallet() error {
	if e.WalletSource() == WalletSourceNone {
		return &MissingKeysError{Keys: []string{KeySecret + " (or " + KeyKeystore + ", " + KeyMnemonic + ")"}}
	}
	return nil
}

// Validate 检查时长与次数类配置项的格式，所有无效项在同一个错误中报告
func (e *Env) Validate() error {
	var errs []error
	for _, key := range []string{KeyRPCTimeout, KeyRPCRetryBackoff} {
		value := e.Get(key)
		if value == "" {
			continue
		}
		if d, err := time.ParseDuration(value); err != nil || d < 0 {
			errs = append(errs, fmt.Errorf("invalid %s %q: expected a duration such as 30s", key, value))
		}
	}
	if value := e.Get(KeyRPCRetryAttempts); value != "" {
		if n, err := strconv.Atoi(value); err != nil || n < 0 {
			errs = append(errs, fmt.Errorf("invalid %s %q: expected a non-negative integer", KeyRPCRetryAttempts, value))
		}
	}
	return errors.Join(errs...)
}

// GetAppConfig 转换为应用配置，未设置或格式无效的项保持 nil（无效项由 Validate 报告）
func (e *Env) GetAppConfig() *types.AppConfig {
	cfg := &types.AppConfig{
		Log: &types.UserLogConfig{
			Level:    types.StringPtr(e.Get(KeyLogLevel)),
			FilePath: types.StringPtr(e.Get(KeyLogFile)),
		},
		RPC: &types.UserRPCConfig{
			URL:          types.StringPtr(e.Get(KeyNodeURL)),
			Timeout:      types.StringPtr(e.Get(KeyRPCTimeout)),
			RetryBackoff: types.StringPtr(e.Get(KeyRPCRetryBackoff)),
		},
		Wallet: &types.UserWalletConfig{
			Secret:             types.StringPtr(e.Get(KeySecret)),
			Keystore:           types.StringPtr(e.Get(KeyKeystore)),
			KeystorePassword:   types.StringPtr(e.v.GetString(KeyKeystorePassword)),
			Mnemonic:           types.StringPtr(e.Get(KeyMnemonic)),
			MnemonicPassphrase: types.StringPtr(e.v.GetString(KeyMnemonicPassphrase)),
			DerivationPath:     types.StringPtr(e.Get(KeyDerivationPath)),
		},
		Contract: &types.UserContractConfig{
			ArtifactDir: types.StringPtr(e.Get(KeyArtifactDir)),
			AssetID:     types.StringPtr(e.Get(KeyAssetID)),
		},
	}
	if attempts, err := strconv.Atoi(e.Get(KeyRPCRetryAttempts)); err == nil && attempts >= 0 {
		cfg.RPC.RetryAttempts = &attempts
	}
	return cfg
}
