package wallet

import (
	"errors"
	"fmt"

	"go.uber.org/fx"

	"github.com/memecoins/memecoins-sdk/client/core/transport"
	logpkg "github.com/memecoins/memecoins-sdk/internal/core/infrastructure/log"
	"github.com/memecoins/memecoins-sdk/pkg/interfaces/config"
	logInterface "github.com/memecoins/memecoins-sdk/pkg/interfaces/infrastructure/log"
	"github.com/memecoins/memecoins-sdk/pkg/types"
)

// ErrNoWalletSource 未配置任何钱包来源
var ErrNoWalletSource = errors.New("can't find SECRET (or KEYSTORE, MNEMONIC)")

// ModuleParams 定义钱包模块的依赖参数
type ModuleParams struct {
	fx.In

	Config   config.Provider
	Provider transport.Provider
	Logger   logInterface.Logger `optional:"true"`
}

// Module 返回钱包模块
func Module() fx.Option {
	return fx.Module("wallet",
		fx.Provide(ProvideWallet),
	)
}

// ProvideWallet 按 SECRET > KEYSTORE > MNEMONIC 的优先级创建绑定节点连接的钱包
func ProvideWallet(params ModuleParams) (*Wallet, error) {
	w, err := FromConfig(params.Config.GetWallet(), params.Provider)
	if err != nil {
		return nil, err
	}

	logger := logpkg.NewModuleLogger(params.Logger, "wallet")
	logger.With("address", w.Address().Hex(), "source", string(w.Type())).Debug("已加载钱包")
	return w, nil
}

// FromConfig 从钱包配置创建钱包
func FromConfig(cfg *types.UserWalletConfig, provider transport.Provider) (*Wallet, error) {
	if cfg == nil {
		return nil, ErrNoWalletSource
	}

	switch {
	case value(cfg.Secret) != "":
		w, err := NewFromPrivateKey(value(cfg.Secret), provider)
		if err != nil {
			return nil, fmt.Errorf("load SECRET: %w", err)
		}
		return w, nil
	case value(cfg.Keystore) != "":
		return NewFromKeystore(value(cfg.Keystore), value(cfg.KeystorePassword), provider)
	case value(cfg.Mnemonic) != "":
		w, err := NewFromMnemonic(value(cfg.Mnemonic), value(cfg.MnemonicPassphrase), value(cfg.DerivationPath), provider)
		if err != nil {
			return nil, fmt.Errorf("load MNEMONIC: %w", err)
		}
		return w, nil
	default:
		return nil, ErrNoWalletSource
	}
}

func value(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
