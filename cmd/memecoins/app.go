package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"
	"go.uber.org/dig"
	"go.uber.org/fx"
	"golang.org/x/term"

	"github.com/memecoins/memecoins-sdk/client/core/config"
	"github.com/memecoins/memecoins-sdk/client/core/tokenfactory"
	"github.com/memecoins/memecoins-sdk/client/core/transport"
	"github.com/memecoins/memecoins-sdk/client/core/wallet"
	appconfig "github.com/memecoins/memecoins-sdk/internal/config"
	logpkg "github.com/memecoins/memecoins-sdk/internal/core/infrastructure/log"
	configIface "github.com/memecoins/memecoins-sdk/pkg/interfaces/config"
	logInterface "github.com/memecoins/memecoins-sdk/pkg/interfaces/infrastructure/log"
)

// session 已装配的命令依赖
type session struct {
	Config configIface.Provider
	Logger logInterface.Logger
	Wallet *wallet.Wallet
}

// contractOptions 由配置生成合约选项
func (s *session) contractOptions() []tokenfactory.Option {
	opts := []tokenfactory.Option{tokenfactory.WithLogger(s.Logger)}
	if dir := s.Config.GetContract().ArtifactDir; dir != nil && *dir != "" {
		opts = append(opts, tokenfactory.WithArtifactDir(*dir))
	}
	return opts
}

// bind 绑定已部署的合约
func (s *session) bind(address common.Address) (*tokenfactory.Contract, error) {
	return tokenfactory.New(address, s.Wallet, s.contractOptions()...)
}

// requireEnv 检查钱包来源与给定配置项，缺失项合并为一个错误
func requireEnv(env *config.Env, keys ...string) error {
	var missing []string
	for _, err := range []error{env.RequireWallet(), env.Require(keys...)} {
		var m *config.MissingKeysError
		if errors.As(err, &m) {
			missing = append(missing, m.Keys...)
		}
	}
	if len(missing) > 0 {
		return &config.MissingKeysError{Keys: missing}
	}
	return nil
}

// promptPassword 从终端读取密码，不回显
func (c *cli) promptPassword(prompt string) (string, error) {
	fd := int(c.stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", errors.New("stdin is not a terminal")
	}
	fmt.Fprint(c.stderr, prompt)
	password, err := term.ReadPassword(fd)
	fmt.Fprintln(c.stderr)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return string(password), nil
}

// ensureKeystorePassword 使用 KEYSTORE 且未配置密码时在终端提示输入
func (c *cli) ensureKeystorePassword() error {
	if c.env.WalletSource() != config.WalletSourceKeystore || c.env.Has(config.KeyKeystorePassword) {
		return nil
	}
	password, err := c.promptPassword("Keystore 密码: ")
	if err != nil {
		return fmt.Errorf("can't find %s: %w", config.KeyKeystorePassword, err)
	}
	c.env.Set(config.KeyKeystorePassword, password)
	return nil
}

// withSession 装配 config → log → transport → wallet 后执行 fn，结束时关闭连接
func (c *cli) withSession(cmd *cobra.Command, keys []string, fn func(ctx context.Context, s *session) error) error {
	cmd.SilenceUsage = true

	if err := requireEnv(c.env, append([]string{config.KeyNodeURL}, keys...)...); err != nil {
		return err
	}
	if err := c.ensureKeystorePassword(); err != nil {
		return err
	}

	transportModule := transport.Module()
	if c.provider != nil {
		provider := c.provider
		transportModule = fx.Provide(func() transport.Provider { return provider })
	}

	var s session
	app := fx.New(
		fx.NopLogger,
		fx.Provide(func() configIface.AppOptions { return c.env }),
		appconfig.Module(),
		logpkg.Module(),
		transportModule,
		wallet.Module(),
		fx.Populate(&s.Config, &s.Logger, &s.Wallet),
	)
	if err := app.Err(); err != nil {
		return dig.RootCause(err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	startCtx, cancel := context.WithTimeout(ctx, app.StartTimeout())
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		return fmt.Errorf("启动失败: %w", err)
	}
	defer func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), app.StopTimeout())
		defer cancel()
		_ = app.Stop(stopCtx)
	}()

	s.Logger.With("command", cmd.Name(), "account", s.Wallet.Address().Hex()).Debug("执行命令")
	return fn(ctx, &s)
}
