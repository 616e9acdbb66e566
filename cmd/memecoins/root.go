package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/memecoins/memecoins-sdk/client/core/config"
	"github.com/memecoins/memecoins-sdk/client/core/output"
	"github.com/memecoins/memecoins-sdk/client/core/transport"
)

// GlobalFlags 全局标志
type GlobalFlags struct {
	EnvFile      string // dotenv 文件
	ArtifactDir  string // 合约产物目录
	OutputFormat string // 输出格式
	LogLevel     string // 日志级别
	Silent       bool   // 静默模式
}

// cli 一次命令执行的共享状态
type cli struct {
	flags     GlobalFlags
	env       *config.Env
	formatter *output.Formatter

	stdout io.Writer
	stderr io.Writer
	stdin  *os.File

	// provider 非空时替代 NODE_URL 连接（本地测试网）
	provider transport.Provider
}

func newCLI() *cli {
	return &cli{
		stdout: os.Stdout,
		stderr: os.Stderr,
		stdin:  os.Stdin,
	}
}

// rootCmd 构建根命令
func (c *cli) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "memecoins",
		Short: "代币工厂合约部署与管理工具",
		Long: `memecoins - 代币工厂合约命令行工具

配置从 .env 文件与进程环境变量读取:
  SECRET / KEYSTORE / MNEMONIC   签名钱包（按此优先级选用）
  NODE_URL                       节点 JSON-RPC 地址
  ASSET_ID                       收费资产地址（部署时使用）
  ARTIFACT_DIR                   合约产物目录

结果输出到 stdout，日志与提示输出到 stderr。`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			env, err := config.LoadEnv(c.flags.EnvFile)
			if err != nil {
				return fmt.Errorf("加载配置: %w", err)
			}
			if err := env.Validate(); err != nil {
				return fmt.Errorf("配置无效: %w", err)
			}
			if c.flags.ArtifactDir != "" {
				env.Set(config.KeyArtifactDir, c.flags.ArtifactDir)
			}
			if c.flags.LogLevel != "" {
				env.Set(config.KeyLogLevel, c.flags.LogLevel)
			}
			c.env = env

			format, err := output.ParseFormat(c.flags.OutputFormat)
			if err != nil {
				return err
			}
			c.formatter = output.NewFormatter(format, c.stdout)
			c.formatter.SetLogWriter(c.stderr)
			c.formatter.SetSilent(c.flags.Silent)
			return nil
		},
		SilenceErrors: true,
	}
	root.SetOut(c.stdout)
	root.SetErr(c.stderr)

	flags := root.PersistentFlags()
	flags.StringVar(&c.flags.EnvFile, "env-file", config.DefaultEnvFile, "dotenv 配置文件")
	flags.StringVar(&c.flags.ArtifactDir, "artifact-dir", "", "合约产物目录 (默认: ARTIFACT_DIR 或 contracts/memecoins/out/release)")
	flags.StringVarP(&c.flags.OutputFormat, "output", "o", string(output.FormatText), "输出格式: text|json|pretty|table")
	flags.StringVar(&c.flags.LogLevel, "log-level", "", "日志级别: debug|info|warn|error (默认: LOG_LEVEL)")
	flags.BoolVar(&c.flags.Silent, "silent", false, "静默模式 (仅输出结果)")

	root.AddCommand(
		c.deployCmd(),
		c.setFeeInfoCmd(),
		c.feeInfoCmd(),
		c.ownerCmd(),
		c.transferOwnershipCmd(),
		c.assetCmd(),
		c.keystoreCmd(),
	)
	return root
}

// Execute 执行根命令
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newCLI().rootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "错误: %v\n", err)
		stop()
		os.Exit(1)
	}
}
