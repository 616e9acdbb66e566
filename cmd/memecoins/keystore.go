package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/memecoins/memecoins-sdk/client/core/wallet"
)

// keystoreCmd 钱包 keystore 管理
func (c *cli) keystoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keystore",
		Short: "Keystore 管理",
	}
	cmd.AddCommand(c.keystoreExportCmd())
	return cmd
}

// keystoreExportCmd 将当前钱包加密导出为 keystore v3 文件
func (c *cli) keystoreExportCmd() *cobra.Command {
	var (
		passwordFile string
		light        bool
	)

	cmd := &cobra.Command{
		Use:   "export <dir>",
		Short: "导出当前钱包为 keystore 文件",
		Long: `将 SECRET / KEYSTORE / MNEMONIC 选中的钱包加密保存到目录，文件名为 UTC--<时间>--<地址>。

导出后可用 KEYSTORE=<文件> 与 KEYSTORE_PASSWORD 代替明文私钥。`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			if err := requireEnv(c.env); err != nil {
				return err
			}
			if err := c.ensureKeystorePassword(); err != nil {
				return err
			}
			w, err := wallet.FromConfig(c.env.GetAppConfig().Wallet, nil)
			if err != nil {
				return err
			}

			password, err := c.newPassword(passwordFile)
			if err != nil {
				return err
			}

			path, err := w.SaveKeystore(args[0], password, wallet.KeystoreOptions{Light: light})
			if err != nil {
				return fmt.Errorf("导出 keystore 失败: %w", err)
			}
			c.formatter.PrintSuccess("Keystore 已保存")

			return c.formatter.Print(map[string]interface{}{
				"address":  w.Address().Hex(),
				"keystore": path,
			})
		},
	}
	cmd.Flags().StringVar(&passwordFile, "password-file", "", "从文件读取加密密码 (默认: 终端输入)")
	cmd.Flags().BoolVar(&light, "light", false, "使用轻量 scrypt 参数")
	return cmd
}

// newPassword 读取新密码：指定文件时取首行，否则在终端输入两次
func (c *cli) newPassword(passwordFile string) (string, error) {
	if passwordFile != "" {
		data, err := os.ReadFile(passwordFile)
		if err != nil {
			return "", fmt.Errorf("read password file: %w", err)
		}
		password, _, _ := strings.Cut(string(data), "\n")
		return strings.TrimRight(password, "\r"), nil
	}

	password, err := c.promptPassword("新密码: ")
	if err != nil {
		return "", err
	}
	confirm, err := c.promptPassword("确认密码: ")
	if err != nil {
		return "", err
	}
	if password != confirm {
		return "", errors.New("passwords do not match")
	}
	return password, nil
}
