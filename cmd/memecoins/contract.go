package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/memecoins/memecoins-sdk/client/core/config"
	"github.com/memecoins/memecoins-sdk/client/core/tokenfactory"
)

// deployCmd 部署合约
func (c *cli) deployCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "deploy <fee_amount> <fee_address>",
		Short: "部署代币工厂合约",
		Long: `部署代币工厂合约并以当前钱包为所有者完成初始化。

收费配置为 {ASSET_ID, fee_amount, fee_address}，需要 NODE_URL 与 ASSET_ID。`,
		Args: positional([]string{"fee_amount", "fee_address"}, feeAmountArg, addressArg),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, _ := parseFeeAmount("fee_amount", args[0])
			feeAddress, _ := parseAddress("fee_address", args[1])

			return c.withSession(cmd, []string{config.KeyAssetID}, func(ctx context.Context, s *session) error {
				asset, err := parseAddress(config.KeyAssetID, c.env.Get(config.KeyAssetID))
				if err != nil {
					return err
				}
				feeInfo := tokenfactory.FeeInfo{Asset: asset, Amount: amount, Address: feeAddress}

				c.formatter.PrintInfo(fmt.Sprintf("部署账户: %s", s.Wallet.Address().Hex()))
				contract, err := tokenfactory.Deploy(ctx, s.Wallet, feeInfo, s.contractOptions()...)
				if err != nil {
					return fmt.Errorf("部署合约失败: %w", err)
				}
				c.formatter.PrintSuccess("合约部署成功")

				return c.formatter.Print(map[string]interface{}{
					"contract_id": contract.Address().Hex(),
				})
			})
		},
	}
}

// setFeeInfoCmd 设置收费配置
func (c *cli) setFeeInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-fee-info <contract_id> <fee_amount> <fee_address>",
		Short: "设置收费配置",
		Long:  "以所有者身份设置收费配置（收费资产取自 ASSET_ID），然后读回并输出。",
		Args:  positional([]string{"contract_id", "fee_amount", "fee_address"}, addressArg, feeAmountArg, addressArg),
		RunE: func(cmd *cobra.Command, args []string) error {
			contractID, _ := parseAddress("contract_id", args[0])
			amount, _ := parseFeeAmount("fee_amount", args[1])
			feeAddress, _ := parseAddress("fee_address", args[2])

			return c.withSession(cmd, []string{config.KeyAssetID}, func(ctx context.Context, s *session) error {
				asset, err := parseAddress(config.KeyAssetID, c.env.Get(config.KeyAssetID))
				if err != nil {
					return err
				}

				contract, err := s.bind(contractID)
				if err != nil {
					return err
				}
				resp, err := contract.SetFeeInfo(ctx, tokenfactory.FeeInfo{Asset: asset, Amount: amount, Address: feeAddress})
				if err != nil {
					return fmt.Errorf("设置收费配置失败: %w", err)
				}
				c.formatter.PrintSuccess(fmt.Sprintf("收费配置已更新 (tx %s)", resp.TxHash().Hex()))

				feeInfo, err := contract.FeeInfo(ctx)
				if err != nil {
					return fmt.Errorf("读取收费配置失败: %w", err)
				}
				return c.formatter.Print(feeInfoOutput(feeInfo))
			})
		},
	}
}

// feeInfoCmd 查询收费配置
func (c *cli) feeInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fee-info <contract_id>",
		Short: "查询收费配置",
		Args:  positional([]string{"contract_id"}, addressArg),
		RunE: func(cmd *cobra.Command, args []string) error {
			contractID, _ := parseAddress("contract_id", args[0])

			return c.withSession(cmd, nil, func(ctx context.Context, s *session) error {
				contract, err := s.bind(contractID)
				if err != nil {
					return err
				}
				feeInfo, err := contract.FeeInfo(ctx)
				if err != nil {
					return fmt.Errorf("读取收费配置失败: %w", err)
				}
				return c.formatter.Print(feeInfoOutput(feeInfo))
			})
		},
	}
}

// ownerCmd 查询所有权
func (c *cli) ownerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "owner <contract_id>",
		Short: "查询合约所有者",
		Args:  positional([]string{"contract_id"}, addressArg),
		RunE: func(cmd *cobra.Command, args []string) error {
			contractID, _ := parseAddress("contract_id", args[0])

			return c.withSession(cmd, nil, func(ctx context.Context, s *session) error {
				contract, err := s.bind(contractID)
				if err != nil {
					return err
				}
				ownership, err := contract.Owner(ctx)
				if err != nil {
					return fmt.Errorf("读取所有者失败: %w", err)
				}

				out := map[string]interface{}{"state": ownership.State.String()}
				if ownership.State == tokenfactory.StateInitialized {
					out["owner"] = ownership.Owner.Hex()
				}
				return c.formatter.Print(out)
			})
		},
	}
}

// transferOwnershipCmd 转移所有权
func (c *cli) transferOwnershipCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "transfer-ownership <contract_id> <new_owner>",
		Short: "转移合约所有权",
		Args:  positional([]string{"contract_id", "new_owner"}, addressArg, addressArg),
		RunE: func(cmd *cobra.Command, args []string) error {
			contractID, _ := parseAddress("contract_id", args[0])
			newOwner, _ := parseAddress("new_owner", args[1])

			return c.withSession(cmd, nil, func(ctx context.Context, s *session) error {
				contract, err := s.bind(contractID)
				if err != nil {
					return err
				}
				resp, err := contract.TransferOwnership(ctx, newOwner)
				if err != nil {
					return fmt.Errorf("转移所有权失败: %w", err)
				}
				c.formatter.PrintSuccess("所有权已转移")

				return c.formatter.Print(map[string]interface{}{
					"new_owner": newOwner.Hex(),
					"tx_hash":   resp.TxHash().Hex(),
					"block":     resp.BlockNumber(),
				})
			})
		},
	}
}

// assetCmd 按名称查询资产
func (c *cli) assetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "asset <contract_id> <name>",
		Short: "按名称查询资产",
		Args:  positional([]string{"contract_id", "name"}, addressArg, nil),
		RunE: func(cmd *cobra.Command, args []string) error {
			contractID, _ := parseAddress("contract_id", args[0])
			name := args[1]

			return c.withSession(cmd, nil, func(ctx context.Context, s *session) error {
				contract, err := s.bind(contractID)
				if err != nil {
					return err
				}
				asset, found, err := contract.GetAsset(ctx, name)
				if err != nil {
					return fmt.Errorf("查询资产失败: %w", err)
				}
				if !found {
					return fmt.Errorf("asset %q not found", name)
				}

				out := map[string]interface{}{"asset_id": asset.Hex()}
				if v, ok, err := contract.Name(ctx, asset); err != nil {
					return err
				} else if ok {
					out["name"] = v
				}
				if v, ok, err := contract.Symbol(ctx, asset); err != nil {
					return err
				} else if ok {
					out["symbol"] = v
				}
				if v, ok, err := contract.Decimals(ctx, asset); err != nil {
					return err
				} else if ok {
					out["decimals"] = v
				}
				if v, ok, err := contract.TotalSupply(ctx, asset); err != nil {
					return err
				} else if ok {
					out["total_supply"] = v
				}
				return c.formatter.Print(out)
			})
		},
	}
}

func feeInfoOutput(feeInfo tokenfactory.FeeInfo) map[string]interface{} {
	return map[string]interface{}{
		"asset":   feeInfo.Asset.Hex(),
		"address": feeInfo.Address.Hex(),
		"amount":  feeInfo.Amount,
	}
}
