package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"
)

// argParser 校验单个位置参数
type argParser func(name, value string) error

// positional 组合参数个数与逐个参数校验，校验失败由 cobra 作为用法错误报告
func positional(names []string, parsers ...argParser) cobra.PositionalArgs {
	return cobra.MatchAll(
		cobra.ExactArgs(len(names)),
		func(cmd *cobra.Command, args []string) error {
			for i, parse := range parsers {
				if parse == nil {
					continue
				}
				if err := parse(names[i], args[i]); err != nil {
					return err
				}
			}
			return nil
		},
	)
}

func addressArg(name, value string) error {
	_, err := parseAddress(name, value)
	return err
}

func feeAmountArg(name, value string) error {
	_, err := parseFeeAmount(name, value)
	return err
}

// parseAddress 解析 0x 前缀的 20 字节十六进制地址
func parseAddress(name, value string) (common.Address, error) {
	value = strings.TrimSpace(value)
	if !common.IsHexAddress(value) {
		return common.Address{}, fmt.Errorf("invalid %s %q: expected a 20-byte hex address", name, value)
	}
	return common.HexToAddress(value), nil
}

// parseFeeAmount 解析 uint64 费用
func parseFeeAmount(name, value string) (uint64, error) {
	amount, err := strconv.ParseUint(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: expected an unsigned 64-bit integer", name, value)
	}
	return amount, nil
}
