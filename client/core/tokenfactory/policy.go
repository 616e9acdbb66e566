package tokenfactory

import (
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
)

// TxPolicy 交易策略，零值字段交由节点估算
type TxPolicy struct {
	GasLimit  uint64   // gas 上限
	GasTipCap *big.Int // EIP-1559 小费上限
	GasFeeCap *big.Int // EIP-1559 总费用上限
	GasPrice  *big.Int // 旧式 gas 价格，与 EIP-1559 字段互斥
}

// DefaultTxPolicy 默认策略：全部由节点估算
func DefaultTxPolicy() TxPolicy {
	return TxPolicy{}
}

func (p TxPolicy) apply(opts *bind.TransactOpts) {
	if p.GasLimit > 0 {
		opts.GasLimit = p.GasLimit
	}
	if p.GasPrice != nil {
		opts.GasPrice = new(big.Int).Set(p.GasPrice)
		return
	}
	if p.GasTipCap != nil {
		opts.GasTipCap = new(big.Int).Set(p.GasTipCap)
	}
	if p.GasFeeCap != nil {
		opts.GasFeeCap = new(big.Int).Set(p.GasFeeCap)
	}
}
