package tokenfactory

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// Response 写操作结果：返回值、交易与回执
type Response[T any] struct {
	Value   T
	Tx      *types.Transaction
	Receipt *types.Receipt
}

// TxHash 返回交易哈希
func (r *Response[T]) TxHash() common.Hash {
	if r.Tx == nil {
		return common.Hash{}
	}
	return r.Tx.Hash()
}

// GasUsed 返回实际消耗的 gas
func (r *Response[T]) GasUsed() uint64 {
	if r.Receipt == nil {
		return 0
	}
	return r.Receipt.GasUsed
}

// BlockNumber 返回交易所在区块高度
func (r *Response[T]) BlockNumber() uint64 {
	if r.Receipt == nil || r.Receipt.BlockNumber == nil {
		return 0
	}
	return r.Receipt.BlockNumber.Uint64()
}
