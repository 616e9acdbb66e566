package tokenfactory

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"
)

// 合约自定义错误
var (
	ErrNotOwner           = errors.New("NotOwner")
	ErrAlreadyInitialized = errors.New("AlreadyInitialized")
	ErrNotInitialized     = errors.New("NotInitialized")
	ErrNameTooLong        = errors.New("NameTooLong")
	ErrSymbolTooLong      = errors.New("SymbolTooLong")
	ErrZeroMintAmount     = errors.New("ZeroMintAmount")
	ErrInsufficientFee    = errors.New("InsufficientFee")
	ErrAssetAlreadyExists = errors.New("AssetAlreadyExists")
)

var (
	// ErrTransactionFailed 交易已上链但执行失败（回执 status=0）
	ErrTransactionFailed = errors.New("transaction failed")
	// ErrNoAccount 合约未绑定签名钱包
	ErrNoAccount = errors.New("contract has no account")
	// ErrEventNotFound 回执中缺少期望的事件
	ErrEventNotFound = errors.New("event not found in receipt")
)

var contractErrors = map[string]error{
	"NotOwner":           ErrNotOwner,
	"AlreadyInitialized": ErrAlreadyInitialized,
	"NotInitialized":     ErrNotInitialized,
	"NameTooLong":        ErrNameTooLong,
	"SymbolTooLong":      ErrSymbolTooLong,
	"ZeroMintAmount":     ErrZeroMintAmount,
	"InsufficientFee":    ErrInsufficientFee,
	"AssetAlreadyExists": ErrAssetAlreadyExists,
}

// RevertError 合约执行回滚
//
// Name 非空时为 ABI 中声明的自定义错误，Args 为其解码后的参数；
// Reason 为 Error(string) 形式的回滚原因。
type RevertError struct {
	Name   string
	Args   []interface{}
	Reason string
	Data   []byte
}

func (e *RevertError) Error() string {
	switch {
	case e.Name != "":
		args := make([]string, len(e.Args))
		for i, a := range e.Args {
			args[i] = fmt.Sprint(a)
		}
		return fmt.Sprintf("execution reverted: %s(%s)", e.Name, strings.Join(args, ", "))
	case e.Reason != "":
		return "execution reverted: " + e.Reason
	case len(e.Data) > 0:
		return "execution reverted: " + hexutil.Encode(e.Data)
	default:
		return "execution reverted"
	}
}

// Unwrap 返回对应的哨兵错误，使 errors.Is(err, ErrNotOwner) 成立
func (e *RevertError) Unwrap() error {
	return contractErrors[e.Name]
}

// decodeRevert 按 ABI 自定义错误解码回滚数据
func decodeRevert(contractABI abi.ABI, data []byte) *RevertError {
	rev := &RevertError{Data: data}
	if len(data) < 4 {
		return rev
	}
	if reason, err := abi.UnpackRevert(data); err == nil {
		rev.Reason = reason
		return rev
	}

	var id [4]byte
	copy(id[:], data[:4])
	abiErr, err := contractABI.ErrorByID(id)
	if err != nil {
		return rev
	}
	rev.Name = abiErr.Name
	if len(abiErr.Inputs) > 0 {
		if args, err := abiErr.Inputs.Unpack(data[4:]); err == nil {
			rev.Args = args
		}
	}
	return rev
}

// revertData 从节点返回的错误中提取回滚数据
func revertData(err error) ([]byte, bool) {
	var dataErr rpc.DataError
	if !errors.As(err, &dataErr) {
		return nil, false
	}
	switch data := dataErr.ErrorData().(type) {
	case string:
		raw, decErr := hexutil.Decode(data)
		if decErr != nil {
			return nil, false
		}
		return raw, true
	case []byte:
		return data, true
	default:
		return nil, false
	}
}

// asRevert 将执行错误转换为 *RevertError，无回滚数据时原样返回
func asRevert(contractABI abi.ABI, err error) error {
	data, ok := revertData(err)
	if !ok {
		if _, rest, found := strings.Cut(err.Error(), "execution reverted"); found {
			return &RevertError{Reason: strings.TrimSpace(strings.TrimPrefix(rest, ":"))}
		}
		return err
	}
	return decodeRevert(contractABI, data)
}
