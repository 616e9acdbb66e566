package tokenfactory

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/memecoins/memecoins-sdk/client/core/tokenfactory/bindings"
)

// AssetID 资产标识（bytes32）
type AssetID [32]byte

// ZeroAssetID 空资产标识
var ZeroAssetID AssetID

// ParseAssetID 解析 0x 前缀的 32 字节十六进制资产标识
func ParseAssetID(s string) (AssetID, error) {
	var id AssetID
	text := strings.TrimPrefix(strings.TrimSpace(s), "0x")
	raw, err := hex.DecodeString(text)
	if err != nil {
		return id, fmt.Errorf("invalid asset id %q: %w", s, err)
	}
	if len(raw) != len(id) {
		return id, fmt.Errorf("invalid asset id %q: expected 32 bytes, got %d", s, len(raw))
	}
	copy(id[:], raw)
	return id, nil
}

// Hex 返回 0x 前缀的十六进制表示
func (a AssetID) Hex() string {
	return common.Hash(a).Hex()
}

func (a AssetID) String() string {
	return a.Hex()
}

// IsZero 是否为空资产标识
func (a AssetID) IsZero() bool {
	return a == ZeroAssetID
}

// State 合约所有权状态
type State uint8

const (
	StateUninitialized State = iota // 尚未初始化
	StateInitialized                // 已设置所有者
	StateRevoked                    // 所有权已放弃
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "Uninitialized"
	case StateInitialized:
		return "Initialized"
	case StateRevoked:
		return "Revoked"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// Ownership 所有权查询结果，仅 Initialized 时 Owner 有意义
type Ownership struct {
	State State
	Owner common.Address
}

// Initialized 返回指定所有者的已初始化状态
func Initialized(owner common.Address) Ownership {
	return Ownership{State: StateInitialized, Owner: owner}
}

func (o Ownership) String() string {
	if o.State == StateInitialized {
		return fmt.Sprintf("Initialized(%s)", o.Owner.Hex())
	}
	return o.State.String()
}

// FeeInfo 创建资产的收费配置
type FeeInfo struct {
	Asset   common.Address // 收费资产，零地址表示原生币
	Amount  uint64         // 最低费用
	Address common.Address // 收费地址
}

// IsNative 收费资产是否为原生币
func (f FeeInfo) IsNative() bool {
	return f.Asset == (common.Address{})
}

func (f FeeInfo) toBinding() bindings.FeeInfo {
	return bindings.FeeInfo{FeeAsset: f.Asset, FeeAmount: f.Amount, FeeAddress: f.Address}
}

func feeInfoFromBinding(b bindings.FeeInfo) FeeInfo {
	return FeeInfo{Asset: b.FeeAsset, Amount: b.FeeAmount, Address: b.FeeAddress}
}

// MetadataKind 元数据取值类型
type MetadataKind uint8

const (
	MetadataB256 MetadataKind = iota
	MetadataBytes
	MetadataInt
	MetadataString
)

func (k MetadataKind) String() string {
	switch k {
	case MetadataB256:
		return "B256"
	case MetadataBytes:
		return "Bytes"
	case MetadataInt:
		return "Int"
	case MetadataString:
		return "String"
	default:
		return fmt.Sprintf("MetadataKind(%d)", uint8(k))
	}
}

// Metadata 元数据取值，Kind 决定哪个字段有效
type Metadata struct {
	Kind   MetadataKind
	B256   common.Hash
	Bytes  []byte
	Int    uint64
	String string
}

// B256Metadata 构造 B256 元数据
func B256Metadata(v common.Hash) Metadata { return Metadata{Kind: MetadataB256, B256: v} }

// BytesMetadata 构造 Bytes 元数据
func BytesMetadata(v []byte) Metadata { return Metadata{Kind: MetadataBytes, Bytes: v} }

// IntMetadata 构造 Int 元数据
func IntMetadata(v uint64) Metadata { return Metadata{Kind: MetadataInt, Int: v} }

// StringMetadata 构造 String 元数据
func StringMetadata(v string) Metadata { return Metadata{Kind: MetadataString, String: v} }

// Value 返回当前类型对应的取值
func (m Metadata) Value() interface{} {
	switch m.Kind {
	case MetadataB256:
		return m.B256
	case MetadataBytes:
		return m.Bytes
	case MetadataInt:
		return m.Int
	case MetadataString:
		return m.String
	default:
		return nil
	}
}

// 只编码当前类型的字段，其余字段置零
func (m Metadata) toBinding() bindings.Metadata {
	out := bindings.Metadata{Kind: uint8(m.Kind), Data: []byte{}}
	switch m.Kind {
	case MetadataB256:
		out.B256 = m.B256
	case MetadataBytes:
		if m.Bytes != nil {
			out.Data = m.Bytes
		}
	case MetadataInt:
		out.Integer = m.Int
	case MetadataString:
		out.Text = m.String
	}
	return out
}

func metadataFromBinding(b bindings.Metadata) Metadata {
	m := Metadata{Kind: MetadataKind(b.Kind)}
	switch m.Kind {
	case MetadataB256:
		m.B256 = b.B256
	case MetadataBytes:
		m.Bytes = b.Data
	case MetadataInt:
		m.Int = b.Integer
	case MetadataString:
		m.String = b.Text
	}
	return m
}

// MetadataEntry 键值对形式的元数据
type MetadataEntry struct {
	Key   string
	Value Metadata
}

func metadataListToBinding(list []MetadataEntry) []bindings.MetadataEntry {
	out := make([]bindings.MetadataEntry, 0, len(list))
	for _, e := range list {
		out = append(out, bindings.MetadataEntry{Key: e.Key, Value: e.Value.toBinding()})
	}
	return out
}

func metadataListFromBinding(list []bindings.MetadataEntry) []MetadataEntry {
	out := make([]MetadataEntry, 0, len(list))
	for _, e := range list {
		out = append(out, MetadataEntry{Key: e.Key, Value: metadataFromBinding(e.Value)})
	}
	return out
}

// NewAssetRequest 创建资产请求
type NewAssetRequest struct {
	Name        string
	Symbol      string
	Decimals    uint8
	MintAmount  uint64
	Logo        *string // 可选
	Description *string // 可选
	Metadata    []MetadataEntry

	FeeAsset  common.Address // 支付费用的资产，零地址时费用随交易转账
	FeeAmount uint64         // 支付的费用
	GasLimit  uint64         // 交易 gas 上限
}

// AssetNew 资产创建事件
type AssetNew struct {
	Asset       AssetID
	Owner       common.Address
	Name        string
	Symbol      string
	Decimals    uint8
	Supply      uint64
	Logo        *string
	Description *string
	Tags        []MetadataEntry

	Raw types.Log
}

// OwnershipEvent 所有权变更事件
//
// OwnershipSet 事件的 PreviousOwner 为零地址。
type OwnershipEvent struct {
	PreviousOwner common.Address
	NewOwner      common.Address
	Transferred   bool // true 为 OwnershipTransferred，false 为 OwnershipSet

	Raw types.Log
}

// FeeInfoEvent 收费配置变更事件
type FeeInfoEvent struct {
	FeeInfo FeeInfo

	Raw types.Log
}

func optionalString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func stringOption(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
