package tokenfactory

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/memecoins/memecoins-sdk/client/core/tokenfactory/bindings"
)

// 事件名称
const (
	EventAssetNew             = "AssetNew"
	EventFeeInfoSet           = "FeeInfoSet"
	EventOwnershipSet         = "OwnershipSet"
	EventOwnershipTransferred = "OwnershipTransferred"
)

// logsOf 过滤回执中由本合约发出的指定事件日志
func (c *Contract) logsOf(receipt *types.Receipt, event string) []types.Log {
	if receipt == nil {
		return nil
	}
	id := c.abi.Events[event].ID
	var out []types.Log
	for _, l := range receipt.Logs {
		if l == nil || l.Address != c.address || len(l.Topics) == 0 || l.Topics[0] != id {
			continue
		}
		out = append(out, *l)
	}
	return out
}

func assetNewFromBinding(ev *bindings.TokenFactoryAssetNew) AssetNew {
	return AssetNew{
		Asset:       ev.Asset,
		Owner:       ev.Owner,
		Name:        ev.Name,
		Symbol:      ev.Symbol,
		Decimals:    ev.Decimals,
		Supply:      ev.Supply,
		Logo:        stringOption(ev.Logo),
		Description: stringOption(ev.Description),
		Tags:        metadataListFromBinding(ev.Tags),
		Raw:         ev.Raw,
	}
}

// AssetNewEvents 解码回执中的 AssetNew 事件
func (c *Contract) AssetNewEvents(receipt *types.Receipt) ([]AssetNew, error) {
	var events []AssetNew
	for _, l := range c.logsOf(receipt, EventAssetNew) {
		ev, err := c.instance.ParseAssetNew(l)
		if err != nil {
			return nil, fmt.Errorf("decode %s log %d: %w", EventAssetNew, l.Index, err)
		}
		events = append(events, assetNewFromBinding(ev))
	}
	return events, nil
}

// OwnershipEvents 按日志顺序解码回执中的 OwnershipSet 与 OwnershipTransferred 事件
func (c *Contract) OwnershipEvents(receipt *types.Receipt) ([]OwnershipEvent, error) {
	if receipt == nil {
		return nil, nil
	}
	setID := c.abi.Events[EventOwnershipSet].ID
	transferredID := c.abi.Events[EventOwnershipTransferred].ID

	var events []OwnershipEvent
	for _, l := range receipt.Logs {
		if l == nil || l.Address != c.address || len(l.Topics) == 0 {
			continue
		}
		switch l.Topics[0] {
		case setID:
			ev, err := c.instance.ParseOwnershipSet(*l)
			if err != nil {
				return nil, fmt.Errorf("decode %s log %d: %w", EventOwnershipSet, l.Index, err)
			}
			events = append(events, OwnershipEvent{NewOwner: ev.NewOwner, Raw: ev.Raw})
		case transferredID:
			ev, err := c.instance.ParseOwnershipTransferred(*l)
			if err != nil {
				return nil, fmt.Errorf("decode %s log %d: %w", EventOwnershipTransferred, l.Index, err)
			}
			events = append(events, OwnershipEvent{
				PreviousOwner: ev.PreviousOwner,
				NewOwner:      ev.NewOwner,
				Transferred:   true,
				Raw:           ev.Raw,
			})
		}
	}
	return events, nil
}

// FeeInfoEvents 解码回执中的 FeeInfoSet 事件
func (c *Contract) FeeInfoEvents(receipt *types.Receipt) ([]FeeInfoEvent, error) {
	var events []FeeInfoEvent
	for _, l := range c.logsOf(receipt, EventFeeInfoSet) {
		ev, err := c.instance.ParseFeeInfoSet(l)
		if err != nil {
			return nil, fmt.Errorf("decode %s log %d: %w", EventFeeInfoSet, l.Index, err)
		}
		events = append(events, FeeInfoEvent{FeeInfo: feeInfoFromBinding(ev.FeeInfo), Raw: ev.Raw})
	}
	return events, nil
}

// FilterAssetNew 查询 fromBlock 起的历史 AssetNew 事件，可按所有者过滤
func (c *Contract) FilterAssetNew(ctx context.Context, fromBlock uint64, owners ...common.Address) ([]AssetNew, error) {
	it, err := c.instance.FilterAssetNew(&bind.FilterOpts{Start: fromBlock, Context: ctx}, nil, owners)
	if err != nil {
		return nil, fmt.Errorf("filter %s: %w", EventAssetNew, err)
	}
	defer it.Close()

	var events []AssetNew
	for it.Next() {
		events = append(events, assetNewFromBinding(it.Event))
	}
	if err := it.Error(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", EventAssetNew, err)
	}
	return events, nil
}
