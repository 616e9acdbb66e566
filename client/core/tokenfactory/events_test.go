package tokenfactory

import (
	"context"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/memecoins/memecoins-sdk/client/core/tokenfactory/bindings"
)

func TestOwnershipEvents(t *testing.T) {
	c, backend, owner := newFakeContract(t)
	user := common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")

	foreign := backend.eventLog(EventOwnershipSet, []common.Hash{addrTopic(user)})
	foreign.Address = common.HexToAddress("0x00000000000000000000000000000000000000bb")

	receipt := &types.Receipt{Logs: []*types.Log{
		backend.eventLog(EventOwnershipSet, []common.Hash{addrTopic(owner.Address())}),
		foreign,
		backend.eventLog(EventFeeInfoSet, nil, bindings.FeeInfo{FeeAmount: 1}),
		backend.eventLog(EventOwnershipTransferred, []common.Hash{addrTopic(owner.Address()), addrTopic(user)}),
	}}

	events, err := c.OwnershipEvents(receipt)
	require.NoError(t, err)
	require.Len(t, events, 2)

	assert.False(t, events[0].Transferred)
	assert.Equal(t, owner.Address(), events[0].NewOwner)
	assert.Equal(t, common.Address{}, events[0].PreviousOwner)

	assert.True(t, events[1].Transferred)
	assert.Equal(t, owner.Address(), events[1].PreviousOwner)
	assert.Equal(t, user, events[1].NewOwner)
}

func TestFeeInfoEvents(t *testing.T) {
	c, backend, _ := newFakeContract(t)
	fee := bindings.FeeInfo{
		FeeAsset:   common.HexToAddress("0x00000000000000000000000000000000000000aa"),
		FeeAmount:  1000,
		FeeAddress: common.HexToAddress("0x00000000000000000000000000000000000fee03"),
	}
	receipt := &types.Receipt{Logs: []*types.Log{backend.eventLog(EventFeeInfoSet, nil, fee)}}

	events, err := c.FeeInfoEvents(receipt)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, feeInfoFromBinding(fee), events[0].FeeInfo)
	assert.False(t, events[0].FeeInfo.IsNative())
}

func TestEventsNilReceipt(t *testing.T) {
	c, _, _ := newFakeContract(t)

	assetEvents, err := c.AssetNewEvents(nil)
	require.NoError(t, err)
	assert.Empty(t, assetEvents)

	ownership, err := c.OwnershipEvents(nil)
	require.NoError(t, err)
	assert.Empty(t, ownership)
}

func TestFilterAssetNew(t *testing.T) {
	c, backend, owner := newFakeContract(t)

	l := backend.eventLog(EventAssetNew,
		[]common.Hash{common.Hash(testAsset), addrTopic(owner.Address())},
		"BTC_NAME", "BTC", uint8(8), uint64(1_000_000), "", "about btc", []bindings.MetadataEntry{})
	l.BlockNumber = 7
	backend.filtered = []types.Log{*l}

	events, err := c.FilterAssetNew(context.Background(), 0, owner.Address())
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, testAsset, events[0].Asset)
	assert.Equal(t, uint64(7), events[0].Raw.BlockNumber)
	assert.Nil(t, events[0].Logo)
	require.NotNil(t, events[0].Description)
	assert.Equal(t, "about btc", *events[0].Description)
}
