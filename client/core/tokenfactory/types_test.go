package tokenfactory

import (
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/memecoins/memecoins-sdk/client/core/tokenfactory/bindings"
)

func TestParseAssetID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"带0x前缀", testAsset.Hex(), false},
		{"无前缀", testAsset.Hex()[2:], false},
		{"长度不足", "0x1234", true},
		{"非十六进制", "0x" + strings.Repeat("zz", 32), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAssetID(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testAsset, got)
			assert.Equal(t, testAsset.Hex(), got.String())
		})
	}
}

func TestOwnershipString(t *testing.T) {
	owner := common.HexToAddress("0x2c7536E3605D9C16a7a3D7b1898e529396a65c23")

	assert.Equal(t, "Uninitialized", Ownership{}.String())
	assert.Equal(t, "Revoked", Ownership{State: StateRevoked}.String())
	assert.Equal(t, "Initialized("+owner.Hex()+")", Initialized(owner).String())
	assert.Equal(t, "State(9)", State(9).String())
}

func TestMetadataEncoding(t *testing.T) {
	hash := common.HexToHash("0x01")

	tests := []struct {
		name  string
		value Metadata
		want  bindings.Metadata
	}{
		{"B256", B256Metadata(hash), bindings.Metadata{Kind: 0, B256: hash, Data: []byte{}}},
		{"Bytes", BytesMetadata([]byte{1, 2}), bindings.Metadata{Kind: 1, Data: []byte{1, 2}}},
		{"Int", IntMetadata(7), bindings.Metadata{Kind: 2, Integer: 7, Data: []byte{}}},
		{"String", StringMetadata("doge"), bindings.Metadata{Kind: 3, Text: "doge", Data: []byte{}}},
		{"只编码当前类型", Metadata{Kind: MetadataInt, Int: 1, String: "ignored"}, bindings.Metadata{Kind: 2, Integer: 1, Data: []byte{}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.value.toBinding())
		})
	}

	assert.Equal(t, uint64(7), IntMetadata(7).Value())
	assert.Equal(t, "doge", StringMetadata("doge").Value())
	assert.Equal(t, "Bytes", MetadataBytes.String())
	assert.Equal(t, Metadata{Kind: MetadataString, String: "doge"}, metadataFromBinding(bindings.Metadata{Kind: 3, Text: "doge", Integer: 5}))
}

func TestOptionalStrings(t *testing.T) {
	assert.Equal(t, "", optionalString(nil))
	s := "logo"
	assert.Equal(t, "logo", optionalString(&s))
	assert.Nil(t, stringOption(""))
	assert.Equal(t, "logo", *stringOption("logo"))
}
