package wallet

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testMnemonic = "test test test test test test test test test test test junk"

func TestMnemonicSigner_DeriveKey(t *testing.T) {
	signer, err := NewMnemonicSigner(testMnemonic, "")
	require.NoError(t, err)

	tests := []struct {
		name string
		path string
		want common.Address
	}{
		{"索引0", "m/44'/60'/0'/0/0", common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")},
		{"索引1", "m/44'/60'/0'/0/1", common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")},
		{"H 硬化写法", "44H/60H/0H/0/1", common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := signer.DeriveKey(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, crypto.PubkeyToAddress(key.PublicKey))
		})
	}

	key, err := signer.DeriveKey("m/44'/60'/0'/0/0")
	require.NoError(t, err)
	assert.Equal(t, "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80", common.Bytes2Hex(crypto.FromECDSA(key)))

	again, err := signer.DeriveKey("44'/60'/0'/0/0")
	require.NoError(t, err)
	assert.Same(t, key, again, "同一路径应命中缓存")
}

func TestMnemonicSigner_Errors(t *testing.T) {
	_, err := NewMnemonicSigner("", "")
	assert.Error(t, err)

	_, err = NewMnemonicSigner("abandon abandon abandon", "")
	assert.ErrorIs(t, err, ErrInvalidMnemonic)

	signer, err := NewMnemonicSigner(testMnemonic, "")
	require.NoError(t, err)
	_, err = signer.DeriveKey("m/44'/60'/0'")
	assert.Error(t, err)
}

func TestMnemonicSigner_Passphrase(t *testing.T) {
	plain, err := NewFromMnemonic(testMnemonic, "", "", nil)
	require.NoError(t, err)
	salted, err := NewFromMnemonic(testMnemonic, "secret", "", nil)
	require.NoError(t, err)

	assert.NotEqual(t, plain.Address(), salted.Address())
}

func TestNewFromMnemonic(t *testing.T) {
	w, err := NewFromMnemonic(testMnemonic, "", "", nil)
	require.NoError(t, err)

	assert.Equal(t, common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"), w.Address())
	assert.Equal(t, SignerTypeMnemonic, w.Type())
	assert.Equal(t, "m/44'/60'/0'/0/0", w.DerivationPath())

	w, err = NewFromMnemonic(testMnemonic, "", "44'/60'/0'/0/1", nil)
	require.NoError(t, err)
	assert.Equal(t, "m/44'/60'/0'/0/1", w.DerivationPath())
}

func TestMnemonicSigner_DeriveWallets(t *testing.T) {
	signer, err := NewMnemonicSigner(testMnemonic, "")
	require.NoError(t, err)

	wallets, err := signer.DeriveWallets(3, nil)
	require.NoError(t, err)
	require.Len(t, wallets, 3)

	assert.Equal(t, common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"), wallets[0].Address())
	assert.Equal(t, common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8"), wallets[1].Address())
	assert.NotEqual(t, wallets[1].Address(), wallets[2].Address())
}
