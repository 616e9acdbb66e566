package wallet

import (
	"context"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPrivateKey = "0x4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318"

func TestNewFromPrivateKey(t *testing.T) {
	want := common.HexToAddress("0x2c7536E3605D9C16a7a3D7b1898e529396a65c23")

	tests := []struct {
		name    string
		key     string
		wantErr bool
	}{
		{"带0x前缀", testPrivateKey, false},
		{"无前缀", testPrivateKey[2:], false},
		{"前后空白", "  " + testPrivateKey + "\n", false},
		{"长度错误", "0x1234", true},
		{"非十六进制", "zz" + testPrivateKey[4:], true},
		{"空", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := NewFromPrivateKey(tt.key, nil)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidPrivateKey)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, want, w.Address())
			assert.Equal(t, SignerTypePrivateKey, w.Type())
			assert.Equal(t, want.Hex(), w.String())
		})
	}
}

func TestWalletWithoutProvider(t *testing.T) {
	w, err := NewFromPrivateKey(testPrivateKey, nil)
	require.NoError(t, err)

	ctx := context.Background()
	_, err = w.TransactOpts(ctx)
	assert.ErrorIs(t, err, ErrNoProvider)
	_, err = w.Balance(ctx)
	assert.ErrorIs(t, err, ErrNoProvider)
	_, err = w.Transfer(ctx, common.Address{}, big.NewInt(1))
	assert.ErrorIs(t, err, ErrNoProvider)
}

func TestWalletSign(t *testing.T) {
	w, err := NewFromPrivateKey(testPrivateKey, nil)
	require.NoError(t, err)

	hash := crypto.Keccak256([]byte("memecoins"))
	sig, err := w.SignHash(hash)
	require.NoError(t, err)
	require.Len(t, sig, 65)

	pub, err := crypto.SigToPub(hash, sig)
	require.NoError(t, err)
	assert.Equal(t, w.Address(), crypto.PubkeyToAddress(*pub))

	_, err = w.SignHash([]byte("short"))
	assert.Error(t, err)

	chainID := big.NewInt(1337)
	to := common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")
	tx, err := w.SignTx(types.NewTx(&types.DynamicFeeTx{ChainID: chainID, To: &to, Gas: 21000, Value: big.NewInt(1)}), chainID)
	require.NoError(t, err)
	from, err := types.Sender(types.LatestSignerForChainID(chainID), tx)
	require.NoError(t, err)
	assert.Equal(t, w.Address(), from)
}
