package wallet

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appconfig "github.com/memecoins/memecoins-sdk/internal/config"
	"github.com/memecoins/memecoins-sdk/pkg/types"
)

func TestFromConfig(t *testing.T) {
	secretAddr := common.HexToAddress("0x2c7536E3605D9C16a7a3D7b1898e529396a65c23")
	mnemonicAddr := common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
	secondAddr := common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")

	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	keystorePath, err := SaveKeystore(t.TempDir(), key, "pw", KeystoreOptions{Light: true})
	require.NoError(t, err)
	keystoreAddr := crypto.PubkeyToAddress(key.PublicKey)

	tests := []struct {
		name     string
		cfg      *types.UserWalletConfig
		want     common.Address
		wantType SignerType
		wantErr  bool
	}{
		{
			name:     "SECRET优先",
			cfg:      &types.UserWalletConfig{Secret: types.StringPtr(testPrivateKey), Keystore: types.StringPtr(keystorePath), Mnemonic: types.StringPtr(testMnemonic)},
			want:     secretAddr,
			wantType: SignerTypePrivateKey,
		},
		{
			name:     "KEYSTORE次之",
			cfg:      &types.UserWalletConfig{Keystore: types.StringPtr(keystorePath), KeystorePassword: types.StringPtr("pw"), Mnemonic: types.StringPtr(testMnemonic)},
			want:     keystoreAddr,
			wantType: SignerTypeKeystore,
		},
		{
			name:     "MNEMONIC默认路径",
			cfg:      &types.UserWalletConfig{Mnemonic: types.StringPtr(testMnemonic)},
			want:     mnemonicAddr,
			wantType: SignerTypeMnemonic,
		},
		{
			name:     "MNEMONIC指定路径",
			cfg:      &types.UserWalletConfig{Mnemonic: types.StringPtr(testMnemonic), DerivationPath: types.StringPtr(PathForIndex(1))},
			want:     secondAddr,
			wantType: SignerTypeMnemonic,
		},
		{
			name:    "KEYSTORE密码错误",
			cfg:     &types.UserWalletConfig{Keystore: types.StringPtr(keystorePath), KeystorePassword: types.StringPtr("wrong")},
			wantErr: true,
		},
		{
			name:    "SECRET无效",
			cfg:     &types.UserWalletConfig{Secret: types.StringPtr("0x12")},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := FromConfig(tt.cfg, nil)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, w.Address())
			assert.Equal(t, tt.wantType, w.Type())
		})
	}
}

func TestFromConfigNoSource(t *testing.T) {
	_, err := FromConfig(nil, nil)
	assert.ErrorIs(t, err, ErrNoWalletSource)

	_, err = FromConfig(&types.UserWalletConfig{}, nil)
	assert.ErrorIs(t, err, ErrNoWalletSource)
}

func TestProvideWallet(t *testing.T) {
	provider := appconfig.NewProvider(&types.AppConfig{
		Wallet: &types.UserWalletConfig{Secret: types.StringPtr(testPrivateKey)},
	})

	w, err := ProvideWallet(ModuleParams{Config: provider})
	require.NoError(t, err)
	assert.Equal(t, common.HexToAddress("0x2c7536E3605D9C16a7a3D7b1898e529396a65c23"), w.Address())

	_, err = ProvideWallet(ModuleParams{Config: appconfig.NewProvider(nil)})
	assert.ErrorIs(t, err, ErrNoWalletSource)
}
