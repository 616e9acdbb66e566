package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeEnvFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadEnvFile(t *testing.T) {
	path := writeEnvFile(t, "SECRET=0xabc\nNODE_URL=http://127.0.0.1:8545\nASSET_ID=0x0000000000000000000000000000000000000000\nRPC_RETRY_ATTEMPTS=5\n")

	env, err := LoadEnv(path)
	require.NoError(t, err)
	assert.True(t, env.FileLoaded())
	assert.Equal(t, path, env.File())

	assert.Equal(t, "0xabc", env.Get(KeySecret))
	assert.Equal(t, "http://127.0.0.1:8545", env.Get(KeyNodeURL))
	assert.NoError(t, env.Require(KeySecret, KeyNodeURL, KeyAssetID))

	cfg := env.GetAppConfig()
	require.NotNil(t, cfg.RPC.RetryAttempts)
	assert.Equal(t, 5, *cfg.RPC.RetryAttempts)
	assert.Nil(t, cfg.Log.Level)
}

func TestLoadEnvProcessOverridesFile(t *testing.T) {
	path := writeEnvFile(t, "NODE_URL=http://file:8545\n")
	t.Setenv(KeyNodeURL, "http://process:8545")

	env, err := LoadEnv(path)
	require.NoError(t, err)
	assert.Equal(t, "http://process:8545", env.Get(KeyNodeURL))
}

func TestLoadEnvMissingFile(t *testing.T) {
	t.Setenv(KeyAssetID, "0x01")

	env, err := LoadEnv(filepath.Join(t.TempDir(), "absent.env"))
	require.NoError(t, err)
	assert.False(t, env.FileLoaded())
	assert.Equal(t, "0x01", env.Get(KeyAssetID))
}

func TestRequire(t *testing.T) {
	env := FromMap(map[string]string{KeyNodeURL: "http://x"})

	err := env.Require(KeySecret, KeyNodeURL, KeyAssetID)
	require.Error(t, err)

	var missing *MissingKeysError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, []string{KeySecret, KeyAssetID}, missing.Keys)
	assert.Equal(t, "can't find SECRET; can't find ASSET_ID", err.Error())
}

func TestWalletSource(t *testing.T) {
	tests := []struct {
		name   string
		values map[string]string
		want   WalletSource
	}{
		{"无", map[string]string{}, WalletSourceNone},
		{"助记词", map[string]string{KeyMnemonic: "abandon"}, WalletSourceMnemonic},
		{"keystore 优先于助记词", map[string]string{KeyMnemonic: "abandon", KeyKeystore: "k.json"}, WalletSourceKeystore},
		{"私钥优先", map[string]string{KeyMnemonic: "abandon", KeyKeystore: "k.json", KeySecret: "0x01"}, WalletSourceSecret},
		{"空白视为未设置", map[string]string{KeySecret: "  ", KeyKeystore: "k.json"}, WalletSourceKeystore},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := FromMap(tt.values)
			assert.Equal(t, tt.want, env.WalletSource())
			if tt.want == WalletSourceNone {
				assert.Error(t, env.RequireWallet())
			} else {
				assert.NoError(t, env.RequireWallet())
			}
		})
	}
}

func TestSetOverrides(t *testing.T) {
	env := FromMap(map[string]string{KeyArtifactDir: "a"})
	env.Set(KeyArtifactDir, "b")
	assert.Equal(t, "b", env.Get(KeyArtifactDir))
	assert.Equal(t, "b", *env.GetAppConfig().Contract.ArtifactDir)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		values  map[string]string
		wantErr []string
	}{
		{"未设置", map[string]string{}, nil},
		{"全部有效", map[string]string{KeyRPCTimeout: "10s", KeyRPCRetryBackoff: "500ms", KeyRPCRetryAttempts: "0"}, nil},
		{"超时无效", map[string]string{KeyRPCTimeout: "ten"}, []string{"invalid RPC_TIMEOUT"}},
		{"间隔为负", map[string]string{KeyRPCRetryBackoff: "-1s"}, []string{"invalid RPC_RETRY_BACKOFF"}},
		{"次数非整数", map[string]string{KeyRPCRetryAttempts: "three"}, []string{"invalid RPC_RETRY_ATTEMPTS"}},
		{"多项无效", map[string]string{KeyRPCTimeout: "x", KeyRPCRetryAttempts: "-2"}, []string{"invalid RPC_TIMEOUT", "invalid RPC_RETRY_ATTEMPTS"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := FromMap(tt.values).Validate()
			if len(tt.wantErr) == 0 {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			for _, want := range tt.wantErr {
				assert.Contains(t, err.Error(), want)
			}
		})
	}
}

func TestGetAppConfigRetryAttempts(t *testing.T) {
	cfg := FromMap(map[string]string{KeyRPCRetryAttempts: "5"}).GetAppConfig()
	require.NotNil(t, cfg.RPC.RetryAttempts)
	assert.Equal(t, 5, *cfg.RPC.RetryAttempts)

	cfg = FromMap(map[string]string{KeyRPCRetryAttempts: "three"}).GetAppConfig()
	assert.Nil(t, cfg.RPC.RetryAttempts, "无效值不会变成 0 次重试")
}
