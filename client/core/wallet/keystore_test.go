package wallet

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeystoreRoundTrip(t *testing.T) {
	w, err := NewFromPrivateKey(testPrivateKey, nil)
	require.NoError(t, err)

	dir := t.TempDir()
	path, err := w.SaveKeystore(dir, "pa55word", KeystoreOptions{Light: true})
	require.NoError(t, err)

	assert.Equal(t, dir, filepath.Dir(path))
	assert.True(t, strings.HasPrefix(filepath.Base(path), "UTC--"))
	assert.True(t, strings.HasSuffix(filepath.Base(path), strings.ToLower(w.Address().Hex()[2:])))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	loaded, err := NewFromKeystore(path, "pa55word", nil)
	require.NoError(t, err)
	assert.Equal(t, w.Address(), loaded.Address())
	assert.Equal(t, SignerTypeKeystore, loaded.Type())

	_, err = NewFromKeystore(path, "wrong", nil)
	assert.Error(t, err)
}

func TestNewFromKeystoreMissing(t *testing.T) {
	_, err := NewFromKeystore(filepath.Join(t.TempDir(), "nope.json"), "", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
