package vault

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"
)

func exerciseBackend(t *testing.T, b Backend) {
	t.Helper()

	_, err := b.Get("synapse", "openai")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, b.Delete("synapse", "openai"), ErrNotFound)

	require.NoError(t, b.Set("synapse", "openai", "sk-first"))
	require.NoError(t, b.Set("synapse", "openai", "sk-second"))

	got, err := b.Get("synapse", "openai")
	require.NoError(t, err)
	assert.Equal(t, "sk-second", got)

	_, err = b.Get("synapse", "anthropic")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, b.Delete("synapse", "openai"))
	_, err = b.Get("synapse", "openai")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSystem_WithMockProvider(t *testing.T) {
	keyring.MockInit()
	exerciseBackend(t, NewSystem())
}

func TestSystem_PassesThroughStoreFailures(t *testing.T) {
	unavailable := errors.New("secret service unavailable")
	keyring.MockInitWithError(unavailable)
	t.Cleanup(keyring.MockInit)

	err := NewSystem().Set("synapse", "openai", "sk")
	assert.ErrorIs(t, err, unavailable)
	_, err = NewSystem().Get("synapse", "openai")
	assert.ErrorIs(t, err, unavailable)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestFile_Backend(t *testing.T) {
	f, err := NewFile(t.TempDir(), "correct horse battery staple")
	require.NoError(t, err)
	exerciseBackend(t, f)
}

func TestFile_SecretsAreNotStoredInPlaintext(t *testing.T) {
	dir := t.TempDir()
	f, err := NewFile(dir, "pw")
	require.NoError(t, err)
	require.NoError(t, f.Set("synapse", "openai", "sk-plaintext-marker"))

	err = filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, readErr := os.ReadFile(path)
		require.NoError(t, readErr)
		assert.False(t, strings.Contains(string(data), "sk-plaintext-marker"), path)
		return nil
	})
	require.NoError(t, err)
}

func TestNewFile_RequiresDirAndPassword(t *testing.T) {
	_, err := NewFile("", "pw")
	assert.Error(t, err)
	_, err = NewFile(t.TempDir(), "")
	assert.Error(t, err)
}
