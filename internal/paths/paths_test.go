package paths

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"synapse/internal/apperrors"
)

func TestAppDir_Override(t *testing.T) {
	dir, err := AppDir("/tmp/custom")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/custom", dir)
}

func TestAppDir_UsesPlatformDir(t *testing.T) {
	base := t.TempDir()
	orig := UserConfigDir
	UserConfigDir = func() (string, error) { return base, nil }
	t.Cleanup(func() { UserConfigDir = orig })

	dir, err := AppDir("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, AppDirName()), dir)
}

func TestAppDir_ConfigDirNotFound(t *testing.T) {
	orig := UserConfigDir
	UserConfigDir = func() (string, error) { return "", errors.New("$HOME is not defined") }
	t.Cleanup(func() { UserConfigDir = orig })

	_, err := AppDir("")
	assert.True(t, errors.Is(err, apperrors.ErrConfigDirNotFound))
}

func TestEnsureAppDir_CreatesMissingDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "synapse")

	got, err := EnsureAppDir(dir)
	require.NoError(t, err)

	info, err := os.Stat(got)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.Equal(t, filepath.Join(dir, "settings.json"), SettingsFile(got))
}
