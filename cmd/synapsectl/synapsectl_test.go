package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"synapse/internal/config"
	"synapse/internal/models"
	"synapse/internal/repositories"
	"synapse/internal/services"
)

func testOpen(dir string) openFunc {
	cfg := config.Config{
		ConfigDir:         dir,
		VaultBackend:      config.VaultFile,
		VaultFilePassword: "test",
		LogLevel:          "debug",
		LogFormat:         "text",
	}
	return func(ctx context.Context, logOut io.Writer) (*services.Services, error) {
		return openWithConfig(ctx, logOut, cfg)
	}
}

func run(t *testing.T, dir, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd(testOpen(dir))
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestSettingsShow_PrintsDefaults(t *testing.T) {
	out, err := run(t, t.TempDir(), "", "settings", "show")
	require.NoError(t, err)

	got, err := repositories.ParseSettings([]byte(out))
	require.NoError(t, err)
	assert.Equal(t, models.DefaultSettings(), got)
}

func TestSettingsApply_ThenShow(t *testing.T) {
	dir := t.TempDir()
	want := models.DefaultSettings()
	want.Preferences.Theme = models.ThemeDark
	data, err := repositories.EncodeSettings(want)
	require.NoError(t, err)
	doc := filepath.Join(t.TempDir(), "new.json")
	require.NoError(t, os.WriteFile(doc, data, 0600))

	_, err = run(t, dir, "", "settings", "apply", doc)
	require.NoError(t, err)

	out, err := run(t, dir, "", "settings", "show")
	require.NoError(t, err)
	assert.Contains(t, out, `"theme": "dark"`)
}

func TestSettingsApply_RejectsInvalid(t *testing.T) {
	dir := t.TempDir()
	bad := models.DefaultSettings()
	bad.Preferences.WindowWidth = 399
	data, err := repositories.EncodeSettings(bad)
	require.NoError(t, err)
	doc := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(doc, data, 0600))

	_, err = run(t, dir, "", "settings", "apply", doc)
	require.Error(t, err)
	assert.Equal(t, 2, exitCode(err))

	_, statErr := os.Stat(filepath.Join(dir, "settings.json"))
	assert.True(t, os.IsNotExist(statErr))

	_, err = run(t, dir, "", "settings", "validate", doc)
	assert.ErrorContains(t, err, "window_width")
}

func TestSettingsPath(t *testing.T) {
	dir := t.TempDir()
	out, err := run(t, dir, "", "settings", "path")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "settings.json"), strings.TrimSpace(out))
}

func TestCredential_Lifecycle(t *testing.T) {
	dir := t.TempDir()

	_, err := run(t, dir, "sk-abcdefghijklmnop\n", "credential", "set", "openai")
	require.NoError(t, err)

	out, err := run(t, dir, "", "credential", "get", "openai")
	require.NoError(t, err)
	assert.Equal(t, "sk-************mnop", strings.TrimSpace(out))

	out, err = run(t, dir, "", "credential", "get", "openai", "--reveal")
	require.NoError(t, err)
	assert.Equal(t, "sk-abcdefghijklmnop", strings.TrimSpace(out))

	out, err = run(t, dir, "", "credential", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "openai     set")
	assert.Contains(t, out, "anthropic  not set")

	_, err = run(t, dir, "", "credential", "delete", "openai")
	require.NoError(t, err)

	_, err = run(t, dir, "", "credential", "get", "openai")
	var cerr *services.CommandError
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, services.CommandNotFound, cerr.Kind)
	assert.Equal(t, 3, exitCode(err))
}

func TestCredentialSet_UnknownProvider(t *testing.T) {
	_, err := run(t, t.TempDir(), "x\n", "credential", "set", "unknown-provider")
	require.Error(t, err)
	assert.Equal(t, 2, exitCode(err))
}

func TestMask(t *testing.T) {
	assert.Equal(t, "****", mask("abcd"))
	assert.Equal(t, "sk-**cdef", mask("sk-xxcdef"))
}
