// Package paths resolves where Synapse keeps its files on disk.
package paths

import (
	"os"
	"path/filepath"

	"synapse/internal/apperrors"
)

const SettingsFileName = "settings.json"

// UserConfigDir is swapped in tests to simulate platforms without a config dir.
var UserConfigDir = os.UserConfigDir

// AppDir returns <platform-config-dir>/<app>, or override when it is set.
func AppDir(override string) (string, error) {
	if override != "" {
		return override, nil
	}
	configDir, err := UserConfigDir()
	if err != nil || configDir == "" {
		return "", apperrors.New(apperrors.KindConfigDirNotFound, "resolve config dir", err)
	}
	return filepath.Join(configDir, AppDirName()), nil
}

// EnsureAppDir resolves the app dir and creates it if it is missing.
func EnsureAppDir(override string) (string, error) {
	dir, err := AppDir(override)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", apperrors.IO("create config dir", err)
	}
	return dir, nil
}

// SettingsFile returns the settings document path inside dir.
func SettingsFile(dir string) string {
	return filepath.Join(dir, SettingsFileName)
}
