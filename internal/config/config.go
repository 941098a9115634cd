// Package config reads process configuration from the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"synapse/internal/utils"
)

const (
	VaultSystem = "system"
	VaultFile   = "file"
)

// Config holds process-level options. User preferences live in
// settings.json, not here.
type Config struct {
	// ConfigDir overrides <platform-config-dir>/synapse when set.
	ConfigDir string

	VaultBackend      string
	VaultFileDir      string
	VaultFilePassword string

	LogLevel  string
	LogFormat string
}

// Load reads .env (if any) and then the SYNAPSE_* environment variables.
func Load() (Config, error) {
	if err := utils.LoadEnv(); err != nil {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from getenv and checks it.
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Config{
		ConfigDir:         strings.TrimSpace(getenv("SYNAPSE_CONFIG_DIR")),
		VaultBackend:      strings.ToLower(strings.TrimSpace(getenv("SYNAPSE_VAULT_BACKEND"))),
		VaultFileDir:      strings.TrimSpace(getenv("SYNAPSE_VAULT_FILE_DIR")),
		VaultFilePassword: getenv("SYNAPSE_VAULT_FILE_PASSWORD"),
		LogLevel:          strings.ToLower(strings.TrimSpace(getenv("SYNAPSE_LOG_LEVEL"))),
		LogFormat:         strings.ToLower(strings.TrimSpace(getenv("SYNAPSE_LOG_FORMAT"))),
	}
	if cfg.VaultBackend == "" {
		cfg.VaultBackend = VaultSystem
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	switch c.VaultBackend {
	case VaultSystem:
	case VaultFile:
		if c.VaultFilePassword == "" {
			return fmt.Errorf("SYNAPSE_VAULT_FILE_PASSWORD is required when SYNAPSE_VAULT_BACKEND=file")
		}
	default:
		return fmt.Errorf("SYNAPSE_VAULT_BACKEND must be 'system' or 'file', got %q", c.VaultBackend)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("SYNAPSE_LOG_LEVEL must be debug, info, warn or error, got %q", c.LogLevel)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("SYNAPSE_LOG_FORMAT must be 'text' or 'json', got %q", c.LogFormat)
	}
	return nil
}

// VaultDir returns where the file vault keeps its entries: the configured
// directory, or "vault" inside the app dir.
func (c Config) VaultDir(appDir string) string {
	if c.VaultFileDir != "" {
		return c.VaultFileDir
	}
	return filepath.Join(appDir, "vault")
}
