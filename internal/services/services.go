package services

import (
	"context"
	"fmt"
	"log/slog"

	"synapse/internal/config"
	"synapse/internal/paths"
	"synapse/internal/repositories"
	"synapse/internal/vault"
)

// Services aggregates the settings store, the keyring, and the command
// surface built on them.
type Services struct {
	AppDir   string
	Store    *SettingsStore
	Keyring  *KeyringService
	Settings *SettingsService
}

// NewServices resolves the app directory, loads settings, and opens the
// configured secret store. Any error here should abort startup.
func NewServices(ctx context.Context, log *slog.Logger, cfg config.Config) (*Services, error) {
	appDir, err := paths.EnsureAppDir(cfg.ConfigDir)
	if err != nil {
		return nil, err
	}

	repo, err := repositories.NewAppSettingsRepository(appDir)
	if err != nil {
		return nil, err
	}
	store, err := NewSettingsStore(ctx, log, repo)
	if err != nil {
		return nil, err
	}

	backend, err := NewVaultBackend(cfg, appDir)
	if err != nil {
		return nil, err
	}
	keyring := NewKeyringService(log, backend)

	return &Services{
		AppDir:   appDir,
		Store:    store,
		Keyring:  keyring,
		Settings: NewSettingsService(log, store, keyring),
	}, nil
}

func NewVaultBackend(cfg config.Config, appDir string) (vault.Backend, error) {
	switch cfg.VaultBackend {
	case config.VaultFile:
		return vault.NewFile(cfg.VaultDir(appDir), cfg.VaultFilePassword)
	case config.VaultSystem, "":
		return vault.NewSystem(), nil
	}
	return nil, fmt.Errorf("unknown vault backend %q", cfg.VaultBackend)
}
