package services

import (
	"context"
	"log/slog"
	"sync"

	"synapse/internal/models"
	"synapse/internal/repositories"
)

// SettingsStore owns the in-memory settings and their file.
//
// Readers share mu; Update holds it exclusively across the replacement and
// the write, so persists never interleave. If the write fails the new value
// stays in memory and the error is returned; Save retries the write.
type SettingsStore struct {
	mu       sync.RWMutex
	settings models.Settings
	repo     repositories.AppSettingsRepository
	logger   *slog.Logger
}

// NewSettingsStore loads settings from repo, falling back to defaults when no
// file exists. Defaults are not written until the first update.
func NewSettingsStore(ctx context.Context, log *slog.Logger, repo repositories.AppSettingsRepository) (*SettingsStore, error) {
	if log == nil {
		log = slog.Default()
	}
	log = log.With(slog.String("service", "settings_store"))

	settings, found, err := repo.Load(ctx)
	if err != nil {
		log.Error("load settings failed", slog.String("path", repo.Path()), slog.Any("error", err))
		return nil, err
	}
	if !found {
		log.Info("no settings file, using defaults", slog.String("path", repo.Path()))
		settings = models.DefaultSettings()
	} else {
		log.Info("settings loaded", slog.String("path", repo.Path()))
	}

	return &SettingsStore{settings: settings.Clone(), repo: repo, logger: log}, nil
}

// Get returns a deep copy of the current settings without touching disk.
func (s *SettingsStore) Get() models.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings.Clone()
}

// Update replaces the settings wholesale and persists them before returning.
// The caller is expected to have validated next. The returned copy is the
// value this call committed, even when the write fails.
func (s *SettingsStore) Update(ctx context.Context, next models.Settings) (models.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.settings = next.Clone()
	return s.settings.Clone(), s.saveLocked(ctx)
}

// Save writes the current in-memory settings to disk.
func (s *SettingsStore) Save(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked(ctx)
}

func (s *SettingsStore) saveLocked(ctx context.Context) error {
	if err := s.repo.Save(ctx, s.settings); err != nil {
		s.logger.Error("persist settings failed", slog.String("path", s.repo.Path()), slog.Any("error", err))
		return err
	}
	s.logger.Debug("settings persisted", slog.String("path", s.repo.Path()))
	return nil
}

func (s *SettingsStore) Path() string {
	return s.repo.Path()
}
