package services

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"synapse/internal/events"
	"synapse/internal/models"
)

type SettingsStorer interface {
	Get() models.Settings
	Update(ctx context.Context, next models.Settings) (models.Settings, error)
	Save(ctx context.Context) error
	Path() string
}

type CredentialVault interface {
	StoreApiKey(provider, apiKey string) error
	GetApiKey(provider string) (string, error)
	DeleteApiKey(provider string) error
	ListApiKeys() ([]ProviderKeyStatus, error)
}

// SettingsService is the command surface bound to the UI and used by the
// CLI. Settings and credentials are independent: one can succeed while the
// other fails, and no call spans both.
type SettingsService struct {
	context context.Context
	store   SettingsStorer
	vault   CredentialVault
	logger  *slog.Logger
}

func NewSettingsService(log *slog.Logger, store SettingsStorer, vault CredentialVault) *SettingsService {
	if log == nil {
		log = slog.Default()
	}
	return &SettingsService{
		context: context.Background(),
		store:   store,
		vault:   vault,
		logger:  log.With(slog.String("service", "settings")),
	}
}

func (s *SettingsService) Startup(ctx context.Context) {
	s.context = ctx
}

func (s *SettingsService) opLogger(op string) *slog.Logger {
	return s.logger.With(slog.String("op", op), slog.String("op_id", uuid.NewString()))
}

func (s *SettingsService) GetSettings() (models.Settings, error) {
	return s.store.Get(), nil
}

// UpdateSettings validates settings and, if they pass, replaces and persists
// them. A rejected value leaves memory and disk untouched. When only the
// write fails, the new value is kept in memory and SaveSettings can retry.
func (s *SettingsService) UpdateSettings(settings models.Settings) error {
	log := s.opLogger("update_settings")

	if err := settings.Validate(); err != nil {
		log.Info("settings rejected", slog.Any("error", err))
		return toCommandError(err)
	}
	committed, err := s.store.Update(s.context, settings)
	events.Emit(s.context, events.SettingsChanged, events.NewSettingsEvent(committed, err == nil))
	if err != nil {
		log.Error("settings not persisted", slog.Any("error", err))
		return toCommandError(err)
	}
	log.Info("settings updated")
	return nil
}

// SaveSettings re-persists the current in-memory settings.
func (s *SettingsService) SaveSettings() error {
	log := s.opLogger("save_settings")
	if err := s.store.Save(s.context); err != nil {
		log.Error("settings not persisted", slog.Any("error", err))
		return toCommandError(err)
	}
	return nil
}

func (s *SettingsService) SettingsPath() string {
	return s.store.Path()
}

func (s *SettingsService) StoreApiKey(provider, apiKey string) error {
	s.opLogger("store_api_key").Debug("storing api key", slog.String("provider", provider))
	return toCommandError(s.vault.StoreApiKey(provider, apiKey))
}

func (s *SettingsService) GetApiKey(provider string) (string, error) {
	s.opLogger("get_api_key").Debug("reading api key", slog.String("provider", provider))
	secret, err := s.vault.GetApiKey(provider)
	if err != nil {
		return "", toCommandError(err)
	}
	return secret, nil
}

func (s *SettingsService) DeleteApiKey(provider string) error {
	s.opLogger("delete_api_key").Debug("deleting api key", slog.String("provider", provider))
	return toCommandError(s.vault.DeleteApiKey(provider))
}

func (s *SettingsService) ListApiKeys() ([]ProviderKeyStatus, error) {
	statuses, err := s.vault.ListApiKeys()
	if err != nil {
		return nil, toCommandError(err)
	}
	return statuses, nil
}
