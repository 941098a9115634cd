package services

import (
	"errors"
	"log/slog"

	"synapse/internal/apperrors"
	"synapse/internal/vault"
)

const serviceName = "synapse"

// Providers is the allow-list of credential accounts, in display order.
var Providers = []string{"openai", "anthropic"}

func IsKnownProvider(provider string) bool {
	for _, p := range Providers {
		if p == provider {
			return true
		}
	}
	return false
}

// ProviderKeyStatus reports whether a credential exists. It never carries the
// secret itself.
type ProviderKeyStatus struct {
	Provider    string `json:"provider"`
	Label       string `json:"label"`
	Description string `json:"description"`
	Configured  bool   `json:"configured"`
}

// KeyringService keeps one API key per provider in the secret store. Secrets
// are passed straight through; nothing is cached or logged.
type KeyringService struct {
	backend vault.Backend
	logger  *slog.Logger
}

func NewKeyringService(log *slog.Logger, backend vault.Backend) *KeyringService {
	if log == nil {
		log = slog.Default()
	}
	return &KeyringService{
		backend: backend,
		logger:  log.With(slog.String("service", "keyring")),
	}
}

func checkProvider(op, provider string) error {
	if !IsKnownProvider(provider) {
		return apperrors.InvalidInput(op, "invalid provider: %s", provider)
	}
	return nil
}

func (s *KeyringService) StoreApiKey(provider, apiKey string) error {
	const op = "store api key"
	if err := checkProvider(op, provider); err != nil {
		return err
	}
	if apiKey == "" {
		return apperrors.InvalidInput(op, "API key is empty")
	}

	if err := s.backend.Set(serviceName, provider, apiKey); err != nil {
		s.logger.Warn("store api key failed", slog.String("provider", provider), slog.Any("error", err))
		return apperrors.Vault(op, err)
	}
	s.logger.Info("api key stored", slog.String("provider", provider))
	return nil
}

func (s *KeyringService) GetApiKey(provider string) (string, error) {
	const op = "get api key"
	if err := checkProvider(op, provider); err != nil {
		return "", err
	}

	secret, err := s.backend.Get(serviceName, provider)
	if errors.Is(err, vault.ErrNotFound) {
		return "", apperrors.NotFound(op, err)
	}
	if err != nil {
		s.logger.Warn("get api key failed", slog.String("provider", provider), slog.Any("error", err))
		return "", apperrors.Vault(op, err)
	}
	return secret, nil
}

func (s *KeyringService) DeleteApiKey(provider string) error {
	const op = "delete api key"
	if err := checkProvider(op, provider); err != nil {
		return err
	}

	err := s.backend.Delete(serviceName, provider)
	if errors.Is(err, vault.ErrNotFound) {
		return apperrors.NotFound(op, err)
	}
	if err != nil {
		s.logger.Warn("delete api key failed", slog.String("provider", provider), slog.Any("error", err))
		return apperrors.Vault(op, err)
	}
	s.logger.Info("api key deleted", slog.String("provider", provider))
	return nil
}

// ListApiKeys probes the store for every allow-listed provider. A store
// failure for one provider aborts the listing.
func (s *KeyringService) ListApiKeys() ([]ProviderKeyStatus, error) {
	results := make([]ProviderKeyStatus, 0, len(Providers))
	for _, provider := range Providers {
		_, err := s.backend.Get(serviceName, provider)
		configured := err == nil
		if err != nil && !errors.Is(err, vault.ErrNotFound) {
			return nil, apperrors.Vault("list api keys", err)
		}
		results = append(results, ProviderKeyStatus{
			Provider:    provider,
			Label:       provider + " API key",
			Description: "API key for " + provider + " used by Synapse",
			Configured:  configured,
		})
	}
	return results, nil
}
