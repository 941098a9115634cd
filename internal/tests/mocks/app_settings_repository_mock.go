package mocks

import (
	"context"
	"sync"

	"synapse/internal/models"
)

// AppSettingsRepositoryMock keeps the last saved settings in memory and lets
// tests override Load and Save.
type AppSettingsRepositoryMock struct {
	LoadFunc func(ctx context.Context) (models.Settings, bool, error)
	SaveFunc func(ctx context.Context, settings models.Settings) error
	PathFunc func() string

	mu    sync.Mutex
	saved []models.Settings
}

func (m *AppSettingsRepositoryMock) Load(ctx context.Context) (models.Settings, bool, error) {
	if m.LoadFunc != nil {
		return m.LoadFunc(ctx)
	}
	return models.Settings{}, false, nil
}

func (m *AppSettingsRepositoryMock) Save(ctx context.Context, settings models.Settings) error {
	if m.SaveFunc != nil {
		if err := m.SaveFunc(ctx, settings); err != nil {
			return err
		}
	}
	m.mu.Lock()
	m.saved = append(m.saved, settings.Clone())
	m.mu.Unlock()
	return nil
}

func (m *AppSettingsRepositoryMock) Path() string {
	if m.PathFunc != nil {
		return m.PathFunc()
	}
	return "settings.json"
}

// Saved returns every successfully saved value in order.
func (m *AppSettingsRepositoryMock) Saved() []models.Settings {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.Settings(nil), m.saved...)
}
