package main

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"synapse/internal/models"
	"synapse/internal/services"
	"synapse/internal/tests/mocks"
)

func newTestApp(t *testing.T, behavior models.StartupBehavior) *App {
	t.Helper()
	stored := models.DefaultSettings()
	stored.Preferences.StartupBehavior = behavior
	repo := &mocks.AppSettingsRepositoryMock{
		LoadFunc: func(ctx context.Context) (models.Settings, bool, error) {
			return stored, true, nil
		},
	}
	store, err := services.NewSettingsStore(context.Background(), nil, repo)
	require.NoError(t, err)
	svc := services.NewSettingsService(nil, store, services.NewKeyringService(nil, mocks.NewVaultBackendMock()))
	return NewApp(slog.Default(), svc)
}

func TestApp_StartupVisibilityFollowsSettings(t *testing.T) {
	cases := map[models.StartupBehavior]bool{
		models.StartupNormal:    true,
		models.StartupMinimized: false,
		models.StartupHidden:    false,
	}
	for behavior, visible := range cases {
		t.Run(string(behavior), func(t *testing.T) {
			app := newTestApp(t, behavior)
			app.startup(context.Background())
			assert.Equal(t, visible, app.visible)
		})
	}
}
