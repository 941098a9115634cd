package main

import (
	"context"
	"log/slog"
	"sync"

	"github.com/wailsapp/wails/v2/pkg/runtime"

	"synapse/internal/models"
	"synapse/internal/services"
)

// App holds the window-level commands bound to the frontend.
type App struct {
	ctx      context.Context
	logger   *slog.Logger
	settings *services.SettingsService

	mu      sync.Mutex
	visible bool
}

// NewApp creates a new App application struct
func NewApp(log *slog.Logger, settings *services.SettingsService) *App {
	return &App{
		logger:   log.With(slog.String("service", "app")),
		settings: settings,
	}
}

// startup is called when the app starts. The context is saved
// so we can call the runtime methods
func (a *App) startup(ctx context.Context) {
	a.ctx = ctx

	s, err := a.settings.GetSettings()
	if err != nil {
		a.logger.Error("read settings failed", slog.Any("error", err))
		s = models.DefaultSettings()
	}
	a.mu.Lock()
	a.visible = s.Preferences.StartupBehavior == models.StartupNormal
	a.mu.Unlock()

	a.logger.Info("started",
		slog.String("settings", a.settings.SettingsPath()),
		slog.String("startup_behavior", string(s.Preferences.StartupBehavior)))
}

// shutdown is called when the app is closing.
func (a *App) shutdown(ctx context.Context) {
	a.logger.Info("shutting down")
}

// ApplyWindowPreferences resizes the main window and applies the theme from
// the current settings. The frontend calls it after UpdateSettings succeeds.
func (a *App) ApplyWindowPreferences() {
	s, err := a.settings.GetSettings()
	if err != nil {
		a.logger.Error("apply window preferences failed", slog.Any("error", err))
		return
	}
	prefs := s.Preferences

	runtime.WindowSetSize(a.ctx, int(prefs.WindowWidth), int(prefs.WindowHeight))
	switch prefs.Theme {
	case models.ThemeDark:
		runtime.WindowSetDarkTheme(a.ctx)
	case models.ThemeLight:
		runtime.WindowSetLightTheme(a.ctx)
	default:
		runtime.WindowSetSystemDefaultTheme(a.ctx)
	}
}

type WindowPosition struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// GetWindowPosition returns the main window's position in screen pixels.
func (a *App) GetWindowPosition() WindowPosition {
	x, y := runtime.WindowGetPosition(a.ctx)
	return WindowPosition{X: x, Y: y}
}

func (a *App) SetWindowPosition(x, y int) {
	runtime.WindowSetPosition(a.ctx, x, y)
}

// ToggleWindow shows a hidden window centered on screen, or hides a
// visible one. It backs the toggle_window shortcut.
func (a *App) ToggleWindow() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.visible {
		runtime.WindowHide(a.ctx)
		a.visible = false
		return
	}
	runtime.WindowCenter(a.ctx)
	runtime.WindowShow(a.ctx)
	runtime.WindowUnminimise(a.ctx)
	a.visible = true
}
