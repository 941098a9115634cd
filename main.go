package main

import (
	"context"
	"embed"
	"fmt"
	"log/slog"
	"os"

	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	"github.com/wailsapp/wails/v2/pkg/options/linux"
	"github.com/wailsapp/wails/v2/pkg/options/windows"

	"synapse/internal/config"
	"synapse/internal/events"
	"synapse/internal/logger"
	"synapse/internal/models"
	"synapse/internal/services"
)

//go:embed all:frontend/dist
var assets embed.FS

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error loading configuration:", err)
		os.Exit(1)
	}
	log := logger.Init(os.Stdout, cfg.LogLevel, cfg.LogFormat)

	// Without a settings store the app cannot run safely.
	svc, err := services.NewServices(context.Background(), log, cfg)
	if err != nil {
		log.Error("failed to initialize settings", slog.Any("error", err))
		os.Exit(1)
	}

	app := NewApp(log, svc.Settings)
	prefs := svc.Store.Get().Preferences

	err = wails.Run(&options.App{
		Title:            "Synapse",
		Width:            int(prefs.WindowWidth),
		Height:           int(prefs.WindowHeight),
		MinWidth:         models.MinWindowWidth,
		MinHeight:        models.MinWindowHeight,
		StartHidden:      prefs.StartupBehavior == models.StartupHidden,
		WindowStartState: windowStartState(prefs.StartupBehavior),
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		Windows: &windows.Options{
			Theme: windowsTheme(prefs.Theme),
		},
		Linux: &linux.Options{
			WindowIsTranslucent: false,
			WebviewGpuPolicy:    linux.WebviewGpuPolicyAlways,
			ProgramName:         "Synapse",
		},
		BackgroundColour: &options.RGBA{R: 27, G: 38, B: 54, A: 1},
		Logger:           logger.NewWailsLogger(log),
		LogLevel:         logger.WailsLevel(cfg.LogLevel),
		OnStartup: func(ctx context.Context) {
			events.EnableRuntimeEmitter()
			app.startup(ctx)
			svc.Settings.Startup(ctx)
		},
		OnShutdown: app.shutdown,
		Bind: []interface{}{
			app,
			svc.Settings,
		},
	})

	if err != nil {
		log.Error("wails exited with error", slog.Any("error", err))
		os.Exit(1)
	}
}

func windowStartState(b models.StartupBehavior) options.WindowStartState {
	if b == models.StartupMinimized {
		return options.Minimised
	}
	return options.Normal
}

func windowsTheme(t models.Theme) windows.Theme {
	switch t {
	case models.ThemeDark:
		return windows.Dark
	case models.ThemeLight:
		return windows.Light
	default:
		return windows.SystemDefault
	}
}
