package events

import (
	"context"

	"github.com/wailsapp/wails/v2/pkg/runtime"
)

// Emit delivers an event to the frontend. It is a no-op until a window
// runtime is available, so the CLI and tests never reach Wails.
var Emit = func(ctx context.Context, name string, payload any) {}

// EnableRuntimeEmitter routes events to every open window through Wails.
// ctx must be the context passed to OnStartup.
func EnableRuntimeEmitter() {
	Emit = func(ctx context.Context, name string, payload any) {
		runtime.EventsEmit(ctx, name, payload)
	}
}

func SetCustomEmitter(f func(ctx context.Context, name string, payload any)) {
	if f == nil {
		Emit = func(context.Context, string, any) {}
		return
	}
	Emit = f
}
