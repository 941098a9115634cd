package models

import (
	"encoding/json"
	"fmt"
)

// Settings is the root aggregate persisted to settings.json.
type Settings struct {
	Preferences AppPreferences     `json:"preferences"`
	AIProviders AIProviderSettings `json:"ai_providers"`
}

type AppPreferences struct {
	WindowWidth       uint32            `json:"window_width"`
	WindowHeight      uint32            `json:"window_height"`
	Theme             Theme             `json:"theme"`
	StartupBehavior   StartupBehavior   `json:"startup_behavior"`
	KeyboardShortcuts KeyboardShortcuts `json:"keyboard_shortcuts"`
}

// AIProviderSettings holds optional per-provider configuration. A nil entry
// means "not configured" and is written as an explicit null.
type AIProviderSettings struct {
	OpenAI    *ProviderConfig `json:"openai"`
	Anthropic *ProviderConfig `json:"anthropic"`
}

type ProviderConfig struct {
	Model       string  `json:"model"`
	Temperature float64 `json:"temperature"`
	MaxTokens   uint32  `json:"max_tokens"`
}

// KeyboardShortcuts maps the fixed actions and any user-defined actions to
// accelerator strings such as "CommandOrControl+Shift+Space".
type KeyboardShortcuts struct {
	ToggleWindow      string            `json:"toggle_window"`
	ClearConversation string            `json:"clear_conversation"`
	NewConversation   string            `json:"new_conversation"`
	CustomShortcuts   map[string]string `json:"custom_shortcuts"`
}

type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

func (t Theme) Valid() bool {
	switch t {
	case ThemeLight, ThemeDark, ThemeSystem:
		return true
	}
	return false
}

func (t *Theme) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("theme: %w", err)
	}
	if !Theme(s).Valid() {
		return fmt.Errorf("theme: unknown value %q", s)
	}
	*t = Theme(s)
	return nil
}

type StartupBehavior string

const (
	StartupNormal    StartupBehavior = "normal"
	StartupMinimized StartupBehavior = "minimized"
	StartupHidden    StartupBehavior = "hidden"
)

func (b StartupBehavior) Valid() bool {
	switch b {
	case StartupNormal, StartupMinimized, StartupHidden:
		return true
	}
	return false
}

func (b *StartupBehavior) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("startup_behavior: %w", err)
	}
	if !StartupBehavior(s).Valid() {
		return fmt.Errorf("startup_behavior: unknown value %q", s)
	}
	*b = StartupBehavior(s)
	return nil
}

// DefaultSettings returns the settings used when no file exists yet.
func DefaultSettings() Settings {
	return Settings{
		Preferences: AppPreferences{
			WindowWidth:     800,
			WindowHeight:    600,
			Theme:           ThemeSystem,
			StartupBehavior: StartupNormal,
			KeyboardShortcuts: KeyboardShortcuts{
				ToggleWindow:      "CommandOrControl+Shift+Space",
				ClearConversation: "CommandOrControl+L",
				NewConversation:   "CommandOrControl+N",
				CustomShortcuts: map[string]string{
					"settings": "CommandOrControl+,",
				},
			},
		},
	}
}

// Clone returns a deep copy that shares no maps or pointers with s.
func (s Settings) Clone() Settings {
	out := s

	custom := make(map[string]string, len(s.Preferences.KeyboardShortcuts.CustomShortcuts))
	for action, shortcut := range s.Preferences.KeyboardShortcuts.CustomShortcuts {
		custom[action] = shortcut
	}
	out.Preferences.KeyboardShortcuts.CustomShortcuts = custom

	if s.AIProviders.OpenAI != nil {
		cfg := *s.AIProviders.OpenAI
		out.AIProviders.OpenAI = &cfg
	}
	if s.AIProviders.Anthropic != nil {
		cfg := *s.AIProviders.Anthropic
		out.AIProviders.Anthropic = &cfg
	}
	return out
}
