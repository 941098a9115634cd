package models

import (
	"fmt"
	"sort"
	"strings"
)

const (
	MinWindowWidth  = 400
	MinWindowHeight = 300
	MinTemperature  = 0.0
	MaxTemperature  = 1.0
)

// ShortcutModifiers lists the accelerator tokens accepted as modifiers.
// Matching is case-insensitive on whole "+"-separated parts.
var ShortcutModifiers = []string{
	"CommandOrControl", "CmdOrCtrl", "Command", "Cmd", "Control", "Ctrl",
	"Alt", "AltGr", "Option", "Shift", "Super", "Meta",
}

// ValidationError names the field and the rule it broke.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks s and returns the first rule violation, or nil.
func (s Settings) Validate() error {
	if err := s.Preferences.Validate(); err != nil {
		return err
	}
	return s.AIProviders.Validate()
}

func (p AppPreferences) Validate() error {
	if p.WindowWidth < MinWindowWidth {
		return &ValidationError{
			Field:   "preferences.window_width",
			Message: fmt.Sprintf("window width must be at least %d pixels, got %d", MinWindowWidth, p.WindowWidth),
		}
	}
	if p.WindowHeight < MinWindowHeight {
		return &ValidationError{
			Field:   "preferences.window_height",
			Message: fmt.Sprintf("window height must be at least %d pixels, got %d", MinWindowHeight, p.WindowHeight),
		}
	}
	if !p.Theme.Valid() {
		return &ValidationError{
			Field:   "preferences.theme",
			Message: fmt.Sprintf("theme must be 'light', 'dark', or 'system', got %q", p.Theme),
		}
	}
	if !p.StartupBehavior.Valid() {
		return &ValidationError{
			Field:   "preferences.startup_behavior",
			Message: fmt.Sprintf("startup behavior must be 'normal', 'minimized', or 'hidden', got %q", p.StartupBehavior),
		}
	}
	return p.KeyboardShortcuts.Validate()
}

func (p AIProviderSettings) Validate() error {
	if err := validateProvider("openai", "OpenAI", p.OpenAI); err != nil {
		return err
	}
	return validateProvider("anthropic", "Anthropic", p.Anthropic)
}

func validateProvider(key, name string, cfg *ProviderConfig) error {
	if cfg == nil {
		return nil
	}
	if !(cfg.Temperature >= MinTemperature && cfg.Temperature <= MaxTemperature) {
		return &ValidationError{
			Field:   "ai_providers." + key + ".temperature",
			Message: fmt.Sprintf("%s temperature must be between 0 and 1, got %g", name, cfg.Temperature),
		}
	}
	return nil
}

func (k KeyboardShortcuts) Validate() error {
	fixed := []struct {
		field    string
		shortcut string
	}{
		{"toggle_window", k.ToggleWindow},
		{"clear_conversation", k.ClearConversation},
		{"new_conversation", k.NewConversation},
	}
	for _, f := range fixed {
		if !HasModifier(f.shortcut) {
			return invalidShortcut("preferences.keyboard_shortcuts."+f.field, f.shortcut)
		}
	}

	// sorted so the reported violation is stable
	actions := make([]string, 0, len(k.CustomShortcuts))
	for action := range k.CustomShortcuts {
		actions = append(actions, action)
	}
	sort.Strings(actions)
	for _, action := range actions {
		if shortcut := k.CustomShortcuts[action]; !HasModifier(shortcut) {
			return invalidShortcut("preferences.keyboard_shortcuts.custom_shortcuts."+action, shortcut)
		}
	}
	return nil
}

func invalidShortcut(field, shortcut string) error {
	return &ValidationError{
		Field:   field,
		Message: fmt.Sprintf("invalid shortcut format %q: must include a modifier key", shortcut),
	}
}

// HasModifier reports whether shortcut contains at least one recognized
// modifier token.
func HasModifier(shortcut string) bool {
	for _, part := range strings.Split(shortcut, "+") {
		part = strings.TrimSpace(part)
		for _, m := range ShortcutModifiers {
			if strings.EqualFold(part, m) {
				return true
			}
		}
	}
	return false
}
