package events

import (
	"time"

	"synapse/internal/models"
)

// SettingsChanged fires after the in-memory settings are replaced, so the
// main and settings windows can re-render. Persisted is false when the
// write failed and the value exists only in memory.
const SettingsChanged = "settings:changed"

type SettingsEvent struct {
	Settings  models.Settings `json:"settings"`
	Persisted bool            `json:"persisted"`
	Timestamp time.Time       `json:"timestamp"`
}

func NewSettingsEvent(settings models.Settings, persisted bool) SettingsEvent {
	return SettingsEvent{
		Settings:  settings.Clone(),
		Persisted: persisted,
		Timestamp: time.Now(),
	}
}
