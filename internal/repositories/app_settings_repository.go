package repositories

import (
	"context"
	"encoding/json"
	"os"

	"github.com/google/jsonschema-go/jsonschema"

	"synapse/internal/apperrors"
	"synapse/internal/models"
	"synapse/internal/paths"
	"synapse/internal/utils"
)

const settingsFileMode = 0600

type AppSettingsRepository interface {
	// Load returns the stored settings. found is false when no file exists.
	Load(ctx context.Context) (settings models.Settings, found bool, err error)
	// Save atomically replaces the stored settings.
	Save(ctx context.Context, settings models.Settings) error
	Path() string
}

type appSettingsRepository struct {
	path   string
	schema *jsonschema.Resolved
}

// NewAppSettingsRepository stores settings.json inside dir, which must exist.
func NewAppSettingsRepository(dir string) (AppSettingsRepository, error) {
	schema, err := settingsSchema()
	if err != nil {
		return nil, err
	}
	return &appSettingsRepository{path: paths.SettingsFile(dir), schema: schema}, nil
}

// settingsSchema derives the document schema from models.Settings: every
// field is required, providers may be null.
func settingsSchema() (*jsonschema.Resolved, error) {
	s, err := jsonschema.For[models.Settings](nil)
	if err != nil {
		return nil, apperrors.Serialization("infer settings schema", err)
	}
	resolved, err := s.Resolve(nil)
	if err != nil {
		return nil, apperrors.Serialization("resolve settings schema", err)
	}
	return resolved, nil
}

func (r *appSettingsRepository) Path() string {
	return r.path
}

func (r *appSettingsRepository) Load(ctx context.Context) (models.Settings, bool, error) {
	exists, err := utils.FileExists(r.path)
	if err != nil {
		return models.Settings{}, false, apperrors.IO("stat settings", err)
	}
	if !exists {
		return models.Settings{}, false, nil
	}

	data, err := os.ReadFile(r.path)
	if err != nil {
		return models.Settings{}, false, apperrors.IO("read settings", err)
	}

	settings, err := DecodeSettings(data, r.schema)
	if err != nil {
		return models.Settings{}, false, err
	}
	return settings, true, nil
}

// DecodeSettings parses a settings document. A document that is not JSON,
// misses a key, or carries an unknown enum value is a serialization error.
func DecodeSettings(data []byte, schema *jsonschema.Resolved) (models.Settings, error) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return models.Settings{}, apperrors.Serialization("parse settings", err)
	}
	if schema != nil {
		if err := schema.Validate(doc); err != nil {
			return models.Settings{}, apperrors.Serialization("check settings shape", err)
		}
	}

	var settings models.Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return models.Settings{}, apperrors.Serialization("decode settings", err)
	}
	return settings.Clone(), nil
}

// ParseSettings decodes data with the schema derived from models.Settings.
func ParseSettings(data []byte) (models.Settings, error) {
	schema, err := settingsSchema()
	if err != nil {
		return models.Settings{}, err
	}
	return DecodeSettings(data, schema)
}

func (r *appSettingsRepository) Save(ctx context.Context, settings models.Settings) error {
	data, err := EncodeSettings(settings)
	if err != nil {
		return err
	}
	if err := utils.AtomicWriteFile(r.path, data, settingsFileMode); err != nil {
		return apperrors.IO("write settings", err)
	}
	return nil
}

// EncodeSettings renders settings the way they are stored on disk.
func EncodeSettings(settings models.Settings) ([]byte, error) {
	data, err := json.MarshalIndent(settings.Clone(), "", "  ")
	if err != nil {
		return nil, apperrors.Serialization("encode settings", err)
	}
	return data, nil
}
