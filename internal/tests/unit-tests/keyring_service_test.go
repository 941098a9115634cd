package unit_tests

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"synapse/internal/apperrors"
	"synapse/internal/services"
	"synapse/internal/tests/mocks"
)

func TestKeyringService_StoreGetDelete(t *testing.T) {
	backend := mocks.NewVaultBackendMock()
	svc := services.NewKeyringService(nil, backend)

	require.NoError(t, svc.StoreApiKey("openai", "sk-1"))
	require.NoError(t, svc.StoreApiKey("openai", "sk-2"))

	key, err := svc.GetApiKey("openai")
	require.NoError(t, err)
	assert.Equal(t, "sk-2", key)

	require.NoError(t, svc.DeleteApiKey("openai"))
	_, err = svc.GetApiKey("openai")
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestKeyringService_UnknownProviderNeverReachesVault(t *testing.T) {
	backend := mocks.NewVaultBackendMock()
	svc := services.NewKeyringService(nil, backend)

	err := svc.StoreApiKey("unknown-provider", "x")
	assert.True(t, errors.Is(err, apperrors.ErrInvalidInput))

	_, err = svc.GetApiKey("unknown-provider")
	assert.True(t, errors.Is(err, apperrors.ErrInvalidInput))

	err = svc.DeleteApiKey("OpenAI")
	assert.True(t, errors.Is(err, apperrors.ErrInvalidInput))

	assert.Equal(t, 0, backend.CallCount())
}

func TestKeyringService_EmptyKeyRejected(t *testing.T) {
	backend := mocks.NewVaultBackendMock()
	svc := services.NewKeyringService(nil, backend)

	err := svc.StoreApiKey("anthropic", "")
	assert.True(t, errors.Is(err, apperrors.ErrInvalidInput))
	assert.Equal(t, 0, backend.CallCount())
}

func TestKeyringService_MissingEntryIsNotFound(t *testing.T) {
	svc := services.NewKeyringService(nil, mocks.NewVaultBackendMock())

	key, err := svc.GetApiKey("anthropic")
	assert.Empty(t, key)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))

	err = svc.DeleteApiKey("anthropic")
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestKeyringService_BackendFailureIsVaultError(t *testing.T) {
	backend := mocks.NewVaultBackendMock()
	backend.Err = errors.New("access denied")
	svc := services.NewKeyringService(nil, backend)

	err := svc.StoreApiKey("openai", "sk")
	assert.True(t, errors.Is(err, apperrors.ErrVault))
	assert.ErrorContains(t, err, "access denied")

	_, err = svc.GetApiKey("openai")
	assert.True(t, errors.Is(err, apperrors.ErrVault))
	assert.False(t, errors.Is(err, apperrors.ErrNotFound))

	err = svc.DeleteApiKey("openai")
	assert.True(t, errors.Is(err, apperrors.ErrVault))
}

func TestKeyringService_ListApiKeys(t *testing.T) {
	backend := mocks.NewVaultBackendMock()
	svc := services.NewKeyringService(nil, backend)
	require.NoError(t, svc.StoreApiKey("anthropic", "sk-ant"))

	statuses, err := svc.ListApiKeys()
	require.NoError(t, err)
	require.Len(t, statuses, 2)
	assert.Equal(t, "openai", statuses[0].Provider)
	assert.False(t, statuses[0].Configured)
	assert.Equal(t, "anthropic", statuses[1].Provider)
	assert.True(t, statuses[1].Configured)

	backend.Err = errors.New("locked")
	_, err = svc.ListApiKeys()
	assert.True(t, errors.Is(err, apperrors.ErrVault))
}
