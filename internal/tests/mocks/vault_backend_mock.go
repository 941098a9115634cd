package mocks

import (
	"sync"

	"synapse/internal/vault"
)

// VaultBackendMock is an in-memory vault.Backend. Err, when set, fails every
// call; Calls counts calls that reached the backend.
type VaultBackendMock struct {
	Err error

	mu      sync.Mutex
	secrets map[string]string
	Calls   int
}

func NewVaultBackendMock() *VaultBackendMock {
	return &VaultBackendMock{secrets: make(map[string]string)}
}

func key(service, account string) string {
	return service + "\x00" + account
}

func (m *VaultBackendMock) Set(service, account, secret string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls++
	if m.Err != nil {
		return m.Err
	}
	m.secrets[key(service, account)] = secret
	return nil
}

func (m *VaultBackendMock) Get(service, account string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls++
	if m.Err != nil {
		return "", m.Err
	}
	secret, ok := m.secrets[key(service, account)]
	if !ok {
		return "", vault.ErrNotFound
	}
	return secret, nil
}

func (m *VaultBackendMock) Delete(service, account string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls++
	if m.Err != nil {
		return m.Err
	}
	k := key(service, account)
	if _, ok := m.secrets[k]; !ok {
		return vault.ErrNotFound
	}
	delete(m.secrets, k)
	return nil
}

func (m *VaultBackendMock) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Calls
}
