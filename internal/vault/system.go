package vault

import (
	"errors"

	"github.com/zalando/go-keyring"
)

// System stores secrets in the platform keychain: macOS Keychain, Windows
// Credential Manager, or the Secret Service on Linux.
type System struct{}

func NewSystem() *System {
	return &System{}
}

func (System) Set(service, account, secret string) error {
	return keyring.Set(service, account, secret)
}

func (System) Get(service, account string) (string, error) {
	secret, err := keyring.Get(service, account)
	if errors.Is(err, keyring.ErrNotFound) {
		return "", ErrNotFound
	}
	return secret, err
}

func (System) Delete(service, account string) error {
	err := keyring.Delete(service, account)
	if errors.Is(err, keyring.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
