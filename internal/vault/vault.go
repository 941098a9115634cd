// Package vault provides the secret-store backends credentials are kept in.
//
// A backend addresses one secret string by a (service, account) pair. Every
// backend reports a missing entry as ErrNotFound so callers can tell "no such
// secret" apart from an unavailable or locked store.
package vault

import "errors"

var ErrNotFound = errors.New("secret not found in keyring")

type Backend interface {
	Set(service, account, secret string) error
	Get(service, account string) (string, error)
	Delete(service, account string) error
}
