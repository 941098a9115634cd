package vault

import (
	"errors"
	"io/fs"
	"path/filepath"
	"sync"

	"github.com/99designs/keyring"
)

// File stores secrets as individually encrypted files under a directory, one
// subdirectory per service. It serves hosts that have no platform keychain.
type File struct {
	dir      string
	password string

	mu    sync.Mutex
	rings map[string]keyring.Keyring
}

func NewFile(dir, password string) (*File, error) {
	if dir == "" {
		return nil, errors.New("file keyring directory is required")
	}
	if password == "" {
		return nil, errors.New("file keyring password is required")
	}
	return &File{dir: dir, password: password, rings: make(map[string]keyring.Keyring)}, nil
}

func (f *File) ring(service string) (keyring.Keyring, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if kr, ok := f.rings[service]; ok {
		return kr, nil
	}
	kr, err := keyring.Open(keyring.Config{
		ServiceName:      service,
		AllowedBackends:  []keyring.BackendType{keyring.FileBackend},
		FileDir:          filepath.Join(f.dir, service),
		FilePasswordFunc: keyring.FixedStringPrompt(f.password),
	})
	if err != nil {
		return nil, err
	}
	f.rings[service] = kr
	return kr, nil
}

func (f *File) Set(service, account, secret string) error {
	kr, err := f.ring(service)
	if err != nil {
		return err
	}
	return kr.Set(keyring.Item{
		Key:   account,
		Data:  []byte(secret),
		Label: service + ": " + account,
	})
}

func (f *File) Get(service, account string) (string, error) {
	kr, err := f.ring(service)
	if err != nil {
		return "", err
	}
	item, err := kr.Get(account)
	if errors.Is(err, keyring.ErrKeyNotFound) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return string(item.Data), nil
}

func (f *File) Delete(service, account string) error {
	kr, err := f.ring(service)
	if err != nil {
		return err
	}
	err = kr.Remove(account)
	if errors.Is(err, keyring.ErrKeyNotFound) || errors.Is(err, fs.ErrNotExist) {
		return ErrNotFound
	}
	return err
}
