// Package apperrors defines the error kinds raised by the settings store and
// the credential vault.
package apperrors

import (
	"errors"
	"fmt"
)

type Kind string

const (
	KindConfigDirNotFound Kind = "config_dir_not_found"
	KindIO                Kind = "io"
	KindSerialization     Kind = "serialization"
	KindVault             Kind = "vault"
	KindNotFound          Kind = "not_found"
	KindInvalidInput      Kind = "invalid_input"
)

// Sentinels for errors.Is. Any *Error of the same kind matches.
var (
	ErrConfigDirNotFound = &Error{Kind: KindConfigDirNotFound}
	ErrIO                = &Error{Kind: KindIO}
	ErrSerialization     = &Error{Kind: KindSerialization}
	ErrVault             = &Error{Kind: KindVault}
	ErrNotFound          = &Error{Kind: KindNotFound}
	ErrInvalidInput      = &Error{Kind: KindInvalidInput}
)

type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	msg := describe(e.Kind)
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && t.Op == "" && t.Err == nil
}

func describe(k Kind) string {
	switch k {
	case KindConfigDirNotFound:
		return "failed to access config directory"
	case KindIO:
		return "io error"
	case KindSerialization:
		return "json serialization error"
	case KindVault:
		return "keyring error"
	case KindNotFound:
		return "not found"
	case KindInvalidInput:
		return "invalid input"
	}
	return string(k)
}

func New(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

func IO(op string, err error) *Error            { return New(KindIO, op, err) }
func Serialization(op string, err error) *Error { return New(KindSerialization, op, err) }
func Vault(op string, err error) *Error         { return New(KindVault, op, err) }
func NotFound(op string, err error) *Error      { return New(KindNotFound, op, err) }

func InvalidInput(op, format string, args ...any) *Error {
	return New(KindInvalidInput, op, fmt.Errorf(format, args...))
}

// KindOf returns the kind of the outermost *Error in err's chain, or "" if
// there is none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
