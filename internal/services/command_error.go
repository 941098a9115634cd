package services

import (
	"errors"

	"synapse/internal/apperrors"
	"synapse/internal/models"
)

type CommandErrorKind string

const (
	CommandInvalidInput CommandErrorKind = "InvalidInput"
	CommandNotFound     CommandErrorKind = "NotFound"
	CommandSettings     CommandErrorKind = "Settings"
	CommandInternal     CommandErrorKind = "Internal"
)

// CommandError is the error value handed to the UI and CLI layers.
type CommandError struct {
	Kind    CommandErrorKind `json:"kind"`
	Message string           `json:"message"`
}

func (e *CommandError) Error() string {
	switch e.Kind {
	case CommandInvalidInput:
		return "Invalid input: " + e.Message
	case CommandNotFound:
		return "Not found: " + e.Message
	case CommandSettings:
		return "Settings operation failed: " + e.Message
	default:
		return "Internal error: " + e.Message
	}
}

// toCommandError maps store, vault, and validation errors onto the command
// taxonomy. nil stays nil.
func toCommandError(err error) error {
	if err == nil {
		return nil
	}
	var cerr *CommandError
	if errors.As(err, &cerr) {
		return cerr
	}
	var verr *models.ValidationError
	if errors.As(err, &verr) {
		return &CommandError{Kind: CommandInvalidInput, Message: verr.Error()}
	}

	switch apperrors.KindOf(err) {
	case apperrors.KindInvalidInput:
		return &CommandError{Kind: CommandInvalidInput, Message: err.Error()}
	case apperrors.KindNotFound:
		return &CommandError{Kind: CommandNotFound, Message: err.Error()}
	case apperrors.KindIO, apperrors.KindSerialization, apperrors.KindVault, apperrors.KindConfigDirNotFound:
		return &CommandError{Kind: CommandSettings, Message: err.Error()}
	}
	return &CommandError{Kind: CommandInternal, Message: err.Error()}
}
