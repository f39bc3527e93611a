package services

import (
	"errors"
	"strings"

	"laptop-service-center/store"
	"laptop-service-center/utils"
)

var (
	// ErrInvalidIdentifier is returned for a malformed public complaint id
	ErrInvalidIdentifier = utils.ErrInvalidComplaintID

	// ErrNotFound is returned when the id is well formed but unknown
	ErrNotFound = store.ErrNotFound

	// ErrStorage matches every StorageError
	ErrStorage = store.ErrStorage

	ErrInvalidStatus        = errors.New("invalid status")
	ErrTransitionNotAllowed = errors.New("status transition not allowed")
	ErrInvalidCredentials   = errors.New("invalid credentials")
)

// StorageError is an infrastructure failure reported by the store
type StorageError = store.StorageError

// ValidationError lists the request fields that are missing or malformed
type ValidationError struct {
	Fields  []string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}
