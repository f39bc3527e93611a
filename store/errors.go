// Package store persists complaints and feedback through gorm.
package store

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when no row matches the requested id
	ErrNotFound = errors.New("record not found")

	// ErrStorage matches every StorageError via errors.Is
	ErrStorage = errors.New("storage failure")
)

// StorageError wraps an infrastructure failure from the database
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

func (e *StorageError) Is(target error) bool { return target == ErrStorage }

func storageError(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}
