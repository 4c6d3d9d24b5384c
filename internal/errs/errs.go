// ABOUTME: Error kinds shared by the storage, service and migration layers.
// ABOUTME: ReadError and WriteError wrap driver failures; ErrNotFound marks missing ids.
package errs

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when an entity id does not exist.
var ErrNotFound = errors.New("not found")

// ReadError wraps a failure reading from a store.
type ReadError struct {
	Op  string
	Err error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Op, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// WriteError wraps a failure writing to a store.
type WriteError struct {
	Op  string
	Err error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Op, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// MigrationError wraps the first failure of a migration run. The migration
// marker is never set when one is returned.
type MigrationError struct {
	Stage string
	Err   error
}

func (e *MigrationError) Error() string {
	return fmt.Sprintf("migration failed at %s: %v", e.Stage, e.Err)
}

func (e *MigrationError) Unwrap() error { return e.Err }

// Read wraps err as a ReadError. A nil err stays nil and ErrNotFound passes
// through untouched.
func Read(op string, err error) error {
	if err == nil || errors.Is(err, ErrNotFound) {
		return err
	}
	var re *ReadError
	if errors.As(err, &re) {
		return err
	}
	return &ReadError{Op: op, Err: err}
}

// Write wraps err as a WriteError. A nil err stays nil.
func Write(op string, err error) error {
	if err == nil {
		return nil
	}
	var we *WriteError
	if errors.As(err, &we) {
		return err
	}
	return &WriteError{Op: op, Err: err}
}

// NotFound returns an error that matches ErrNotFound and names the entity.
func NotFound(entity, id string) error {
	return fmt.Errorf("%s %s: %w", entity, id, ErrNotFound)
}
