package property

import (
	"errors"
	"fmt"
)

var (
	ErrBound       = errors.New("a bound value cannot be set")
	ErrSelfBinding = errors.New("cannot bind a property to itself")
)

// ComputeError is returned when a binding's compute function fails. The
// binding stays invalid and retries on the next read.
type ComputeError struct {
	Err error
}

func (e *ComputeError) Error() string {
	return fmt.Sprintf("computing binding: %v", e.Err)
}

func (e *ComputeError) Unwrap() error {
	return e.Err
}

// CollaboratorError wraps a failure of an external Cell.
type CollaboratorError struct {
	Op   string
	Name string
	Err  error
}

func (e *CollaboratorError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("%s external value: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s external value %q: %v", e.Op, e.Name, e.Err)
}

func (e *CollaboratorError) Unwrap() error {
	return e.Err
}
