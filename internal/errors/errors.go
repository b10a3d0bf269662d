// Package errors provides operation-scoped error wrapping for gitgrab.
package errors

import "fmt"

// OperationError associates a failure with the operation that produced it.
type OperationError struct {
	Op  string // The operation being performed
	Err error  // The underlying error
}

// Error implements the error interface
func (e *OperationError) Error() string {
	if e.Err == nil {
		return e.Op
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error
func (e *OperationError) Unwrap() error {
	return e.Err
}

// New creates a new OperationError
func New(op string, err error) *OperationError {
	return &OperationError{Op: op, Err: err}
}

// Newf creates a new OperationError with a formatted message and no
// underlying error
func Newf(op, format string, args ...any) *OperationError {
	return &OperationError{Op: op, Err: fmt.Errorf(format, args...)}
}
