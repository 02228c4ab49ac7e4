package types

import (
	"errors"
	"fmt"
)

// Error is a classified failure
type Error struct {
	Type ErrorType
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Op == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewTransportError wraps a connection or stream failure
func NewTransportError(op string, err error) error {
	return &Error{Type: ErrorTypeTransport, Op: op, Err: err}
}

// NewProtocolError wraps a malformed or unexpected message
func NewProtocolError(op string, err error) error {
	return &Error{Type: ErrorTypeProtocol, Op: op, Err: err}
}

// NewValidationError wraps a rejected user input
func NewValidationError(op string, err error) error {
	return &Error{Type: ErrorTypeValidation, Op: op, Err: err}
}

// ErrorTypeOf returns the type of the first classified error in the chain of err.
// Unclassified errors are transport errors.
func ErrorTypeOf(err error) ErrorType {
	var e *Error
	if errors.As(err, &e) {
		return e.Type
	}
	return ErrorTypeTransport
}

// IsPermanent reports whether err must not be retried
func IsPermanent(err error) bool {
	return err != nil && ErrorTypeOf(err).Permanent()
}
