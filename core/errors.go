package core

import (
	"fmt"

	"github.com/pkg/errors"
)

// FieldError is used to indicate an error with a specific struct field.
type FieldError struct {
	Field string
	Error string
}

type ValidationError struct {
	Err    error
	Fields []FieldError
}

func NewValidationError(err error, flds ...FieldError) error {
	return &ValidationError{err, flds}
}

func (err ValidationError) Error() string {
	if err.Err == nil {
		return ""
	}
	return err.Err.Error()
}

type shutdown struct {
	message string
}

func NewShutdownError(msg string) error {
	return &shutdown{message: msg}
}

func (s shutdown) Error() string {
	return s.message
}

func IsShutdown(err error) bool {
	_, ok := errors.Cause(err).(*shutdown)
	return ok
}

// ErrorKind classifies failures of the derived-view and quiz pipelines.
type ErrorKind string

const (
	KindUnknown               ErrorKind = ""
	KindInvalidInput          ErrorKind = "invalid_input"
	KindInvalidAmount         ErrorKind = "invalid_amount"
	KindMalformedResponse     ErrorKind = "malformed_response"
	KindSchemaViolation       ErrorKind = "schema_violation"
	KindInfrastructureFailure ErrorKind = "infrastructure_failure"
	KindNotFound              ErrorKind = "not_found"
)

// Error is a classified failure. Op names the operation that failed,
// Detail carries the diagnostic shown to callers and Err the underlying cause (if any).
type Error struct {
	Kind   ErrorKind
	Op     string
	Detail string
	Err    error
}

func NewError(kind ErrorKind, op, detail string) error {
	return &Error{Kind: kind, Op: op, Detail: detail}
}

func NewErrorf(kind ErrorKind, op, format string, args ...interface{}) error {
	return &Error{Kind: kind, Op: op, Detail: fmt.Sprintf(format, args...)}
}

// WrapError classifies err. It returns nil if err is nil.
func WrapError(err error, kind ErrorKind, op string) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Op: op, Detail: err.Error(), Err: err}
}

func (e *Error) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
	}
	return fmt.Sprintf("%s: %s: %s", e.Op, e.Kind, e.Detail)
}

func (e *Error) Unwrap() error { return e.Err }

// AsError returns the first *Error found in err's chain.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// KindOf returns the kind of the first classified error in err's chain.
func KindOf(err error) ErrorKind {
	if e, ok := AsError(err); ok {
		return e.Kind
	}
	return KindUnknown
}

func IsKind(err error, kind ErrorKind) bool { return KindOf(err) == kind }
