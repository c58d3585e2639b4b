package errs

import (
	"errors"
	"fmt"
)

// Kind classifies an error for propagation and HTTP mapping decisions.
// Kinds are assigned where the error is created (or translated from the
// storage layer), never by inspecting message text downstream.
type Kind string

const (
	KindNotFound     Kind = "NOT_FOUND"
	KindUnauthorized Kind = "UNAUTHORIZED"
	KindValidation   Kind = "VALIDATION"
	KindConflict     Kind = "CONFLICT"
	KindTransient    Kind = "TRANSIENT"
	KindUnexpected   Kind = "UNEXPECTED"
)

type AppError struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func New(kind Kind, message string) *AppError {
	return &AppError{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, cause error) *AppError {
	return &AppError{Kind: kind, Message: message, Cause: cause}
}

func NotFound(message string) *AppError     { return New(KindNotFound, message) }
func Unauthorized(message string) *AppError { return New(KindUnauthorized, message) }
func Validation(message string) *AppError   { return New(KindValidation, message) }
func Conflict(message string) *AppError     { return New(KindConflict, message) }

func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindUnexpected
}

func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// IsRetryable reports whether the error is worth retrying: transient
// storage contention and write conflicts qualify, everything else fails fast.
func IsRetryable(err error) bool {
	kind := KindOf(err)
	return kind == KindTransient || kind == KindConflict
}
