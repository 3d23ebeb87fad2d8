package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies an AppError for callers that need coarse handling.
type ErrorKind string

const (
	KindNotFound     ErrorKind = "NOT_FOUND"
	KindValidation   ErrorKind = "VALIDATION"
	KindForbidden    ErrorKind = "FORBIDDEN"
	KindConflict     ErrorKind = "CONFLICT"
	KindInvalidState ErrorKind = "INVALID_STATE"
)

// AppError is a business error with a kind and an optional fine-grained reason.
type AppError struct {
	Kind    ErrorKind
	Reason  string
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

// WithReason returns a copy of the error tagged with the given reason.
func (e *AppError) WithReason(reason string) *AppError {
	cp := *e
	cp.Reason = reason
	return &cp
}

// NewNotFoundError reports that the given entity does not exist.
func NewNotFoundError(entity, id string) *AppError {
	return &AppError{
		Kind:    KindNotFound,
		Message: fmt.Sprintf("%s with id %s not found", entity, id),
	}
}

// NewValidationError reports semantically rejected input.
func NewValidationError(msg string) *AppError {
	return &AppError{Kind: KindValidation, Message: msg}
}

// NewForbiddenError reports an actor without the required relationship.
func NewForbiddenError(msg string) *AppError {
	return &AppError{Kind: KindForbidden, Message: msg}
}

// NewConflictError reports a uniqueness or concurrent-modification conflict.
func NewConflictError(msg string) *AppError {
	return &AppError{Kind: KindConflict, Message: msg}
}

// NewInvalidStateError reports a disallowed state machine transition.
func NewInvalidStateError(from, to string) *AppError {
	return &AppError{
		Kind:    KindInvalidState,
		Message: fmt.Sprintf("cannot transition from %s to %s", from, to),
	}
}

// KindOf returns the kind of err, or "" if err is not an AppError.
func KindOf(err error) ErrorKind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return ""
}

// ReasonOf returns the reason tag of err, or "".
func ReasonOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Reason
	}
	return ""
}

func IsNotFound(err error) bool     { return KindOf(err) == KindNotFound }
func IsValidation(err error) bool   { return KindOf(err) == KindValidation }
func IsForbidden(err error) bool    { return KindOf(err) == KindForbidden }
func IsConflict(err error) bool     { return KindOf(err) == KindConflict }
func IsInvalidState(err error) bool { return KindOf(err) == KindInvalidState }
