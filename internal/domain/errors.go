package domain

import "errors"

// ErrorKind classifies a business error so callers can react to it,
// most importantly telling a uniqueness Conflict apart from plain
// validation failures.
type ErrorKind string

const (
	KindValidation   ErrorKind = "VALIDATION"
	KindNotFound     ErrorKind = "NOT_FOUND"
	KindForbidden    ErrorKind = "FORBIDDEN"
	KindInvalidState ErrorKind = "INVALID_STATE"
	KindConflict     ErrorKind = "CONFLICT"
)

// Error carries a kind plus a message suitable for direct display.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func NewValidation(message string) error {
	return &Error{Kind: KindValidation, Message: message}
}

func NewNotFound(message string) error {
	return &Error{Kind: KindNotFound, Message: message}
}

func NewForbidden(message string) error {
	return &Error{Kind: KindForbidden, Message: message}
}

func NewInvalidState(message string) error {
	return &Error{Kind: KindInvalidState, Message: message}
}

func NewConflict(message string) error {
	return &Error{Kind: KindConflict, Message: message}
}

// KindOf returns the kind of err, or "" if err is not a domain Error.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

func IsValidation(err error) bool   { return KindOf(err) == KindValidation }
func IsNotFound(err error) bool     { return KindOf(err) == KindNotFound }
func IsForbidden(err error) bool    { return KindOf(err) == KindForbidden }
func IsInvalidState(err error) bool { return KindOf(err) == KindInvalidState }
func IsConflict(err error) bool     { return KindOf(err) == KindConflict }
