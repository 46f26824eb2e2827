package service

import (
	"errors"
	"fmt"
)

// Kind classifies a failed use case so the transport can pick a status.
type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindValidation
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindValidation:
		return "validation"
	default:
		return "internal"
	}
}

// Error is the typed failure returned by services. Msg is safe to show to clients.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches on Kind and Msg so sentinels below work with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind && e.Msg == t.Msg
}

var (
	ErrUserNotFound        = &Error{Kind: KindNotFound, Msg: "user not found"}
	ErrInvalidDate         = &Error{Kind: KindValidation, Msg: "invalid date"}
	ErrInvalidDuration     = &Error{Kind: KindValidation, Msg: "invalid duration"}
	ErrDescriptionRequired = &Error{Kind: KindValidation, Msg: "description is required"}
	ErrInvalidRange        = &Error{Kind: KindValidation, Msg: "'from' must be <= 'to'"}
	ErrInvalidFrom         = &Error{Kind: KindValidation, Msg: "invalid 'from' date"}
	ErrInvalidTo           = &Error{Kind: KindValidation, Msg: "invalid 'to' date"}
	ErrInvalidLimit        = &Error{Kind: KindValidation, Msg: "invalid limit"}
)

// Validation builds an ad-hoc validation error.
func Validation(msg string, cause error) *Error {
	return &Error{Kind: KindValidation, Msg: msg, Err: cause}
}

// wrap attaches cause to a sentinel without losing errors.Is matching.
func wrap(sentinel *Error, cause error) *Error {
	return &Error{Kind: sentinel.Kind, Msg: sentinel.Msg, Err: cause}
}

// KindOf reports the Kind of err. Untyped errors are internal.
func KindOf(err error) Kind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return KindInternal
}

// PublicMessage returns the client-facing message for typed errors and fallback otherwise.
func PublicMessage(err error, fallback string) string {
	var se *Error
	if errors.As(err, &se) && se.Kind != KindInternal {
		return se.Msg
	}
	return fallback
}
