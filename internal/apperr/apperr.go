// Package apperr defines the error taxonomy shared by every service in the
// job service. Callers only ever see the Kind and the message; the wrapped
// cause stays internal and is surfaced through logging.
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an error for the boundary layer.
type Kind int

const (
	// Internal is the catch-all for persistence failures, rollbacks and
	// unexpected remote-call failures.
	Internal Kind = iota
	// BadRequest marks caller-correctable precondition failures.
	BadRequest
	// Unauthorized marks failed role checks and failed role resolution.
	Unauthorized
	// NotFound marks empty role or record resolution.
	NotFound
)

// String returns the canonical name of the kind.
func (k Kind) String() string {
	switch k {
	case BadRequest:
		return "bad_request"
	case Unauthorized:
		return "unauthorized"
	case NotFound:
		return "not_found"
	default:
		return "internal"
	}
}

// Error carries a kind, a fixed human-readable message and an optional
// wrapped cause. The cause never crosses the service boundary.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// Unwrap exposes the cause to errors.Is / errors.As chains.
func (e *Error) Unwrap() error { return e.Err }

// E builds an *Error. err may be nil.
func E(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// KindOf extracts the kind from err. Errors that are not *Error count as
// Internal.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return Internal
}

// Message returns the caller-visible message for err. Untyped errors get a
// generic message so their cause is never leaked.
func Message(err error) string {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Msg
	}
	return "internal server error"
}

// IsTyped reports whether err already carries one of the four kinds.
func IsTyped(err error) bool {
	var ae *Error
	return errors.As(err, &ae)
}
