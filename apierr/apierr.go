// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package apierr

import (
	"errors"
	"fmt"

	goerrors "github.com/go-errors/errors"
)

// Kind classifies an API error for uniform handling at call sites.
type Kind string

const (
	// KindNotAuthenticated covers 401/403; the session is gone and the
	// user must log in again. Not recoverable locally.
	KindNotAuthenticated Kind = "NOT_AUTHENTICATED"
	// KindValidation covers 4xx responses carrying a backend detail
	// message, surfaced verbatim to the user.
	KindValidation Kind = "VALIDATION"
	// KindNotFound covers 404 on optional resources (no CV yet); callers
	// treat it as an expected empty state.
	KindNotFound Kind = "NOT_FOUND"
	// KindTransport covers network-level failures before any HTTP status
	// was received.
	KindTransport Kind = "TRANSPORT"
	// KindServer covers 5xx responses.
	KindServer Kind = "SERVER"
)

// ErrNotAuthenticated is returned, as this exact value, by every
// authenticated call that hit a 401/403. Public endpoints that fail with
// 401 return a distinct Error of the same Kind carrying the backend
// message, so errors.Is matches both but identity picks out the expired
// session.
var ErrNotAuthenticated = &Error{
	Kind:    KindNotAuthenticated,
	Message: "not authenticated",
}

// Error is the normalized error every API call resolves to.
type Error struct {
	Kind    Kind
	Message string // user-facing, backend "detail" when available
	Status  int    // HTTP status, 0 for transport failures
	Err     error
	Stack   []byte
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is lets errors.Is(err, ErrNotAuthenticated) match any auth failure.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

func (e *Error) StackTrace() []byte {
	return e.Stack
}

// New builds an Error of the given kind, capturing a stack trace.
func New(kind Kind, status int, message string, err error) *Error {
	var stack []byte
	if stackErr, ok := err.(*goerrors.Error); ok {
		stack = stackErr.Stack()
	} else if err != nil {
		stack = goerrors.Wrap(err, 2).Stack()
	} else {
		stack = goerrors.New(message).Stack()
	}

	return &Error{
		Kind:    kind,
		Message: message,
		Status:  status,
		Err:     err,
		Stack:   stack,
	}
}

func Validation(status int, message string) *Error {
	return New(KindValidation, status, message, nil)
}

func NotFound(message string) *Error {
	return New(KindNotFound, 404, message, nil)
}

func Transport(err error) *Error {
	return New(KindTransport, 0, "cannot reach server", err)
}

func Server(status int, message string) *Error {
	return New(KindServer, status, message, nil)
}

func NotAuthenticated(status int) *Error {
	return New(KindNotAuthenticated, status, "not authenticated", nil)
}

// KindOf returns the Kind of err, or "" when err is not an API error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// Message returns the user-facing message for err. Non-API errors fall
// back to their Error() string so every screen can display something.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	if err != nil {
		return err.Error()
	}
	return ""
}

// IsNotFound reports whether err is the expected-empty-state case.
func IsNotFound(err error) bool {
	return KindOf(err) == KindNotFound
}
