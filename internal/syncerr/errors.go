// Package syncerr defines the error taxonomy of the sync engine. Every
// failure surfaced to a caller is classified into one of the kinds below so
// the caller can decide whether to retry, queue, prompt for conflict
// resolution, or alert the user.
package syncerr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a sync failure.
type Kind string

const (
	// KindValidation - malformed record rejected before send. Not retryable.
	KindValidation Kind = "validation"
	// KindNetwork - timeout or unreachable remote. Transient, retryable.
	KindNetwork Kind = "network"
	// KindConflict - timestamp divergence. Never auto-resolved.
	KindConflict Kind = "conflict"
	// KindServer - remote 5xx. Transient, retryable.
	KindServer Kind = "server"
	// KindAuth - 401/403. Terminal for the attempt, never retried.
	KindAuth Kind = "auth"
	// KindStorage - local write failure. Fatal for the current pass.
	KindStorage Kind = "storage"
)

// Error carries the kind alongside a human-readable message and the cause.
type Error struct {
	Err     error
	Kind    Kind
	Message string
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

// New creates a classified error without a cause.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap creates a classified error wrapping a cause.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf returns the kind of err, or an empty Kind when err carries none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// Is reports whether err is classified as kind.
func Is(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// Retryable reports whether the failure is transient and worth queueing for
// background retry. Unclassified errors are treated as transient: losing a
// record to an unknown hiccup is worse than one redundant replay of an
// idempotent upsert.
func Retryable(err error) bool {
	if err == nil {
		return false
	}
	switch KindOf(err) {
	case KindNetwork, KindServer:
		return true
	case KindValidation, KindConflict, KindAuth, KindStorage:
		return false
	}
	return true
}

// FromStatusCode classifies an HTTP response status from the remote service.
// Status codes below 400 yield nil.
func FromStatusCode(status int, message string) error {
	switch {
	case status < http.StatusBadRequest:
		return nil
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return New(KindAuth, message)
	case status == http.StatusConflict:
		return New(KindConflict, message)
	case status >= http.StatusInternalServerError:
		return New(KindServer, message)
	default:
		return New(KindValidation, message)
	}
}
