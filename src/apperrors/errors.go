package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a service failure so the controllers can pick a status
// code without parsing error text.
type Kind int

const (
	// Invalid marks malformed or missing input, including an unrecognized
	// book type.
	Invalid Kind = iota + 1
	// NotFound marks a missing entity or loan.
	NotFound
	// Gone marks an entity that exists but is soft-deleted while the
	// operation requires it active.
	Gone
	// Conflict marks a uniqueness or state violation: duplicate name/email,
	// book already checked out, pair already active, quota exceeded.
	Conflict
	// Locked marks a delete blocked by an active loan.
	Locked
	// Storage marks a transaction that failed to commit. It wraps the
	// driver error and is surfaced as-is; retrying is the caller's call.
	Storage
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap ties a storage-layer failure to the Storage kind.
func Wrap(message string, err error) *Error {
	return &Error{Kind: Storage, Message: message, Err: err}
}

// KindOf extracts the Kind of err, or zero if err carries none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// HTTPStatus maps an error to the status code the API layer reports.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case Invalid:
		return http.StatusBadRequest
	case NotFound:
		return http.StatusNotFound
	case Gone:
		return http.StatusGone
	case Conflict:
		return http.StatusConflict
	case Locked:
		return http.StatusLocked
	default:
		return http.StatusInternalServerError
	}
}
