package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind classifies a BaseError
type ErrorKind string

const (
	KindValidation   ErrorKind = "validation"
	KindNotFound     ErrorKind = "notFound"
	KindUnauthorized ErrorKind = "unauthorized"
	KindCreateFailed ErrorKind = "createFailed"
	KindUpdateFailed ErrorKind = "updateFailed"
	KindDeleteFailed ErrorKind = "deleteFailed"
	KindFetchFailed  ErrorKind = "fetchFailed"
)

// BaseError is the application-wide error. Services return nothing else.
type BaseError struct {
	Kind       ErrorKind
	Message    string
	Resource   string
	ResourceID string
	Err        error
}

func (e *BaseError) Error() string {
	return e.Message
}

func (e *BaseError) Unwrap() error {
	return e.Err
}

// Is reports a match on kind, so errors.Is(err, ErrNotFound) works for any not-found error.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

var (
	ErrValidation   = &BaseError{Kind: KindValidation, Message: "validation failed"}
	ErrNotFound     = &BaseError{Kind: KindNotFound, Message: "your requested item is not found"}
	ErrUnauthorized = &BaseError{Kind: KindUnauthorized, Message: "you are not allowed to modify this item"}
	ErrCreateFailed = &BaseError{Kind: KindCreateFailed, Message: "create failed"}
	ErrUpdateFailed = &BaseError{Kind: KindUpdateFailed, Message: "update failed"}
	ErrDeleteFailed = &BaseError{Kind: KindDeleteFailed, Message: "delete failed"}
	ErrFetchFailed  = &BaseError{Kind: KindFetchFailed, Message: "fetch failed"}

	// ErrCacheMiss will throw if the key is not present in the query cache
	ErrCacheMiss = errors.New("cache miss")
)

func NewValidationError(message string) *BaseError {
	return &BaseError{Kind: KindValidation, Message: message}
}

// NewNotFoundError builds "<Resource> with ID <id> not found"
func NewNotFoundError(resource, id string) *BaseError {
	return &BaseError{
		Kind:       KindNotFound,
		Message:    fmt.Sprintf("%s with ID %s not found", resource, id),
		Resource:   resource,
		ResourceID: id,
	}
}

func NewUnauthorizedError(action, resource, id string) *BaseError {
	return &BaseError{
		Kind:       KindUnauthorized,
		Message:    fmt.Sprintf("You are not authorized to %s this %s", action, strings.ToLower(resource)),
		Resource:   resource,
		ResourceID: id,
	}
}

func NewCreateFailedError(resource string) *BaseError {
	return &BaseError{
		Kind:     KindCreateFailed,
		Message:  "Failed to create " + strings.ToLower(resource),
		Resource: resource,
	}
}

func NewUpdateFailedError(resource, id string) *BaseError {
	return &BaseError{
		Kind:       KindUpdateFailed,
		Message:    "Failed to update " + strings.ToLower(resource),
		Resource:   resource,
		ResourceID: id,
	}
}

func NewDeleteFailedError(resource, id string) *BaseError {
	return &BaseError{
		Kind:       KindDeleteFailed,
		Message:    "Failed to delete " + strings.ToLower(resource),
		Resource:   resource,
		ResourceID: id,
	}
}

// NewFetchFailedError wraps a read failure, keeping the cause for errors.Is/As.
func NewFetchFailedError(resource string, cause error) *BaseError {
	return &BaseError{
		Kind:     KindFetchFailed,
		Message:  "Failed to fetch " + strings.ToLower(resource),
		Resource: resource,
		Err:      cause,
	}
}

// WithCause attaches the underlying error and returns e.
func (e *BaseError) WithCause(err error) *BaseError {
	e.Err = err
	return e
}

// AsBaseError returns err unchanged if it already is a *BaseError, otherwise fallback wrapping err.
func AsBaseError(err error, fallback *BaseError) *BaseError {
	var be *BaseError
	if errors.As(err, &be) {
		return be
	}
	return fallback.WithCause(err)
}
