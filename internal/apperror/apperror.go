package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an error for HTTP mapping at the controller layer.
type Kind int

const (
	KindNotFound Kind = iota + 1
	KindMalformedSubmission
	KindForbidden
	KindStorageFailure
)

// AppError carries the entity kind and identifier that caused the failure
// so controllers can render a precise client-facing message.
type AppError struct {
	Kind    Kind
	Entity  string // survey, question, option, student, ...
	ID      any
	Message string
	Err     error
}

func (e *AppError) Error() string {
	msg := e.Message
	if msg == "" {
		switch e.Kind {
		case KindNotFound:
			msg = "not found"
		case KindMalformedSubmission:
			msg = "malformed submission"
		case KindForbidden:
			msg = "forbidden"
		case KindStorageFailure:
			msg = "storage failure"
		}
	}
	if e.Entity != "" {
		msg = fmt.Sprintf("%s %v: %s", e.Entity, e.ID, msg)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *AppError) Unwrap() error { return e.Err }

// StatusCode maps the taxonomy onto HTTP statuses.
func (e *AppError) StatusCode() int {
	switch e.Kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindMalformedSubmission:
		return http.StatusBadRequest
	case KindForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

func NotFound(entity string, id any) *AppError {
	return &AppError{Kind: KindNotFound, Entity: entity, ID: id}
}

func MalformedSubmission(entity string, id any, message string) *AppError {
	return &AppError{Kind: KindMalformedSubmission, Entity: entity, ID: id, Message: message}
}

// Forbidden marks a request by an authenticated caller who does not own
// the target resource.
func Forbidden(entity string, id any, message string) *AppError {
	return &AppError{Kind: KindForbidden, Entity: entity, ID: id, Message: message}
}

// StorageFailure wraps a repository-layer error. Propagated unchanged to
// the caller; the core never retries writes (a silent retry could create
// duplicate result rows).
func StorageFailure(err error) *AppError {
	return &AppError{Kind: KindStorageFailure, Err: err}
}

// As unwraps err into an *AppError when possible.
func As(err error) (*AppError, bool) {
	var ae *AppError
	ok := errors.As(err, &ae)
	return ae, ok
}

func IsNotFound(err error) bool {
	ae, ok := As(err)
	return ok && ae.Kind == KindNotFound
}

func IsMalformedSubmission(err error) bool {
	ae, ok := As(err)
	return ok && ae.Kind == KindMalformedSubmission
}

func IsForbidden(err error) bool {
	ae, ok := As(err)
	return ok && ae.Kind == KindForbidden
}
