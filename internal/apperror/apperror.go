// Package apperror defines the error kinds services return and the HTTP
// status each kind maps to.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

type Kind int

const (
	// Internal is the zero value so an unclassified AppError never leaks detail.
	Internal Kind = iota
	Validation
	BadRequest
	Unauthorized
	NotFound
	Conflict
)

func (k Kind) String() string {
	switch k {
	case Validation:
		return "validation"
	case BadRequest:
		return "bad_request"
	case Unauthorized:
		return "unauthorized"
	case NotFound:
		return "not_found"
	case Conflict:
		return "conflict"
	default:
		return "internal"
	}
}

// AppError carries a kind, the client-facing messages and an optional cause.
// Messages of Internal errors are never sent to clients.
type AppError struct {
	Kind     Kind
	Messages []string
	Err      error
}

func (e *AppError) Error() string {
	msg := strings.Join(e.Messages, "; ")
	if msg == "" {
		msg = e.Kind.String()
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// StatusCode returns the HTTP status for the error kind.
func (e *AppError) StatusCode() int {
	switch e.Kind {
	case Validation, BadRequest:
		return http.StatusBadRequest
	case Unauthorized:
		return http.StatusUnauthorized
	case NotFound:
		return http.StatusNotFound
	case Conflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessages returns what may be shown to the client.
func (e *AppError) PublicMessages() []string {
	if e.Kind == Internal || len(e.Messages) == 0 {
		return []string{}
	}
	return e.Messages
}

func New(kind Kind, message string, cause error) *AppError {
	var msgs []string
	if message != "" {
		msgs = []string{message}
	}
	return &AppError{Kind: kind, Messages: msgs, Err: cause}
}

func NewValidation(messages []string) *AppError {
	return &AppError{Kind: Validation, Messages: messages}
}

func NewBadRequest(message string) *AppError {
	return New(BadRequest, message, nil)
}

func NewUnauthorized(message string, cause error) *AppError {
	return New(Unauthorized, message, cause)
}

func NewNotFound(message string) *AppError {
	return New(NotFound, message, nil)
}

func NewConflict(message string, cause error) *AppError {
	return New(Conflict, message, cause)
}

func NewInternal(message string, cause error) *AppError {
	return New(Internal, message, cause)
}

// From unwraps err into an *AppError. Anything that is not one becomes an
// Internal error wrapping err.
func From(err error) *AppError {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return NewInternal("", err)
}

func Is(err error, kind Kind) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Kind == kind
}
