package usecase

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind classifies use case failures
type ErrorKind string

const (
	KindValidation    ErrorKind = "VALIDATION_ERROR"
	KindConfiguration ErrorKind = "CONFIGURATION_ERROR"
	KindGeneration    ErrorKind = "GENERATION_ERROR"
	KindPersistence   ErrorKind = "PERSISTENCE_ERROR"
	KindNotFound      ErrorKind = "NOT_FOUND"
	KindAuthorization ErrorKind = "AUTHORIZATION_ERROR"
	KindUnavailable   ErrorKind = "UNAVAILABLE"
)

// Generation failure codes
const (
	CodeEmptyResponse       = "empty-response"
	CodeUnparseableResponse = "unparseable-response"
	CodeRequestFailed       = "request-failed"
	CodeUnauthenticated     = "unauthenticated"
	CodeForbidden           = "forbidden"
)

// Error is a classified use case failure. Message is safe to show to clients.
type Error struct {
	Kind    ErrorKind
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	msg := string(e.Kind)
	if e.Code != "" {
		msg += "(" + e.Code + ")"
	}
	msg += ": " + e.Message
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// HTTPStatus maps the error kind to a response status
func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindAuthorization:
		if e.Code == CodeForbidden {
			return http.StatusForbidden
		}
		return http.StatusUnauthorized
	case KindUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// AsError extracts a *Error from err
func AsError(err error) (*Error, bool) {
	var ue *Error
	if errors.As(err, &ue) {
		return ue, true
	}
	return nil, false
}

// IsKind reports whether err is a use case error of the given kind
func IsKind(err error, kind ErrorKind) bool {
	ue, ok := AsError(err)
	return ok && ue.Kind == kind
}

func validationError(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

func configurationError(message string) *Error {
	return &Error{Kind: KindConfiguration, Message: message}
}

func generationError(code, message string, err error) *Error {
	return &Error{Kind: KindGeneration, Code: code, Message: message, Err: err}
}

func persistenceError(op string, err error) *Error {
	return &Error{Kind: KindPersistence, Message: fmt.Sprintf("failed to %s", op), Err: err}
}

func notFoundError(message string, err error) *Error {
	return &Error{Kind: KindNotFound, Message: message, Err: err}
}

func authorizationError(code, message string) *Error {
	return &Error{Kind: KindAuthorization, Code: code, Message: message}
}
