// Package serviceerrs holds the closed set of errors returned by the Nexus client.
//
// Callers branch on the kind:
//
//	if errors.Is(err, &serviceerrs.Error{Kind: serviceerrs.KindAuthentication}) {
//		...
//	}
package serviceerrs

import (
	"errors"
	"net/http"
)

type Kind string

const (
	KindConfiguration  Kind = "ConfigurationError"
	KindValidation     Kind = "ValidationError"
	KindAuthentication Kind = "AuthenticationError"
	KindBadRequest     Kind = "BadRequestError"
	KindServer         Kind = "ServerError"
)

const (
	MsgUnauthorized     = "Invalid API key or unauthorized access."
	MsgBadRequest       = "Bad request."
	MsgUnexpectedServer = "Unexpected server error."
	MsgNoResponse       = "Failed to communicate with the API."
)

// Error is the single error type of the client. Status is the fixed tag of
// the kind, HTTPStatus is the status actually observed on the wire (0 when
// no response was received or the error is local).
type Error struct {
	cause      error
	Kind       Kind
	Message    string
	Status     int
	HTTPStatus int
}

func (e *Error) Error() string {
	return e.Message
}

// Code returns the machine-readable name of the kind.
func (e *Error) Code() string {
	return string(e.Kind)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Is reports a match when target is an *Error of the same kind.
// A target without a kind matches any *Error.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == "" || t.Kind == e.Kind
}

func statusOf(kind Kind) int {
	switch kind {
	case KindAuthentication:
		return http.StatusUnauthorized
	case KindBadRequest:
		return http.StatusBadRequest
	case KindServer:
		return http.StatusInternalServerError
	default:
		return 0
	}
}

func newError(kind Kind, message string, httpStatus int, cause error) *Error {
	return &Error{
		cause:      cause,
		Kind:       kind,
		Message:    message,
		Status:     statusOf(kind),
		HTTPStatus: httpStatus,
	}
}

func NewConfigurationError(message string) *Error {
	return newError(KindConfiguration, message, 0, nil)
}

func NewValidationError(message string) *Error {
	return newError(KindValidation, message, 0, nil)
}

func NewAuthenticationError(httpStatus int) *Error {
	return newError(KindAuthentication, MsgUnauthorized, httpStatus, nil)
}

func NewBadRequestError(message string, httpStatus int) *Error {
	if message == "" {
		message = MsgBadRequest
	}
	return newError(KindBadRequest, message, httpStatus, nil)
}

func NewServerError(message string, httpStatus int) *Error {
	if message == "" {
		message = MsgUnexpectedServer
	}
	return newError(KindServer, message, httpStatus, nil)
}

// NewTransportError reports a request that never produced a response.
// The cause stays reachable through errors.Unwrap but never enters the message.
func NewTransportError(cause error) *Error {
	return newError(KindServer, MsgNoResponse, 0, cause)
}

// IsKind reports whether any error in err's chain is an *Error of the kind.
func IsKind(err error, kind Kind) bool {
	return errors.Is(err, &Error{Kind: kind})
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if !errors.As(err, &e) {
		return "", false
	}
	return e.Kind, true
}
