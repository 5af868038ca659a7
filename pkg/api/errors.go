package api

import (
	"fmt"
	"net/http"
)

// Error types as the OpenAI API reports them.
const (
	TypeInvalidRequest = "invalid_request_error"
	TypeServer         = "server_error"
)

const CodeInvalidAPIKey = "invalid_api_key"

// Error is the OpenAI error object. It is also a Go error so handlers can
// hand it to gin with c.Error and let the error middleware render it.
type Error struct {
	Message string  `json:"message"`
	Type    string  `json:"type"`
	Param   *string `json:"param"`
	Code    *string `json:"code"`

	// HTTP status code, not serialized
	Status int `json:"-"`
	// Original error for internal logging
	Log error `json:"-"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("[%d] %s: %s", e.Status, e.Type, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Log
}

// ErrorEnvelope is the body of every failed response.
type ErrorEnvelope struct {
	Error *Error `json:"error"`
}

// Envelope wraps the error for serialization.
func (e *Error) Envelope() ErrorEnvelope {
	return ErrorEnvelope{Error: e}
}

type ErrorOption func(*Error)

// WithParam names the offending request field.
func WithParam(param string) ErrorOption {
	return func(e *Error) {
		if param != "" {
			e.Param = &param
		}
	}
}

// WithCode sets the machine readable error code.
func WithCode(code string) ErrorOption {
	return func(e *Error) {
		e.Code = &code
	}
}

// WithLog attaches an internal error for server-side logging
func WithLog(err error) ErrorOption {
	return func(e *Error) {
		e.Log = err
	}
}

// NewError creates a generic Error
func NewError(status int, errType, message string, opts ...ErrorOption) *Error {
	e := &Error{
		Message: message,
		Type:    errType,
		Status:  status,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// InvalidRequestError is a 400 for a request that failed validation.
func InvalidRequestError(message string, opts ...ErrorOption) *Error {
	return NewError(http.StatusBadRequest, TypeInvalidRequest, message, opts...)
}

// AuthenticationError is a 401; OpenAI reports these as invalid requests.
func AuthenticationError(message string, opts ...ErrorOption) *Error {
	return NewError(http.StatusUnauthorized, TypeInvalidRequest, message, opts...)
}

// NotFoundError creates a standard 404 error
func NotFoundError(message string) *Error {
	return NewError(http.StatusNotFound, TypeInvalidRequest, message)
}

// InternalError is a 500 that never leaks its cause to the client.
func InternalError(err error) *Error {
	return NewError(http.StatusInternalServerError, TypeServer,
		"The server had an error while processing your request. Sorry about that!",
		WithLog(err))
}
