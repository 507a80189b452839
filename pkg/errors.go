package pkg

import (
	"fmt"
	"time"
)

// AppError is the application-level error carried between use cases and the
// HTTP layer. Code is a stable machine-readable identifier; HTTPStatus is the
// status the handler should answer with.
type AppError struct {
	Code       string
	Message    string
	Err        error
	HTTPStatus int
}

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// HTTPError is the JSON error body returned by every endpoint.
type HTTPError struct {
	Timestamp  time.Time `json:"timestamp"`
	StatusCode int       `json:"statusCode"`
	ErrorCode  string    `json:"errorCode"`
	Message    string    `json:"message"`
	Path       string    `json:"requestPath,omitempty"`
}

func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{
		Timestamp:  time.Now().UTC(),
		StatusCode: e.HTTPStatus,
		ErrorCode:  e.Code,
		Message:    e.Message,
	}
}

// ToHTTPErrorWithPath fills the request path on top of ToHTTPError.
func (e *AppError) ToHTTPErrorWithPath(path string) HTTPError {
	out := e.ToHTTPError()
	out.Path = path
	return out
}
