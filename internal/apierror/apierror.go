// Package apierror provides standardized error response structures for the API.
// All errors returned to clients go through this package to ensure consistency
// and to prevent leaking internal details (stack traces, DB errors, etc.).
package apierror

import (
	"fmt"
	"net/http"
)

// Code is the machine-readable error kind carried in every error body.
type Code string

const (
	CodeInvalidInput Code = "invalid_input"
	CodeNotFound     Code = "not_found"
	CodeConflict     Code = "conflict"
	CodeInternal     Code = "internal"
)

// APIError is the canonical error envelope for all 4xx/5xx HTTP responses.
// Services return it as an error; handlers unwrap it with errors.As and map
// the Code to an HTTP status.
type APIError struct {
	Code   Code   `json:"code"`
	Detail string `json:"detail"`
}

func (e *APIError) Error() string { return e.Detail }

// Status maps the error code to its HTTP status.
func (e *APIError) Status() int {
	switch e.Code {
	case CodeInvalidInput:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func New(code Code, msg string) *APIError {
	return &APIError{Code: code, Detail: msg}
}

func InvalidInput(format string, args ...interface{}) *APIError {
	return &APIError{Code: CodeInvalidInput, Detail: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...interface{}) *APIError {
	return &APIError{Code: CodeNotFound, Detail: fmt.Sprintf(format, args...)}
}

func Conflict(format string, args ...interface{}) *APIError {
	return &APIError{Code: CodeConflict, Detail: fmt.Sprintf(format, args...)}
}

func Internal(msg string) *APIError {
	return &APIError{Code: CodeInternal, Detail: msg}
}

// ValidationError wraps multiple field errors.
type ValidationError struct {
	Code   Code              `json:"code"`
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Code: CodeInvalidInput, Detail: "Error de validacion", Fields: fields}
}
