// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

// Package domain holds the error taxonomy shared by the transport, the
// webinar client and the binaries.
package domain

import "errors"

// ErrorType represents the semantic category of an error
type ErrorType int

const (
	ErrorTypeValidation   ErrorType = iota // Invalid input or 400/422 from the platform
	ErrorTypeNotFound                      // 404 Not Found
	ErrorTypeConflict                      // 409 Conflict
	ErrorTypeInternal                      // 5xx and anything not classified below
	ErrorTypeUnavailable                   // Platform unreachable (DNS, TCP, TLS)
	ErrorTypeUnauthorized                  // 401 Unauthorized
	ErrorTypeForbidden                     // 403 Forbidden
	ErrorTypeRateLimited                   // 429 Too Many Requests
	ErrorTypeDecode                        // Response body did not match the expected shape
)

var errorTypeNames = map[ErrorType]string{
	ErrorTypeValidation:   "validation",
	ErrorTypeNotFound:     "not_found",
	ErrorTypeConflict:     "conflict",
	ErrorTypeInternal:     "internal",
	ErrorTypeUnavailable:  "unavailable",
	ErrorTypeUnauthorized: "unauthorized",
	ErrorTypeForbidden:    "forbidden",
	ErrorTypeRateLimited:  "rate_limited",
	ErrorTypeDecode:       "decode",
}

// String returns the log-friendly name of the error type.
func (t ErrorType) String() string {
	if name, ok := errorTypeNames[t]; ok {
		return name
	}
	return "unknown"
}

// DomainError represents an error with semantic type information
type DomainError struct {
	Type    ErrorType
	Message string
	// StatusCode is the HTTP status returned by the platform, zero when the
	// request never produced a response.
	StatusCode int
	Err        error // underlying error for wrapping
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// GetErrorType returns the semantic type of an error
func GetErrorType(err error) ErrorType {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Type
	}
	return ErrorTypeInternal // default fallback
}

// IsType reports whether err carries the given semantic type.
func IsType(err error, t ErrorType) bool {
	var domainErr *DomainError
	return errors.As(err, &domainErr) && domainErr.Type == t
}

// StatusCode returns the HTTP status attached to err, or zero.
func StatusCode(err error) int {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.StatusCode
	}
	return 0
}

// Error constructors for different types
func NewValidationError(message string, err ...error) *DomainError {
	return &DomainError{Type: ErrorTypeValidation, Message: message, Err: errors.Join(err...)}
}

func NewNotFoundError(message string, err ...error) *DomainError {
	return &DomainError{Type: ErrorTypeNotFound, Message: message, Err: errors.Join(err...)}
}

func NewConflictError(message string, err ...error) *DomainError {
	return &DomainError{Type: ErrorTypeConflict, Message: message, Err: errors.Join(err...)}
}

func NewInternalError(message string, err ...error) *DomainError {
	return &DomainError{Type: ErrorTypeInternal, Message: message, Err: errors.Join(err...)}
}

func NewUnavailableError(message string, err ...error) *DomainError {
	return &DomainError{Type: ErrorTypeUnavailable, Message: message, Err: errors.Join(err...)}
}

func NewUnauthorizedError(message string, err ...error) *DomainError {
	return &DomainError{Type: ErrorTypeUnauthorized, Message: message, Err: errors.Join(err...)}
}

func NewForbiddenError(message string, err ...error) *DomainError {
	return &DomainError{Type: ErrorTypeForbidden, Message: message, Err: errors.Join(err...)}
}

func NewRateLimitedError(message string, err ...error) *DomainError {
	return &DomainError{Type: ErrorTypeRateLimited, Message: message, Err: errors.Join(err...)}
}

func NewDecodeError(message string, err ...error) *DomainError {
	return &DomainError{Type: ErrorTypeDecode, Message: message, Err: errors.Join(err...)}
}

// WithStatus records the HTTP status on the error and returns it.
func (e *DomainError) WithStatus(statusCode int) *DomainError {
	e.StatusCode = statusCode
	return e
}
