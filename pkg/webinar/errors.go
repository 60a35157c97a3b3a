// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package webinar

import "github.com/linuxfoundation/lfx-v2-webinar-client/internal/domain"

// Error is the categorized failure returned by every Client method.
// Match it with errors.As or classify it with GetErrorType.
type Error = domain.DomainError

// ErrorType is the semantic category of an Error.
type ErrorType = domain.ErrorType

// Error categories.
const (
	ErrorTypeValidation   = domain.ErrorTypeValidation
	ErrorTypeNotFound     = domain.ErrorTypeNotFound
	ErrorTypeConflict     = domain.ErrorTypeConflict
	ErrorTypeInternal     = domain.ErrorTypeInternal
	ErrorTypeUnavailable  = domain.ErrorTypeUnavailable
	ErrorTypeUnauthorized = domain.ErrorTypeUnauthorized
	ErrorTypeForbidden    = domain.ErrorTypeForbidden
	ErrorTypeRateLimited  = domain.ErrorTypeRateLimited
	ErrorTypeDecode       = domain.ErrorTypeDecode
)

// GetErrorType returns the category of err. Errors that are not an *Error
// are reported as ErrorTypeInternal.
func GetErrorType(err error) ErrorType {
	return domain.GetErrorType(err)
}

// IsErrorType reports whether err carries the category t.
func IsErrorType(err error, t ErrorType) bool {
	return domain.IsType(err, t)
}

// StatusCode returns the HTTP status the platform answered with, or zero
// when no response was received.
func StatusCode(err error) int {
	return domain.StatusCode(err)
}
