// Package errors provides application-level error types and utilities.
// It defines the rejection reasons the contact pipeline can produce plus a
// generic internal error for everything else.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorType represents the type of error
type ErrorType string

const (
	ErrorTypeCaptchaRequired ErrorType = "captcha_required"
	ErrorTypeCaptchaFailed   ErrorType = "captcha_failed"
	ErrorTypeMissingFields   ErrorType = "missing_fields"
	ErrorTypeServerError     ErrorType = "server_error"
	ErrorTypeNotFound        ErrorType = "not_found"
	ErrorTypeBadRequest      ErrorType = "bad_request"
)

// AppError represents an application error with additional context
type AppError struct {
	Type    ErrorType `json:"type"`
	Message string    `json:"message"`
	Code    int       `json:"code"`
	Details string    `json:"details,omitempty"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// NewCaptchaRequiredError rejects a submission that carried no CAPTCHA token
func NewCaptchaRequiredError(message string) *AppError {
	return &AppError{
		Type:    ErrorTypeCaptchaRequired,
		Message: message,
		Code:    http.StatusBadRequest,
	}
}

// NewCaptchaFailedError rejects a submission whose token did not verify
func NewCaptchaFailedError(message string) *AppError {
	return &AppError{
		Type:    ErrorTypeCaptchaFailed,
		Message: message,
		Code:    http.StatusBadRequest,
	}
}

// NewMissingFieldsError rejects a submission with empty required fields
func NewMissingFieldsError(message string, details ...string) *AppError {
	detail := ""
	if len(details) > 0 {
		detail = details[0]
	}
	return &AppError{
		Type:    ErrorTypeMissingFields,
		Message: message,
		Code:    http.StatusBadRequest,
		Details: detail,
	}
}

// NewServerError wraps a delivery or other internal failure
func NewServerError(message string, details ...string) *AppError {
	detail := ""
	if len(details) > 0 {
		detail = details[0]
	}
	return &AppError{
		Type:    ErrorTypeServerError,
		Message: message,
		Code:    http.StatusInternalServerError,
		Details: detail,
	}
}

// NewBadRequestError creates a new bad request error
func NewBadRequestError(message string, details ...string) *AppError {
	detail := ""
	if len(details) > 0 {
		detail = details[0]
	}
	return &AppError{
		Type:    ErrorTypeBadRequest,
		Message: message,
		Code:    http.StatusBadRequest,
		Details: detail,
	}
}

// IsAppError checks if an error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError extracts an AppError from an error
func GetAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
