// Package errors provides application-level error types and utilities.
// Every failure surfaced to a caller is an *AppError carrying a type and the
// HTTP status it maps to.
package errors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrorType represents the type of error
type ErrorType string

const (
	ErrorTypeValidation         ErrorType = "validation_error"
	ErrorTypeNotFound           ErrorType = "not_found"
	ErrorTypeInternal           ErrorType = "internal_error"
	ErrorTypeIO                 ErrorType = "io_error"
	ErrorTypeSchemaMismatch     ErrorType = "schema_mismatch"
	ErrorTypeParse              ErrorType = "parse_error"
	ErrorTypeDuplicateUser      ErrorType = "duplicate_user"
	ErrorTypeInvalidCredentials ErrorType = "invalid_credentials"
	ErrorTypeNotAuthenticated   ErrorType = "not_authenticated"
	ErrorTypeRateLimited        ErrorType = "rate_limited"
)

// AppError represents an application error with additional context
type AppError struct {
	Type    ErrorType `json:"type"`
	Message string    `json:"message"`
	Code    int       `json:"code"`
	Details string    `json:"details,omitempty"`
	cause   error
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.cause
}

// WithCause records the underlying error so errors.Is/As can reach it.
func (e *AppError) WithCause(err error) *AppError {
	e.cause = err
	return e
}

func newError(t ErrorType, code int, message string, details []string) *AppError {
	detail := ""
	if len(details) > 0 {
		detail = details[0]
	}
	return &AppError{Type: t, Message: message, Code: code, Details: detail}
}

// NewValidationError creates a new validation error
func NewValidationError(message string, details ...string) *AppError {
	return newError(ErrorTypeValidation, http.StatusBadRequest, message, details)
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(message string, details ...string) *AppError {
	return newError(ErrorTypeNotFound, http.StatusNotFound, message, details)
}

// NewInternalError creates a new internal error
func NewInternalError(message string, details ...string) *AppError {
	return newError(ErrorTypeInternal, http.StatusInternalServerError, message, details)
}

// NewIOError reports an unreadable or unwritable file.
func NewIOError(message string, details ...string) *AppError {
	return newError(ErrorTypeIO, http.StatusInternalServerError, message, details)
}

// NewSchemaMismatchError reports input whose columns do not match the expected schema.
func NewSchemaMismatchError(message string, details ...string) *AppError {
	return newError(ErrorTypeSchemaMismatch, http.StatusUnprocessableEntity, message, details)
}

// NewParseError reports a value that could not be parsed.
func NewParseError(message string, details ...string) *AppError {
	return newError(ErrorTypeParse, http.StatusUnprocessableEntity, message, details)
}

func NewDuplicateUserError(message string, details ...string) *AppError {
	return newError(ErrorTypeDuplicateUser, http.StatusConflict, message, details)
}

func NewInvalidCredentialsError(message string, details ...string) *AppError {
	return newError(ErrorTypeInvalidCredentials, http.StatusUnauthorized, message, details)
}

func NewNotAuthenticatedError(message string, details ...string) *AppError {
	return newError(ErrorTypeNotAuthenticated, http.StatusUnauthorized, message, details)
}

func NewRateLimitedError(message string, details ...string) *AppError {
	return newError(ErrorTypeRateLimited, http.StatusTooManyRequests, message, details)
}

// IsAppError checks if the error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError extracts AppError from error
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// IsType reports whether err is an AppError of type t.
func IsType(err error, t ErrorType) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == t
}

func IsNotFoundError(err error) bool {
	return IsType(err, ErrorTypeNotFound)
}

func IsValidationError(err error) bool {
	return IsType(err, ErrorTypeValidation)
}

func IsSchemaMismatchError(err error) bool {
	return IsType(err, ErrorTypeSchemaMismatch)
}

func IsParseError(err error) bool {
	return IsType(err, ErrorTypeParse)
}

func IsDuplicateUserError(err error) bool {
	return IsType(err, ErrorTypeDuplicateUser)
}

func IsInvalidCredentialsError(err error) bool {
	return IsType(err, ErrorTypeInvalidCredentials)
}

func IsNotAuthenticatedError(err error) bool {
	return IsType(err, ErrorTypeNotAuthenticated)
}

// IsDuplicateError checks if the error is a database duplicate key error
func IsDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	// MySQL: "Duplicate entry", PostgreSQL: "duplicate key value violates unique constraint",
	// SQLite: "UNIQUE constraint failed"
	return strings.Contains(msg, "duplicate entry") ||
		strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "unique constraint")
}
