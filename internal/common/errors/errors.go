// Package errors provides standardized error handling for the activity
// signup service.
package errors

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

// Registry / signup errors
const (
	ErrCodeActivityNotFound ErrorCode = "ACTIVITY_NOT_FOUND"
	ErrCodeAlreadySignedUp  ErrorCode = "ALREADY_SIGNED_UP"
	ErrCodeNotRegistered    ErrorCode = "NOT_REGISTERED"
	ErrCodeMissingEmail     ErrorCode = "MISSING_EMAIL"

	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode `json:"code"`
	Message   string    `json:"message"`
	Details   string    `json:"details,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// CodeOf extracts the error code from any error, falling back to
// INTERNAL_ERROR for errors produced outside this package.
func CodeOf(err error) ErrorCode {
	var stdErr *StandardError
	if errors.As(err, &stdErr) {
		return stdErr.Code
	}
	return ErrCodeInternal
}

// ==========================
// 2. HTTP Integration
// ==========================

// HTTPStatus maps error codes to HTTP status codes. All registry errors are
// client-input errors; nothing in this service retries or escalates them.
func HTTPStatus(code ErrorCode) int {
	switch code {
	case ErrCodeActivityNotFound:
		return http.StatusNotFound
	case ErrCodeAlreadySignedUp, ErrCodeNotRegistered, ErrCodeMissingEmail:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// ==========================
// 3. Error Constructors
// ==========================

// NewActivityNotFoundError creates the error for an unknown activity name.
// The message wording is part of the API contract: clients match on
// "not found".
func NewActivityNotFoundError(activityName string) *StandardError {
	return &StandardError{
		Code:      ErrCodeActivityNotFound,
		Message:   "Activity not found",
		Details:   fmt.Sprintf("activity: %s", activityName),
		Timestamp: time.Now().UTC(),
	}
}

// NewAlreadySignedUpError creates the error for a duplicate signup.
// Clients match on "already signed up".
func NewAlreadySignedUpError(email, activityName string) *StandardError {
	return &StandardError{
		Code:      ErrCodeAlreadySignedUp,
		Message:   "Student is already signed up",
		Details:   fmt.Sprintf("email: %s, activity: %s", email, activityName),
		Timestamp: time.Now().UTC(),
	}
}

// NewNotRegisteredError creates the error for unregistering an absent
// participant. Clients match on "not registered".
func NewNotRegisteredError(email, activityName string) *StandardError {
	return &StandardError{
		Code:      ErrCodeNotRegistered,
		Message:   "Student is not registered for this activity",
		Details:   fmt.Sprintf("email: %s, activity: %s", email, activityName),
		Timestamp: time.Now().UTC(),
	}
}

// NewMissingEmailError creates the error for a request without the email
// query parameter.
func NewMissingEmailError() *StandardError {
	return &StandardError{
		Code:      ErrCodeMissingEmail,
		Message:   "Email query parameter is required",
		Timestamp: time.Now().UTC(),
	}
}
