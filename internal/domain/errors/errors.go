package errors

import (
	"net/http"

	"campground/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches errors carrying the same error code, so copies made by WithDetails
// still match their predefined error.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// Predefined error types
var (
	// Campground-related errors
	ErrCampgroundNotFound = NewBaseError(
		http.StatusNotFound,
		"CAMPGROUND_NOT_FOUND",
		"Campground not found",
		"",
	)

	ErrCampgroundOwnershipViolation = NewBaseError(
		http.StatusForbidden,
		"CAMPGROUND_OWNERSHIP_VIOLATION",
		"You don't have permission to do that",
		"",
	)

	// Geocoding-related errors
	ErrGeocodeInvalidAddress = NewBaseError(
		http.StatusUnprocessableEntity,
		"GEOCODE_INVALID_ADDRESS",
		"Invalid address, try typing a new address",
		"",
	)

	ErrGeocodeRequestDenied = NewBaseError(
		http.StatusBadGateway,
		"GEOCODE_REQUEST_DENIED",
		"Something is wrong, your request was denied",
		"",
	)

	ErrGeocodeQuotaExceeded = NewBaseError(
		http.StatusServiceUnavailable,
		"GEOCODE_QUOTA_EXCEEDED",
		"All requests used up, try again later",
		"",
	)

	ErrGeocodeUnavailable = NewBaseError(
		http.StatusGatewayTimeout,
		"GEOCODE_UNAVAILABLE",
		"Location service unavailable, try again",
		"",
	)

	// Image-related errors
	ErrInvalidImageType = NewBaseError(
		http.StatusBadRequest,
		"INVALID_IMAGE_TYPE",
		"Only image files are allowed!",
		"",
	)

	ErrImageUploadFailed = NewBaseError(
		http.StatusBadGateway,
		"IMAGE_UPLOAD_FAILED",
		"Image upload failed, try a different image",
		"",
	)

	// Follow-related errors
	ErrFollowSelf = NewBaseError(
		http.StatusBadRequest,
		"FOLLOW_SELF",
		"You cannot follow yourself",
		"",
	)

	ErrFollowNotFound = NewBaseError(
		http.StatusNotFound,
		"FOLLOW_NOT_FOUND",
		"You are not following this user",
		"",
	)

	ErrInvalidFollowCode = NewBaseError(
		http.StatusBadRequest,
		"INVALID_FOLLOW_CODE",
		"Invalid follow code",
		"",
	)

	// Notification-related errors
	ErrNotificationNotFound = NewBaseError(
		http.StatusNotFound,
		"NOTIFICATION_NOT_FOUND",
		"Notification not found",
		"",
	)

	ErrNotificationOwnershipViolation = NewBaseError(
		http.StatusForbidden,
		"NOTIFICATION_OWNERSHIP_VIOLATION",
		"You don't have permission to access this notification",
		"",
	)

	// Authentication-related errors
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"You need to be logged in to do that",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Database transaction failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Resource conflict",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// Unwrap returns the underlying database error
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}
