package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")

	// Authentication errors
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrTokenExpired           = errors.New("token expired")
	ErrTokenMalformed         = errors.New("malformed token")
	ErrAccountDisabled        = errors.New("account is deactivated")
	ErrAccountPendingApproval = errors.New("account pending approval")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
)

// College errors
var (
	ErrCollegeNotFound   = errors.New("college not found")
	ErrCollegeCodeExists = errors.New("college code already exists")
	ErrCollegeHasUsers   = errors.New("college has associated users and cannot be deleted")
	ErrCollegeHasJobs    = errors.New("college has associated jobs and cannot be deleted")
)

// User errors
var (
	ErrUserNotFound   = errors.New("user not found")
	ErrUsernameExists = errors.New("username already exists in this college")
	ErrEmailExists    = errors.New("email already exists")
)

// Credential errors
var (
	ErrCredentialNotFound = errors.New("credential not found")
	ErrInvalidResetToken  = errors.New("invalid or expired reset token")
)

// Job errors
var (
	ErrJobNotFound = errors.New("job not found")
	ErrJobInactive = errors.New("this job is no longer accepting applications")
)

// Application errors
var (
	ErrApplicationNotFound = errors.New("application not found")
	ErrAlreadyApplied      = errors.New("you have already applied for this job")
	ErrDeadlinePassed      = errors.New("application deadline has passed")
)

// NewNotFoundError creates a new custom error for resource not found with a message
func NewNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewConflictError creates a new custom error for conflict situations with a message
func NewConflictError(message string) error {
	return &CustomError{
		Err:     ErrConflict,
		Message: message,
	}
}

// NewForbiddenError creates a new custom error for permission denied with a message
func NewForbiddenError(message string) error {
	return &CustomError{
		Err:     ErrPermissionDenied,
		Message: message,
	}
}

// NewValidationError creates a new custom error for invalid input with a message
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}
