package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrInvalidFormat      = errors.New("invalid token format")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// Business rule errors
	ErrBusinessRule = errors.New("business rule violation")
)

// Student errors
var (
	ErrStudentNotFound        = errors.New("student not found")
	ErrStudentIDAlreadyExists = errors.New("student ID already exists")
	ErrInvalidStudentID       = errors.New("invalid student ID format")
	ErrStudentNotEligible     = errors.New("student must be at least 15 years old")
)

// Subject errors
var (
	ErrSubjectNotFound      = errors.New("subject not found")
	ErrSubjectAlreadyExists = errors.New("subject with this ID already exists")
	ErrInvalidSubjectID     = errors.New("invalid subject ID format")
	ErrInvalidCredits       = errors.New("credits must be a positive number")
	ErrSubjectHasDependents = errors.New("subject is a prerequisite for other subjects and cannot be deleted")
)

// Registration errors
var (
	ErrRegistrationNotFound  = errors.New("registration not found")
	ErrAlreadyRegistered     = errors.New("already registered for this subject")
	ErrPrerequisiteNotTaken  = errors.New("prerequisite subject has not been registered")
	ErrPrerequisiteNotPassed = errors.New("prerequisite subject has not been passed")
	ErrInvalidGrade          = errors.New("invalid grade (must be A, B+, B, C+, C, D+, D or F)")
)

// User errors
var (
	ErrUserNotFound          = errors.New("user not found")
	ErrUsernameAlreadyExists = errors.New("username already exists")
	ErrWrongPassword         = errors.New("incorrect password")
)

// Curriculum errors
var (
	ErrCurriculumNotFound      = errors.New("curriculum structure not found")
	ErrCurriculumAlreadyExists = errors.New("curriculum structure entry already exists")
	ErrInvalidCurriculumID     = errors.New("invalid curriculum ID format")
	ErrInvalidSemester         = errors.New("semester must be 1 or 2")
)

// NewNotFoundError creates a new custom error for resource not found with a message
func NewNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewValidationError creates a new custom error for validation failures with a message
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}

// NewBusinessRuleError creates a new custom error for broken business rules with a message
func NewBusinessRuleError(message string) error {
	return &CustomError{
		Err:     ErrBusinessRule,
		Message: message,
	}
}

// Is returns whether target matches any of the errors in errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
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

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}
