package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrConflict              = errors.New("conflict")

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
)

// Student portal errors
var (
	ErrStudentNotFound    = errors.New("student not found")
	ErrRegNumberExists    = errors.New("registration number already exists")
	ErrRegNumberMismatch  = errors.New("registration numbers do not match")
	ErrInvalidRegNumber   = errors.New("invalid registration number")
	ErrSemesterNotFound   = errors.New("semester not found")
	ErrSemesterNameExists = errors.New("a semester with this name already exists")
	ErrCourseNotFound     = errors.New("course not found")
	ErrInvalidGradePoint  = errors.New("invalid grade point")
	ErrInvalidCreditUnit  = errors.New("credit unit must be a positive integer")
)

// Dues errors
var (
	ErrDuesNotFound      = errors.New("departmental dues record not found")
	ErrDuesAlreadyExists = errors.New("student already has a dues record")
	ErrDuesNotApproved   = errors.New("departmental dues have not been approved yet")
)

// Content errors
var (
	ErrStaffNotFound        = errors.New("staff member not found")
	ErrExcoNotFound         = errors.New("exco not found")
	ErrPastQuestionNotFound = errors.New("past question not found")
	ErrResourceItemNotFound = errors.New("library resource not found")
	ErrTestimonialNotFound  = errors.New("testimonial not found")
	ErrAnnouncementNotFound = errors.New("announcement not found")
	ErrHandbookEntryExists  = errors.New("handbook entry for this level, semester and course code already exists")
	ErrHandbookNotFound     = errors.New("handbook entry not found")
	ErrTimetableNotFound    = errors.New("timetable not found")
	ErrCalendarNotFound     = errors.New("academic calendar not found")
)

// Admin errors
var (
	ErrAdminNotFound = errors.New("admin user not found")
)

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements the error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap
func (e *CustomError) Unwrap() error {
	return e.Err
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// NewCustomError creates a CustomError wrapping an underlying sentinel
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// NewResourceNotFoundError creates a not-found error with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{Err: ErrResourceNotFound, Message: message}
}

// NewConflictError creates a conflict error with a message
func NewConflictError(message string) error {
	return &CustomError{Err: ErrConflict, Message: message}
}

// NewForbiddenError creates a permission-denied error with a message
func NewForbiddenError(message string) error {
	return &CustomError{Err: ErrPermissionDenied, Message: message}
}

// NewBadRequestError creates a bad-request error with a message
func NewBadRequestError(message string) error {
	return &CustomError{Err: ErrBadRequest, Message: message}
}
