package errors

import "fmt"

// Error codes
const (
	ErrCodeFetchExhausted  = "FETCH_EXHAUSTED"
	ErrCodeMalformedRecord = "MALFORMED_RECORD"
	ErrCodeValidation      = "VALIDATION_ERROR"
	ErrCodeInternal        = "INTERNAL_ERROR"
	ErrCodeBadRequest      = "BAD_REQUEST"
)

// AppError represents an application error with HTTP status code and error code
type AppError struct {
	Code    string // Error code (e.g., "FETCH_EXHAUSTED", "VALIDATION_ERROR")
	Message string // Human-readable error message
	Status  int    // HTTP status code
	Err     error  // Wrapped underlying error (optional)
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for error wrapping support
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewFetchExhaustedError reports that every retry attempt against the
// upstream API failed. The last underlying error is carried for inspection.
func NewFetchExhaustedError(url string, attempts int, last error) *AppError {
	return &AppError{
		Code:    ErrCodeFetchExhausted,
		Message: fmt.Sprintf("fetch failed after %d attempts: %s", attempts, url),
		Status:  502,
		Err:     last,
	}
}

// NewMalformedRecordError reports a game record missing required side or
// outcome data. The aggregation engine skips these by default; the error
// exists for callers that want strict validation.
func NewMalformedRecordError(reason string) *AppError {
	return &AppError{
		Code:    ErrCodeMalformedRecord,
		Message: fmt.Sprintf("malformed game record: %s", reason),
		Status:  502,
	}
}

// NewValidationError creates a new VALIDATION_ERROR
func NewValidationError(field string, reason string) *AppError {
	return &AppError{
		Code:    ErrCodeValidation,
		Message: fmt.Sprintf("validation failed for %s: %s", field, reason),
		Status:  400,
	}
}

// NewInternalError creates a new INTERNAL_ERROR
func NewInternalError(err error) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: "internal server error",
		Status:  500,
		Err:     err,
	}
}

// NewBadRequestError creates a new BAD_REQUEST error
func NewBadRequestError(message string) *AppError {
	return &AppError{
		Code:    ErrCodeBadRequest,
		Message: message,
		Status:  400,
	}
}

// IsFetchExhausted reports whether err is a FETCH_EXHAUSTED AppError.
func IsFetchExhausted(err error) bool {
	appErr, ok := err.(*AppError)
	return ok && appErr.Code == ErrCodeFetchExhausted
}
