package apperror

import (
	"errors"
	"net/http"
)

var (
	ErrNotFound              = errors.New("resource not found")
	ErrUnauthenticated       = errors.New("unauthenticated")
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrAccountDeactivated    = errors.New("account is deactivated")
	ErrPasswordResetRequired = errors.New("password reset required")
	ErrForbidden             = errors.New("forbidden")
	ErrConflict              = errors.New("resource already exists")
	ErrInvalidState          = errors.New("invalid state")
	ErrInvalidInput          = errors.New("invalid input")
	ErrInternal              = errors.New("internal server error")
	ErrRateLimitExceeded     = errors.New("rate limit exceeded")
)

// AppError is a custom error type that can hold an HTTP status code
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError
func New(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Wrap attaches a caller-facing message to a sentinel so handlers can still
// match with errors.Is while returning something more specific.
func Wrap(sentinel error, message string) *AppError {
	return &AppError{Message: message, Err: sentinel}
}

// MapErrorToStatus maps service errors to HTTP status codes
func MapErrorToStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrUnauthenticated) || errors.Is(err, ErrInvalidCredentials) || errors.Is(err, ErrAccountDeactivated) {
		return http.StatusUnauthorized
	}
	if errors.Is(err, ErrForbidden) || errors.Is(err, ErrPasswordResetRequired) {
		return http.StatusForbidden
	}
	if errors.Is(err, ErrConflict) || errors.Is(err, ErrInvalidState) || errors.Is(err, ErrInvalidInput) {
		return http.StatusBadRequest
	}
	if errors.Is(err, ErrRateLimitExceeded) {
		return http.StatusTooManyRequests
	}
	// Default to internal server error
	return http.StatusInternalServerError
}
