package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrUnauthenticated is returned when no caller identity is present.
	ErrUnauthenticated = errors.New("unauthorized")
	// ErrForbidden is returned when the caller may not touch the target record.
	ErrForbidden = errors.New("forbidden")
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrProjectNotFound is returned when a project is not found.
	ErrProjectNotFound = errors.New("project not found")
	// ErrMilestoneNotFound is returned when a milestone is not found.
	ErrMilestoneNotFound = errors.New("milestone not found")
	// ErrDeliverableNotFound is returned when a deliverable is not found.
	ErrDeliverableNotFound = errors.New("deliverable not found")
	// ErrInvoiceNotFound is returned when an invoice is not found.
	ErrInvoiceNotFound = errors.New("invoice not found")
	// ErrClientRequired is returned when the referenced owner is not a client user.
	ErrClientRequired = errors.New("owning user must have the CLIENT role")
)

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Unknown errors collapse
// to a generic message so storage internals never leak past the envelope.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrUnauthenticated):
		// The envelope message stays "Unauthorized" regardless of the
		// sentinel's text; clients match on it.
		return NewHTTPError(http.StatusUnauthorized, "Unauthorized", "UNAUTHORIZED")
	case errors.Is(err, ErrForbidden):
		return NewHTTPError(http.StatusForbidden, ErrForbidden.Error(), "FORBIDDEN")
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrProjectNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "PROJECT_NOT_FOUND")
	case errors.Is(err, ErrMilestoneNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "MILESTONE_NOT_FOUND")
	case errors.Is(err, ErrDeliverableNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "DELIVERABLE_NOT_FOUND")
	case errors.Is(err, ErrInvoiceNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "INVOICE_NOT_FOUND")
	case errors.Is(err, ErrClientRequired):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "CLIENT_REQUIRED")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
