package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// AppError is the unified error type for this module.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// HTTPStatus is the recommended HTTP status code for this error.
	HTTPStatus int `json:"-"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError.
func New(code ErrorCode, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// --- Constructors ---

// MissingField creates a configuration error for a missing required field.
func MissingField(field string) *AppError {
	return &AppError{
		Code: ErrCodeConfigMissingField, Message: fmt.Sprintf("Missing required field: %s", field),
		HTTPStatus: http.StatusBadRequest,
		Details:    map[string]any{"field": field},
	}
}

// InvalidConfig creates a configuration error for an unusable value.
func InvalidConfig(field, reason string) *AppError {
	details := make(map[string]any)
	if field != "" {
		details["field"] = field
	}
	return &AppError{
		Code: ErrCodeConfigInvalid, Message: fmt.Sprintf("Invalid configuration: %s", reason),
		HTTPStatus: http.StatusBadRequest, Details: details,
	}
}

// MissingSubject creates a protocol-compliance error for a claim set
// that carries no subject identifier. The provider kind is recorded in
// the details so the integrator can attribute the failure.
func MissingSubject(providerID string) *AppError {
	return &AppError{
		Code: ErrCodeClaimsMissingSubject, Message: "Provider returned claims without a subject identifier.",
		HTTPStatus: http.StatusBadGateway,
		Details:    map[string]any{"provider": providerID},
	}
}

// Validation creates a generic validation error.
func Validation(message string) *AppError {
	return &AppError{
		Code: ErrCodeInvalidInput, Message: message,
		HTTPStatus: http.StatusBadRequest,
	}
}

// Internal creates an AppError for an unexpected internal error.
func Internal(cause error) *AppError {
	return &AppError{
		Code: ErrCodeInternal, Message: "An unexpected error occurred.",
		HTTPStatus: http.StatusInternalServerError, Cause: cause,
	}
}

// --- Classification helpers ---

// AsAppError converts an error to an AppError if possible.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsConfiguration reports whether err is a configuration error.
// Configuration errors are fatal to one provider's registration and
// non-fatal to the overall process.
func IsConfiguration(err error) bool {
	appErr, ok := AsAppError(err)
	return ok && IsConfigurationCode(appErr.Code)
}

// IsProtocolCompliance reports whether err is a protocol-compliance error
// attributable to the provider, scoped to a single authentication attempt.
func IsProtocolCompliance(err error) bool {
	appErr, ok := AsAppError(err)
	return ok && IsProtocolCode(appErr.Code)
}
