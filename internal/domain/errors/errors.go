package errors

import (
	"net/http"

	"github.com/pkg/errors"
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

// Is matches any BaseError carrying the same error code, so errors derived with
// WithDetails still match their predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)

	return ok && t.errorCode == e.errorCode
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

// Predefined error types
var (
	// Client-side missing input: no request is made
	ErrMissingCredentials = NewBaseError(
		http.StatusBadRequest,
		"MISSING_CREDENTIALS",
		"Order id and access token are required",
		"",
	)

	ErrMissingParameter = NewBaseError(
		http.StatusBadRequest,
		"MISSING_PARAMETER",
		"Missing order id parameter",
		"",
	)

	ErrMissingInput = NewBaseError(
		http.StatusBadRequest,
		"MISSING_INPUT",
		"Required fields are missing",
		"",
	)

	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// QR capture errors
	ErrInvalidQRPayload = NewBaseError(
		http.StatusUnprocessableEntity,
		"INVALID_QR_PAYLOAD",
		"QR code does not contain a valid order link",
		"",
	)

	ErrNoQRCodeFound = NewBaseError(
		http.StatusUnprocessableEntity,
		"NO_QR_CODE_FOUND",
		"No QR code was found in the captured frames",
		"",
	)

	ErrCameraUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"CAMERA_UNAVAILABLE",
		"Camera is not available",
		"",
	)

	// Wizard errors
	ErrSubmissionInProgress = NewBaseError(
		http.StatusConflict,
		"SUBMISSION_IN_PROGRESS",
		"A closure submission is already in progress",
		"",
	)

	ErrInvalidTransition = NewBaseError(
		http.StatusConflict,
		"INVALID_TRANSITION",
		"Action not allowed in the current step",
		"",
	)

	ErrViewClosed = NewBaseError(
		http.StatusGone,
		"VIEW_CLOSED",
		"The order view was closed",
		"",
	)

	ErrViewNotFound = NewBaseError(
		http.StatusNotFound,
		"VIEW_NOT_FOUND",
		"Order view not found",
		"",
	)

	// Session errors
	ErrUnauthenticated = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHENTICATED",
		"Login required",
		"",
	)

	ErrRefreshTokenMissing = NewBaseError(
		http.StatusUnauthorized,
		"REFRESH_TOKEN_MISSING",
		"No refresh token in the current session",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal error",
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
)

// GenericUpstreamMessage is shown when the order server gives no detail.
const GenericUpstreamMessage = "The order server rejected the request"

// UpstreamError is a non-2xx answer from the order server, implementing the AppError interface
type UpstreamError struct {
	status int
	detail string
	err    error
}

// NewUpstreamError wraps an order server failure. detail is the server's message, if any.
func NewUpstreamError(status int, detail string, err error) *UpstreamError {
	return &UpstreamError{status: status, detail: detail, err: err}
}

// Error implements the error interface
func (e *UpstreamError) Error() string {
	if e.err != nil {
		return errors.Wrap(e.err, "order server request failed").Error()
	}

	return "order server request failed: " + e.Message()
}

// Unwrap returns the transport error, if any
func (e *UpstreamError) Unwrap() error {
	return e.err
}

// HTTPCode returns the upstream status, or 502 when the server could not be reached
func (e *UpstreamError) HTTPCode() int {
	if e.status == 0 {
		return http.StatusBadGateway
	}

	return e.status
}

// ErrorCode returns the business error code
func (e *UpstreamError) ErrorCode() string {
	return "UPSTREAM_ERROR"
}

// Message returns the server's detail verbatim, or a generic fallback
func (e *UpstreamError) Message() string {
	if e.detail != "" {
		return e.detail
	}

	return GenericUpstreamMessage
}

// Details returns the upstream status code
func (e *UpstreamError) Details() string {
	if e.status == 0 {
		return "unreachable"
	}

	return http.StatusText(e.status)
}

// StatusCode returns the raw upstream status (0 when unreachable)
func (e *UpstreamError) StatusCode() int {
	return e.status
}

// UserMessage returns the message to show for err: the AppError message when err
// carries one, otherwise fallback.
func UserMessage(err error, fallback string) string {
	var appErr AppError
	if errors.As(err, &appErr) {
		if msg := appErr.Message(); msg != "" {
			return msg
		}
	}

	return fallback
}

// ServerMessage is like UserMessage, except that an order server failure
// without a detail yields fallback rather than the generic upstream text.
func ServerMessage(err error, fallback string) string {
	var upstream *UpstreamError
	if errors.As(err, &upstream) {
		if upstream.detail != "" {
			return upstream.detail
		}

		return fallback
	}

	return UserMessage(err, fallback)
}
