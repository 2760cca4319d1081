// Package response renders the gateway's JSON envelope and file downloads.
package response

import (
	"mime"
	"net/http"
	"time"

	"fieldservice/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// Response is the envelope of every JSON answer
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`    // HTTP status code
	Message string     `json:"message"` // User-facing message, in the order server's words when it gave one
	Data    any        `json:"data,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
}

// ErrorInfo carries the machine-readable side of a failure
type ErrorInfo struct {
	Code    string `json:"code"`    // Business error code, e.g. "MISSING_INPUT"
	Details string `json:"details"` // Which fields or what went wrong, when safe to show
}

// Success writes a successful envelope
func Success(c echo.Context, statusCode int, data any, message string) error {
	if message == "" {
		message = "Success"
	}

	return c.JSON(statusCode, Response{
		Success: true,
		Code:    statusCode,
		Message: message,
		Data:    data,
	})
}

// Failure builds a failed envelope. An empty message becomes the status text.
func Failure(statusCode int, errorCode, message, details string) Response {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return Response{
		Success: false,
		Code:    statusCode,
		Message: message,
		Error: &ErrorInfo{
			Code:    errorCode,
			Details: details,
		},
	}
}

// BindingError answers 400 for a body or form that could not be decoded
func BindingError(c echo.Context, errorCode string, message string) error {
	return c.JSON(http.StatusBadRequest, Failure(http.StatusBadRequest, errorCode, message, ""))
}

// Attachment streams doc as a download named after its filename
func Attachment(c echo.Context, doc *entity.Document) error {
	header := c.Response().Header()
	header.Set(echo.HeaderContentDisposition, mime.FormatMediaType("attachment", map[string]string{
		"filename": doc.Filename,
	}))
	header.Set(echo.HeaderLastModified, time.Now().UTC().Format(http.TimeFormat))

	return c.Blob(http.StatusOK, doc.ContentType, doc.Data)
}

// PNG writes an image that embeds a bearer token, so it is never cached
func PNG(c echo.Context, data []byte) error {
	c.Response().Header().Set(echo.HeaderCacheControl, "no-store")

	return c.Blob(http.StatusOK, "image/png", data)
}
