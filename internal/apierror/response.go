package apierror

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Write writes an error Envelope to the gin context. If RetryAfter is set,
// the Retry-After header is also written (429 responses).
func Write(c *gin.Context, e *Envelope) {
	if e.RetryAfter != nil {
		c.Header("Retry-After", strconv.Itoa(*e.RetryAfter))
	}
	c.JSON(e.Status, e)
}

// GetRequestID extracts the request ID from the gin context.
// Returns the X-Request-ID header value if no ID was set by middleware.
func GetRequestID(c *gin.Context) string {
	if requestID, exists := c.Get("request_id"); exists {
		if id, ok := requestID.(string); ok {
			return id
		}
	}
	return c.GetHeader("X-Request-ID")
}

// NewValidationError creates a 400 response carrying per-field errors so a
// client can report all validation issues at once.
func NewValidationError(requestID string, errors []FieldError) *Envelope {
	return &Envelope{
		Success:   false,
		Code:      CodeInvalidArgument,
		Message:   "One or more fields failed validation",
		Status:    http.StatusBadRequest,
		RequestID: requestID,
		Errors:    errors,
	}
}

// NewInvalidArgumentError creates a 400 response with a single message,
// for rejections that are not tied to one field (e.g. a disallowed range).
func NewInvalidArgumentError(requestID, detail string) *Envelope {
	return &Envelope{
		Success:   false,
		Code:      CodeInvalidArgument,
		Message:   detail,
		Status:    http.StatusBadRequest,
		RequestID: requestID,
	}
}

// NewUnauthenticatedError creates a 401 response.
func NewUnauthenticatedError(requestID string) *Envelope {
	return &Envelope{
		Success:   false,
		Code:      CodeUnauthenticated,
		Message:   "Authentication is required to access this resource",
		Status:    http.StatusUnauthorized,
		RequestID: requestID,
	}
}

// NewNotFoundError creates a 404 response. The same response is used when a
// resource exists but belongs to another user, so ownership is not leaked.
func NewNotFoundError(requestID, resource, id string) *Envelope {
	return &Envelope{
		Success:   false,
		Code:      CodeNotFound,
		Message:   fmt.Sprintf("%s with ID '%s' was not found", resource, id),
		Status:    http.StatusNotFound,
		RequestID: requestID,
	}
}

// NewRateLimitError creates a 429 response.
// retryAfter specifies seconds until the client should retry.
func NewRateLimitError(requestID string, retryAfter int) *Envelope {
	return &Envelope{
		Success:    false,
		Code:       CodeRateLimit,
		Message:    fmt.Sprintf("Rate limit exceeded. Please retry after %d seconds", retryAfter),
		Status:     http.StatusTooManyRequests,
		RequestID:  requestID,
		RetryAfter: &retryAfter,
	}
}

// NewInternalError creates a 500 response. The underlying message is
// included for diagnostics; nothing in this slice puts secrets in errors.
func NewInternalError(requestID string, err error) *Envelope {
	msg := "An unexpected error occurred"
	if err != nil {
		msg = err.Error()
	}
	return &Envelope{
		Success:   false,
		Code:      CodeInternal,
		Message:   msg,
		Status:    http.StatusInternalServerError,
		RequestID: requestID,
	}
}
