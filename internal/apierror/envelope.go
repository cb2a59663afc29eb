// Package apierror provides the ClarityHub error response envelope and
// constructors for the error taxonomy used across all API handlers:
// Unauthenticated, InvalidArgument, NotFound and InternalError.
package apierror

// Envelope is the JSON body returned for every failed request. Success is
// always false; successful responses use {success:true, data:...} and are
// written directly by handlers.
type Envelope struct {
	Success bool   `json:"success"`
	Code    string `json:"code"`
	Message string `json:"error"`

	// Status is the HTTP status to respond with; not serialized.
	Status int `json:"-"`

	RequestID  string       `json:"requestId,omitempty"`
	Errors     []FieldError `json:"errors,omitempty"`
	RetryAfter *int         `json:"retryAfter,omitempty"`
}

// FieldError represents a validation error for a specific field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// Error implements the error interface for Envelope.
func (e *Envelope) Error() string {
	return e.Message
}
