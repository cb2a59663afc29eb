package apierror

// Machine-readable error codes following the urn:clarityhub:error:* pattern.
const (
	// CodeInvalidArgument indicates request validation failed (400)
	CodeInvalidArgument = "urn:clarityhub:error:invalid_argument"

	// CodeUnauthenticated indicates missing or invalid authentication (401)
	CodeUnauthenticated = "urn:clarityhub:error:unauthenticated"

	// CodeNotFound indicates the requested resource was not found (404)
	CodeNotFound = "urn:clarityhub:error:not_found"

	// CodeRateLimit indicates too many requests (429)
	CodeRateLimit = "urn:clarityhub:error:rate_limit"

	// CodeInternal indicates an unexpected server error (500)
	CodeInternal = "urn:clarityhub:error:internal"
)
