package apierror

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func init() {
	// Set gin to test mode to reduce noise in test output
	gin.SetMode(gin.TestMode)
}

func TestEnvelopeJSON(t *testing.T) {
	env := NewValidationError("req-abc123", []FieldError{
		{Field: "moodScore", Message: "must be one of -2, -1, 0, 1, 2", Code: "out_of_range"},
		{Field: "moodLabel", Message: "is required", Code: "required"},
	})

	data, err := json.Marshal(env)
	if err != nil {
		t.Fatalf("Failed to marshal Envelope: %v", err)
	}

	var result map[string]interface{}
	if err := json.Unmarshal(data, &result); err != nil {
		t.Fatalf("Failed to unmarshal JSON: %v", err)
	}

	if result["success"] != false {
		t.Errorf("Expected success=false, got %v", result["success"])
	}
	if result["code"] != CodeInvalidArgument {
		t.Errorf("Expected code=%q, got %q", CodeInvalidArgument, result["code"])
	}
	if result["requestId"] != "req-abc123" {
		t.Errorf("Expected requestId=%q, got %q", "req-abc123", result["requestId"])
	}
	if _, ok := result["error"]; !ok {
		t.Error("Expected an 'error' field in the envelope")
	}

	fieldErrors, ok := result["errors"].([]interface{})
	if !ok || len(fieldErrors) != 2 {
		t.Fatalf("Expected 2 field errors, got %v", result["errors"])
	}

	// Status must not leak into the JSON body
	if _, ok := result["status"]; ok {
		t.Error("Status should not be serialized")
	}
}

func TestEnvelopeOmitsEmptyOptionalFields(t *testing.T) {
	env := NewUnauthenticatedError("")

	data, err := json.Marshal(env)
	if err != nil {
		t.Fatalf("Failed to marshal Envelope: %v", err)
	}

	var result map[string]interface{}
	if err := json.Unmarshal(data, &result); err != nil {
		t.Fatalf("Failed to unmarshal JSON: %v", err)
	}

	for _, key := range []string{"requestId", "errors", "retryAfter"} {
		if _, ok := result[key]; ok {
			t.Errorf("Expected %q to be omitted when empty", key)
		}
	}
}

func TestWriteSetsStatusAndRetryAfter(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Write(c, NewRateLimitError("req-1", 60))

	if w.Code != http.StatusTooManyRequests {
		t.Errorf("Expected status 429, got %d", w.Code)
	}
	if got := w.Header().Get("Retry-After"); got != "60" {
		t.Errorf("Expected Retry-After=60, got %q", got)
	}
}

func TestInternalErrorCarriesUnderlyingMessage(t *testing.T) {
	env := NewInternalError("req-2", errors.New("store unavailable"))

	if env.Status != http.StatusInternalServerError {
		t.Errorf("Expected status 500, got %d", env.Status)
	}
	if env.Message != "store unavailable" {
		t.Errorf("Expected underlying message, got %q", env.Message)
	}

	// nil error falls back to a generic message
	fallback := NewInternalError("req-3", nil)
	if fallback.Message == "" {
		t.Error("Expected a non-empty fallback message")
	}
}

func TestEnvelopeImplementsError(t *testing.T) {
	var err error = NewNotFoundError("req-4", "Mood entry", "abc")
	if err.Error() == "" {
		t.Error("Expected a non-empty error string")
	}
}
