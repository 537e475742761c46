// Package apierrors builds the structured 400 bodies shared by both API
// surfaces: a per-field map for structural validation failures and a
// best-effort hint for payloads that could not be parsed at all.
package apierrors

import (
	"net/http"
	"strings"
	"time"
)

// ErrorResponse is the error body returned for request failures.
type ErrorResponse struct {
	Timestamp time.Time         `json:"timestamp"`
	Status    int               `json:"status"`
	Error     string            `json:"error"`
	Message   string            `json:"message"`
	Errors    map[string]string `json:"errors,omitempty"`
	Details   string            `json:"details,omitempty"`
}

// ValidationFailed reports structural validation violations. Every violated
// field of the request appears in the Errors map, not just the first.
func ValidationFailed(fieldErrors map[string]string) ErrorResponse {
	return ErrorResponse{
		Timestamp: time.Now(),
		Status:    http.StatusBadRequest,
		Error:     "Validation Failed",
		Message:   "The submitted data is not valid",
		Errors:    fieldErrors,
	}
}

// MalformedBody reports a request body that could not be parsed. The message
// is inferred by pattern-matching on the parse failure text; the guess is a
// UX nicety and may misclassify.
func MalformedBody(parseErr error) ErrorResponse {
	message := "Invalid data format"
	if parseErr != nil {
		errText := parseErr.Error()
		switch {
		case strings.Contains(errText, "decimal"):
			message = "The price format is not valid. Use a dot (.) as the decimal separator (example: 19.99)"
		case strings.Contains(errText, "unmarshal"), strings.Contains(errText, "deserialize"):
			message = "One or more fields have an incorrect format"
		case strings.Contains(errText, "invalid character"), strings.Contains(errText, "unexpected end"):
			message = "The JSON payload is not well formed"
		}
	}

	return ErrorResponse{
		Timestamp: time.Now(),
		Status:    http.StatusBadRequest,
		Error:     "Bad Request",
		Message:   message,
		Details:   "Check the format of the submitted data",
	}
}
