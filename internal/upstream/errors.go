package upstream

import (
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
)

// Sentinel errors for use with errors.Is()
var (
	ErrNotFound     = errors.New("resource not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrBadRequest   = errors.New("bad request")
	ErrConflict     = errors.New("resource conflict")
	ErrServerError  = errors.New("server error")
)

// APIError is a non-success response from the nexodus API
type APIError struct {
	StatusCode int
	Message    string // message reported by the API, empty when the body carried none
	Body       []byte
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("nexodus api error (status %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("nexodus api error (status %d)", e.StatusCode)
}

// Is implements errors.Is() for comparing with sentinel errors
func (e *APIError) Is(target error) bool {
	switch e.StatusCode {
	case 400:
		return target == ErrBadRequest
	case 401:
		return target == ErrUnauthorized
	case 403:
		return target == ErrForbidden
	case 404:
		return target == ErrNotFound
	case 409:
		return target == ErrConflict
	}
	if e.StatusCode >= 500 && e.StatusCode < 600 {
		return target == ErrServerError
	}
	return false
}

// newAPIError builds an APIError, taking the message from an {"error": ...} or
// {"message": ...} JSON body when there is one.
func newAPIError(statusCode int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: statusCode, Body: body}
	if gjson.ValidBytes(body) {
		for _, path := range []string{"error", "message"} {
			if v := gjson.GetBytes(body, path); v.Type == gjson.String && v.String() != "" {
				apiErr.Message = v.String()
				break
			}
		}
	}
	return apiErr
}
