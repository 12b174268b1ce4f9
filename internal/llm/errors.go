package llm

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// APIError is a non-2xx response from the completions endpoint.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("llm request failed with status %d: %s", e.StatusCode, e.Message)
}

// parseAPIError pulls a readable message out of an error response body.
func parseAPIError(statusCode int, body []byte) *APIError {
	var errResp struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
		Message string `json:"message"`
	}
	if json.Unmarshal(body, &errResp) == nil {
		msg := errResp.Error.Message
		if msg == "" {
			msg = errResp.Message
		}
		if msg != "" {
			return &APIError{StatusCode: statusCode, Message: msg}
		}
	}

	var msg string
	switch statusCode {
	case http.StatusUnauthorized:
		msg = "authentication failed, check TOGETHER_API_KEY"
	case http.StatusForbidden:
		msg = "access denied for this API key"
	case http.StatusNotFound:
		msg = "model or endpoint not found"
	case http.StatusTooManyRequests:
		msg = "rate limited, try again later"
	case http.StatusBadGateway, http.StatusServiceUnavailable:
		msg = "provider temporarily unavailable"
	default:
		s := string(body)
		if len(s) > 200 {
			s = s[:200] + "..."
		}
		msg = s
	}
	return &APIError{StatusCode: statusCode, Message: msg}
}
