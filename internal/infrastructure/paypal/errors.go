package paypal

import (
	"errors"
	"fmt"
)

// APIError is a non-success response from the processor. DebugID is the
// processor-issued correlation id quoted in support tickets.
type APIError struct {
	StatusCode int
	Message    string
	DebugID    string
	Details    []ErrorDetail
	Body       string
}

// ErrorDetail is one entry of the structured details array the processor
// attaches to order and capture failures.
type ErrorDetail struct {
	Field       string `json:"field,omitempty"`
	Issue       string `json:"issue,omitempty"`
	Description string `json:"description,omitempty"`
}

type errorResponse struct {
	Name    string        `json:"name"`
	Message string        `json:"message"`
	DebugID string        `json:"debug_id"`
	Details []ErrorDetail `json:"details"`
}

func (e *APIError) Error() string {
	if e.DebugID != "" {
		return fmt.Sprintf("paypal error [%d]: %s (debug_id: %s)", e.StatusCode, e.Message, e.DebugID)
	}
	return fmt.Sprintf("paypal error [%d]: %s", e.StatusCode, e.Message)
}

func IsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	ok := errors.As(err, &apiErr)
	return apiErr, ok
}
