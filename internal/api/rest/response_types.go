package rest

import "time"

// ResponseMeta contains response metadata
type ResponseMeta struct {
	RequestID string    `json:"request_id"`
	Timestamp time.Time `json:"timestamp"`
}

// ValidateResponse carries the verdict back to the host framework
type ValidateResponse struct {
	Valid         bool              `json:"valid"`
	Message       string            `json:"message,omitempty"`
	DerivedFields map[string]string `json:"derived_fields,omitempty"`
	Meta          ResponseMeta      `json:"meta"`
}

// ErrorResponse provides error information for malformed API calls
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
