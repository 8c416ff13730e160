// Package api defines the uniform response envelope the eVizor backend wraps
// every payload in, and the single error type the rest of the console is
// allowed to observe from the HTTP layer.
package api

import "encoding/json"

// Response is the backend envelope. When Status is true, Data is well-formed
// for the declared T; when false, Message/Error describe the failure and
// Data must not be trusted.
type Response[T any] struct {
	StatusCode int    `json:"statusCode"`
	Status     bool   `json:"status"`
	Message    string `json:"message"`
	Error      string `json:"error,omitempty"`
	Data       T      `json:"data"`
	Total      *int   `json:"total,omitempty"`
	Page       *int   `json:"page,omitempty"`
	Limit      *int   `json:"limit,omitempty"`
	TotalPages *int   `json:"totalPages,omitempty"`
}

// Err converts a backend-reported failure (Status false) into an *Error
// carrying the envelope's message, status code, error tag and data.
// It returns nil when the envelope reports success.
func (r *Response[T]) Err() error {
	if r.Status {
		return nil
	}
	data, _ := json.Marshal(r.Data)
	return &Error{
		Message:    r.Message,
		StatusCode: r.StatusCode,
		Status:     r.Status,
		Tag:        r.Error,
		Data:       data,
	}
}

// TotalCount returns the server-reported total when present, falling back
// to the length of the current page.
func (r *Response[T]) TotalCount(pageLen int) int {
	if r.Total != nil {
		return *r.Total
	}
	return pageLen
}
