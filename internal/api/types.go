// Package api defines the JSON response envelopes shared by all HTTP handlers.
package api

// ErrorResponse carries a single error message.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationErrorResponse carries one message per violated field.
type ValidationErrorResponse struct {
	Errors []string `json:"errors"`
}

// MessageResponse carries a human-readable success message.
type MessageResponse struct {
	Message string `json:"message"`
}

// CreatedResponse carries the identifier of a newly created record.
type CreatedResponse struct {
	ID uint `json:"id"`
}

// CountResponse carries the number of records affected by a bulk operation.
type CountResponse struct {
	Count int64 `json:"count"`
}
