// Package apperr provides error types shared across features.
package apperr

import "strings"

// ValidationError aggregates every violated field of a request so handlers can
// report all of them at once instead of only the first.
type ValidationError struct {
	Messages []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, "; ")
}
