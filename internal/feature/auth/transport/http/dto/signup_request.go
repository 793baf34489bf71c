// Package dto defines data transfer objects for the auth feature's HTTP transport layer.
package dto

// SignUpReq represents the request body for the /sign-up endpoint.
// Field-level validation lives in the usecase so that every violated field is
// reported at once and the password minimum stays configurable.
type SignUpReq struct {
	Nome  string `json:"nome"`
	Email string `json:"email"`
	Senha string `json:"senha"`
}
