package dto

// SignInReq represents the request body for the /sign-in endpoint.
type SignInReq struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}
