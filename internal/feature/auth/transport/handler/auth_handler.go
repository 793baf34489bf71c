// Package handler provides the HTTP handlers for the auth feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"receitas_backend/internal/api"
	"receitas_backend/internal/feature/auth/transport/http/dto"
	"receitas_backend/internal/feature/auth/usecase"
	"receitas_backend/internal/shared/apperr"
)

// AuthUsecase defines the authentication operations used by the handler.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type AuthUsecase interface {
	// SignUp registers a new user with the given name, email and password.
	SignUp(ctx context.Context, nome, email, senha string) error
	// SignIn authenticates a user and returns an opaque session token on success.
	SignIn(ctx context.Context, email, senha string) (string, error)
}

// AuthHandler handles HTTP requests for authentication operations.
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler creates a new instance of AuthHandler.
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// SignUp handles the user registration endpoint.
// - 422 with every violated field on validation failure
// - 409 on duplicate email
// - 201 on success
func (h *AuthHandler) SignUp(c *gin.Context) {
	var req dto.SignUpReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("sign-up bind failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusUnprocessableEntity, api.ValidationErrorResponse{Errors: []string{"corpo da requisição inválido"}})
		return
	}
	if err := h.auth.SignUp(c.Request.Context(), req.Nome, req.Email, req.Senha); err != nil {
		var vErr *apperr.ValidationError
		switch {
		case errors.As(err, &vErr):
			c.JSON(http.StatusUnprocessableEntity, api.ValidationErrorResponse{Errors: vErr.Messages})
		case errors.Is(err, usecase.ErrEmailAlreadyExists):
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: "email já cadastrado"})
		default:
			slog.Error("sign-up failed", "error", err, "remote_addr", c.ClientIP())
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		}
		return
	}
	slog.Info("user sign-up successful", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, api.MessageResponse{Message: "ok"})
}

// SignIn handles the user login endpoint.
// The success body is the bare session token as plain text.
func (h *AuthHandler) SignIn(c *gin.Context) {
	var req dto.SignInReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("sign-in bind failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "email ou senha inválidos"})
		return
	}
	token, err := h.auth.SignIn(c.Request.Context(), req.Email, req.Senha)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			// Do not reveal whether the email exists.
			slog.Warn("sign-in rejected", "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "email ou senha inválidos"})
			return
		}
		slog.Error("sign-in failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		return
	}
	slog.Info("user sign-in successful", "email", req.Email, "remote_addr", c.ClientIP())
	c.String(http.StatusOK, token)
}
