// Package handler provides the HTTP handlers for the recipes feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"receitas_backend/internal/api"
	authusecase "receitas_backend/internal/feature/auth/usecase"
	"receitas_backend/internal/feature/recipes/domain/entity"
	"receitas_backend/internal/feature/recipes/transport/http/dto"
	"receitas_backend/internal/feature/recipes/usecase"
	"receitas_backend/internal/shared/apperr"
)

// RecipesUsecase defines the recipe operations used by the handler.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type RecipesUsecase interface {
	List(ctx context.Context, ingrediente string) ([]entity.Recipe, error)
	Get(ctx context.Context, id uint) (*entity.Recipe, error)
	Create(ctx context.Context, token, titulo, ingredientes, preparo string) (uint, error)
	Update(ctx context.Context, token string, id uint, fields usecase.UpdateFields) error
	Delete(ctx context.Context, id uint) error
	UpdateMany(ctx context.Context, filtro string, fields usecase.UpdateFields) (int64, error)
	DeleteMany(ctx context.Context, filtro string) (int64, error)
}

// RecipeHandler handles HTTP requests for recipe operations.
type RecipeHandler struct {
	recipes RecipesUsecase
}

// NewRecipeHandler creates a new instance of RecipeHandler.
func NewRecipeHandler(recipes RecipesUsecase) *RecipeHandler {
	return &RecipeHandler{recipes: recipes}
}

// bearerToken extracts the token from the Authorization header, stripping a
// literal "Bearer " prefix when present. A missing or malformed header yields
// an empty token, which resolves to unauthorized downstream.
func bearerToken(c *gin.Context) string {
	auth := c.GetHeader("Authorization")
	return strings.TrimPrefix(auth, "Bearer ")
}

// List handles GET /receitas. The optional ?ingrediente= query narrows the
// result to recipes whose ingredients contain it, case-insensitively.
func (h *RecipeHandler) List(c *gin.Context) {
	recipes, err := h.recipes.List(c.Request.Context(), c.Query("ingrediente"))
	if err != nil {
		slog.Error("list recipes failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		return
	}
	if recipes == nil {
		recipes = []entity.Recipe{}
	}
	c.JSON(http.StatusOK, recipes)
}

// Get handles GET /receitas/:id.
// A malformed id is a 404, never a 500.
func (h *RecipeHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	recipe, err := h.recipes.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, recipe)
}

// Create handles POST /receitas. Requires a bearer token; the resolved user
// becomes the recipe owner.
func (h *RecipeHandler) Create(c *gin.Context) {
	var req dto.CreateRecipeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("create recipe bind failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusUnprocessableEntity, api.ValidationErrorResponse{Errors: []string{"corpo da requisição inválido"}})
		return
	}
	id, err := h.recipes.Create(c.Request.Context(), bearerToken(c), req.Titulo, req.Ingredientes, req.Preparo)
	if err != nil {
		h.fail(c, err)
		return
	}
	slog.Info("recipe created", "id", id, "titulo", req.Titulo)
	c.JSON(http.StatusCreated, api.CreatedResponse{ID: id})
}

// Update handles PUT /receitas/:id. Requires a bearer token resolving to the
// recipe owner.
func (h *RecipeHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.UpdateRecipeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("update recipe bind failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusUnprocessableEntity, api.ValidationErrorResponse{Errors: []string{"corpo da requisição inválido"}})
		return
	}
	fields := usecase.UpdateFields{Titulo: req.Titulo, Ingredientes: req.Ingredientes, Preparo: req.Preparo}
	if err := h.recipes.Update(c.Request.Context(), bearerToken(c), id, fields); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "ok"})
}

// Delete handles DELETE /receitas/:id. No ownership check, per the published API.
func (h *RecipeHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.recipes.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "ok"})
}

// UpdateMany handles PUT /receitas/muitas/:filtro, applying the partial update
// to every recipe whose ingredients contain the filter, case-insensitively.
func (h *RecipeHandler) UpdateMany(c *gin.Context) {
	var req dto.UpdateRecipeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("bulk update bind failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusUnprocessableEntity, api.ValidationErrorResponse{Errors: []string{"corpo da requisição inválido"}})
		return
	}
	fields := usecase.UpdateFields{Titulo: req.Titulo, Ingredientes: req.Ingredientes, Preparo: req.Preparo}
	count, err := h.recipes.UpdateMany(c.Request.Context(), c.Param("filtro"), fields)
	if err != nil {
		h.fail(c, err)
		return
	}
	slog.Info("bulk recipe update", "filtro", c.Param("filtro"), "count", count)
	c.JSON(http.StatusOK, api.CountResponse{Count: count})
}

// DeleteMany handles DELETE /receitas/muitas/:filtro, removing every recipe
// whose ingredients exactly equal the filter.
func (h *RecipeHandler) DeleteMany(c *gin.Context) {
	count, err := h.recipes.DeleteMany(c.Request.Context(), c.Param("filtro"))
	if err != nil {
		h.fail(c, err)
		return
	}
	slog.Info("bulk recipe delete", "filtro", c.Param("filtro"), "count", count)
	c.JSON(http.StatusOK, api.CountResponse{Count: count})
}

// parseID reads the :id path segment. A malformed id degrades to 404.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "receita não encontrada"})
		return 0, false
	}
	return uint(id), true
}

// fail maps domain failures to their status codes; anything else is a 500
// carrying the raw store error message.
func (h *RecipeHandler) fail(c *gin.Context, err error) {
	var vErr *apperr.ValidationError
	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusUnprocessableEntity, api.ValidationErrorResponse{Errors: vErr.Messages})
	case errors.Is(err, authusecase.ErrSessionNotFound), errors.Is(err, usecase.ErrNotOwner):
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "não autorizado"})
	case errors.Is(err, usecase.ErrRecipeNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "receita não encontrada"})
	case errors.Is(err, usecase.ErrTitleAlreadyExists):
		c.JSON(http.StatusConflict, api.ErrorResponse{Error: "titulo já existe"})
	default:
		slog.Error("recipe operation failed", "error", err, "path", c.FullPath())
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
	}
}
