// Package router builds the HTTP route table.
package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authhandler "receitas_backend/internal/feature/auth/transport/handler"
	recipehandler "receitas_backend/internal/feature/recipes/transport/handler"
	"receitas_backend/internal/platform/http/handler"
)

// NewRouter wires all endpoints.
//
// Only recipe creation and single-recipe update carry a bearer token; single
// delete and the bulk operations are deliberately left open, matching the
// published API. That decision is made once, here, not per handler.
func NewRouter(authHandler *authhandler.AuthHandler, recipes *recipehandler.RecipeHandler) *gin.Engine {
	r := gin.Default()

	// The API is consumed from browsers, so allow cross-origin calls.
	r.Use(cors.Default())

	r.GET("/healthz", handler.Health)

	// Authentication
	r.POST("/sign-up", authHandler.SignUp)
	r.POST("/sign-in", authHandler.SignIn)

	// Recipes: open reads
	r.GET("/receitas", recipes.List)
	r.GET("/receitas/:id", recipes.Get)

	// Recipes: token-gated mutations
	r.POST("/receitas", recipes.Create)
	r.PUT("/receitas/:id", recipes.Update)

	// Recipes: unauthenticated mutations (kept open per the published API)
	r.DELETE("/receitas/:id", recipes.Delete)
	r.PUT("/receitas/muitas/:filtro", recipes.UpdateMany)
	r.DELETE("/receitas/muitas/:filtro", recipes.DeleteMany)

	return r
}
