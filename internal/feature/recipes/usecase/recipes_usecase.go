package usecase

import (
	"context"
	"strings"

	"receitas_backend/internal/feature/recipes/domain/entity"
	"receitas_backend/internal/shared/apperr"
)

// TokenResolver maps an opaque bearer token to the user it authenticates.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (auth).
type TokenResolver interface {
	// Resolve returns the user id for the token, or auth's session-not-found
	// error when the token is absent or unknown.
	Resolve(ctx context.Context, token string) (uint, error)
}

// recipesUsecase implements the recipe business logic, including the
// access-controlled mutations that require a resolved session.
type recipesUsecase struct {
	recipes RecipeRepository
	tokens  TokenResolver
}

// NewRecipesUsecase creates a new instance of recipesUsecase.
func NewRecipesUsecase(recipes RecipeRepository, tokens TokenResolver) *recipesUsecase {
	return &recipesUsecase{recipes: recipes, tokens: tokens}
}

// List returns every recipe, optionally narrowed to those whose ingredients
// contain ingrediente, case-insensitively. An empty result is not an error.
func (u *recipesUsecase) List(ctx context.Context, ingrediente string) ([]entity.Recipe, error) {
	return u.recipes.FindAll(ctx, ingrediente)
}

// Get retrieves a single recipe by id.
func (u *recipesUsecase) Get(ctx context.Context, id uint) (*entity.Recipe, error) {
	return u.recipes.FindByID(ctx, id)
}

// Create inserts a recipe owned by the user the token resolves to.
// Order of checks: request shape first (cheap, no side effect), then
// authentication, then the uniqueness conflict at insert time.
func (u *recipesUsecase) Create(ctx context.Context, token, titulo, ingredientes, preparo string) (uint, error) {
	var msgs []string
	if strings.TrimSpace(titulo) == "" {
		msgs = append(msgs, "titulo é obrigatório")
	}
	if strings.TrimSpace(ingredientes) == "" {
		msgs = append(msgs, "ingredientes é obrigatório")
	}
	if strings.TrimSpace(preparo) == "" {
		msgs = append(msgs, "preparo é obrigatório")
	}
	if len(msgs) > 0 {
		return 0, &apperr.ValidationError{Messages: msgs}
	}

	userID, err := u.tokens.Resolve(ctx, token)
	if err != nil {
		return 0, err
	}

	recipe := &entity.Recipe{
		Titulo:       titulo,
		Ingredientes: ingredientes,
		Preparo:      preparo,
		UserID:       userID,
	}
	if err := u.recipes.Create(ctx, recipe); err != nil {
		return 0, err
	}
	return recipe.ID, nil
}

// Update applies a partial update to a recipe after verifying that the token
// resolves to the recipe's owner. A non-owner gets ErrNotOwner and the record
// stays unchanged.
func (u *recipesUsecase) Update(ctx context.Context, token string, id uint, fields UpdateFields) error {
	userID, err := u.tokens.Resolve(ctx, token)
	if err != nil {
		return err
	}
	recipe, err := u.recipes.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if recipe.UserID != userID {
		return ErrNotOwner
	}
	if fields.Empty() {
		return nil
	}
	return u.recipes.UpdateByID(ctx, id, fields)
}

// Delete removes a recipe by id. Per the published API this operation carries
// no ownership check; the bypass is grouped with the other unauthenticated
// mutations in the router.
func (u *recipesUsecase) Delete(ctx context.Context, id uint) error {
	return u.recipes.DeleteByID(ctx, id)
}

// UpdateMany applies a partial update to every recipe whose ingredients
// contain filtro, case-insensitively. Zero matches is reported as not found.
func (u *recipesUsecase) UpdateMany(ctx context.Context, filtro string, fields UpdateFields) (int64, error) {
	count, err := u.recipes.UpdateByIngredientes(ctx, filtro, fields)
	if err != nil {
		return 0, err
	}
	if count == 0 {
		return 0, ErrRecipeNotFound
	}
	return count, nil
}

// DeleteMany removes every recipe whose ingredients exactly equal filtro.
// Zero matches is reported as not found.
func (u *recipesUsecase) DeleteMany(ctx context.Context, filtro string) (int64, error) {
	count, err := u.recipes.DeleteByIngredientes(ctx, filtro)
	if err != nil {
		return 0, err
	}
	if count == 0 {
		return 0, ErrRecipeNotFound
	}
	return count, nil
}
