package usecase

import (
	"context"

	"receitas_backend/internal/feature/recipes/domain/entity"
)

// UpdateFields carries the optional fields of a partial recipe update.
// Nil pointers mean "leave untouched".
type UpdateFields struct {
	Titulo       *string
	Ingredientes *string
	Preparo      *string
}

// Empty reports whether no field is set.
func (f UpdateFields) Empty() bool {
	return f.Titulo == nil && f.Ingredientes == nil && f.Preparo == nil
}

// RecipeRepository abstracts the persistence layer for recipe entities.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type RecipeRepository interface {
	// FindAll returns every recipe. A non-empty ingrediente narrows the result
	// to recipes whose ingredients contain it, case-insensitively.
	FindAll(ctx context.Context, ingrediente string) ([]entity.Recipe, error)

	// FindByID retrieves a recipe by id.
	// It returns ErrRecipeNotFound if the recipe does not exist.
	FindByID(ctx context.Context, id uint) (*entity.Recipe, error)

	// Create persists a new recipe.
	// It returns ErrTitleAlreadyExists if the title is already taken.
	Create(ctx context.Context, recipe *entity.Recipe) error

	// UpdateByID applies the present fields to the recipe with the given id.
	UpdateByID(ctx context.Context, id uint, fields UpdateFields) error

	// DeleteByID removes the recipe with the given id.
	// It returns ErrRecipeNotFound if no row matched.
	DeleteByID(ctx context.Context, id uint) error

	// UpdateByIngredientes applies the present fields to every recipe whose
	// ingredients contain the filter, case-insensitively. It returns the number
	// of matched rows.
	UpdateByIngredientes(ctx context.Context, filtro string, fields UpdateFields) (int64, error)

	// DeleteByIngredientes removes every recipe whose ingredients exactly equal
	// the filter. It returns the number of deleted rows.
	DeleteByIngredientes(ctx context.Context, filtro string) (int64, error)
}
