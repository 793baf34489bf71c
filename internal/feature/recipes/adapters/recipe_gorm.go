// Package adapters provides repository implementations for the recipes feature.
package adapters

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"receitas_backend/internal/feature/recipes/domain/entity"
	"receitas_backend/internal/feature/recipes/usecase"
)

// pgUniqueViolation is the PostgreSQL error code for a unique constraint violation.
const pgUniqueViolation = "23505"

// recipeGorm is a GORM implementation of the RecipeRepository interface.
type recipeGorm struct {
	db *gorm.DB
}

// Compile-time check to ensure recipeGorm implements RecipeRepository.
var _ usecase.RecipeRepository = (*recipeGorm)(nil)

// NewRecipeGorm creates a new instance of recipeGorm with the given gorm.DB connection.
func NewRecipeGorm(db *gorm.DB) *recipeGorm {
	return &recipeGorm{db: db}
}

// FindAll returns every recipe, optionally narrowed by a case-insensitive
// ingredient filter. Order is storage-natural.
func (r *recipeGorm) FindAll(ctx context.Context, ingrediente string) ([]entity.Recipe, error) {
	q := r.db.WithContext(ctx)
	if ingrediente != "" {
		q = q.Where("LOWER(ingredientes) LIKE ?", containsPattern(ingrediente))
	}
	var recipes []entity.Recipe
	if err := q.Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// FindByID retrieves a recipe by id.
// It returns usecase.ErrRecipeNotFound if the recipe does not exist.
func (r *recipeGorm) FindByID(ctx context.Context, id uint) (*entity.Recipe, error) {
	var recipe entity.Recipe
	if err := r.db.WithContext(ctx).First(&recipe, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrRecipeNotFound
		}
		return nil, err
	}
	return &recipe, nil
}

// Create inserts a recipe into the database.
// The unique index on titulo turns a duplicate title into
// usecase.ErrTitleAlreadyExists instead of relying on a pre-insert lookup.
func (r *recipeGorm) Create(ctx context.Context, recipe *entity.Recipe) error {
	if err := r.db.WithContext(ctx).Create(recipe).Error; err != nil {
		if isDuplicateKey(err) {
			return usecase.ErrTitleAlreadyExists
		}
		return err
	}
	return nil
}

// UpdateByID applies only the present fields to the recipe with the given id,
// leaving the others untouched.
func (r *recipeGorm) UpdateByID(ctx context.Context, id uint, fields usecase.UpdateFields) error {
	updates := updatesMap(fields)
	if len(updates) == 0 {
		return nil
	}
	result := r.db.WithContext(ctx).
		Model(&entity.Recipe{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		if isDuplicateKey(result.Error) {
			return usecase.ErrTitleAlreadyExists
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrRecipeNotFound
	}
	return nil
}

// DeleteByID removes the recipe with the given id.
// It returns usecase.ErrRecipeNotFound if no row matched.
func (r *recipeGorm) DeleteByID(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&entity.Recipe{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrRecipeNotFound
	}
	return nil
}

// UpdateByIngredientes applies the present fields to every recipe whose
// ingredients contain filtro, case-insensitively, and returns the match count.
// With no fields present it only counts the matches.
func (r *recipeGorm) UpdateByIngredientes(ctx context.Context, filtro string, fields usecase.UpdateFields) (int64, error) {
	where := "LOWER(ingredientes) LIKE ?"
	pattern := containsPattern(filtro)

	updates := updatesMap(fields)
	if len(updates) == 0 {
		var count int64
		err := r.db.WithContext(ctx).
			Model(&entity.Recipe{}).
			Where(where, pattern).
			Count(&count).Error
		return count, err
	}

	result := r.db.WithContext(ctx).
		Model(&entity.Recipe{}).
		Where(where, pattern).
		Updates(updates)
	if result.Error != nil && isDuplicateKey(result.Error) {
		return 0, usecase.ErrTitleAlreadyExists
	}
	return result.RowsAffected, result.Error
}

// DeleteByIngredientes removes every recipe whose ingredients exactly equal
// filtro and returns the number of deleted rows.
func (r *recipeGorm) DeleteByIngredientes(ctx context.Context, filtro string) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("ingredientes = ?", filtro).
		Delete(&entity.Recipe{})
	return result.RowsAffected, result.Error
}

// containsPattern builds the LIKE pattern for a case-insensitive contains match.
func containsPattern(s string) string {
	return "%" + strings.ToLower(s) + "%"
}

// updatesMap converts the present fields into a column map for GORM Updates.
func updatesMap(fields usecase.UpdateFields) map[string]any {
	updates := make(map[string]any)
	if fields.Titulo != nil {
		updates["titulo"] = *fields.Titulo
	}
	if fields.Ingredientes != nil {
		updates["ingredientes"] = *fields.Ingredientes
	}
	if fields.Preparo != nil {
		updates["preparo"] = *fields.Preparo
	}
	return updates
}

// isDuplicateKey reports whether err is a unique-constraint violation.
// GORM translates most driver errors to gorm.ErrDuplicatedKey; the pgconn
// check covers raw pgx errors that bypass the translator.
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
