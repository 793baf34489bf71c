// Package usecase implements the business logic for the recipes feature.
package usecase

import "errors"

var (
	// ErrRecipeNotFound is returned when no recipe matches the given id or filter.
	ErrRecipeNotFound = errors.New("recipe not found")

	// ErrTitleAlreadyExists is returned when attempting to create a recipe with a title that already exists.
	ErrTitleAlreadyExists = errors.New("title already exists")

	// ErrNotOwner is returned when a user tries to modify a recipe they do not own.
	ErrNotOwner = errors.New("recipe belongs to another user")
)
