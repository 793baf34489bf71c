// Package entity defines the domain entities for the recipes feature.
package entity

import "time"

// Recipe represents a recipe record.
// The wire format keeps the original Portuguese field names.
type Recipe struct {
	// ID is the unique identifier for the recipe.
	ID uint `gorm:"primaryKey" json:"id"`

	// Titulo is the recipe title, unique across the collection.
	// The unique index is what turns a duplicate title into a conflict,
	// instead of a racy check-then-insert.
	Titulo string `gorm:"uniqueIndex;size:255;not null" json:"titulo"`

	// Ingredientes lists the recipe ingredients as free text.
	Ingredientes string `gorm:"type:text;not null" json:"ingredientes"`

	// Preparo describes how to prepare the recipe.
	Preparo string `gorm:"type:text;not null" json:"preparo"`

	// UserID references the user that created the recipe.
	UserID uint `gorm:"column:id_usuario;index" json:"idUsuario"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// TableName returns the table name for GORM.
func (Recipe) TableName() string {
	return "receitas"
}
