// Package dto defines data transfer objects for the recipes feature's HTTP transport layer.
package dto

// CreateRecipeReq represents the request body for POST /receitas.
// Presence validation lives in the usecase so every missing field is reported.
type CreateRecipeReq struct {
	Titulo       string `json:"titulo"`
	Ingredientes string `json:"ingredientes"`
	Preparo      string `json:"preparo"`
}

// UpdateRecipeReq represents the partial-update body for PUT /receitas/:id and
// PUT /receitas/muitas/:filtro. Nil pointers mean "leave untouched".
type UpdateRecipeReq struct {
	Titulo       *string `json:"titulo"`
	Ingredientes *string `json:"ingredientes"`
	Preparo      *string `json:"preparo"`
}
