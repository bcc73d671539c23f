package v1

import (
	"github.com/google/uuid"
	"github.com/pennyflow/backend/internal/models"
)

// CategoryEditable represents all user configurable parameters of a
// category.
type CategoryEditable struct {
	Name string `json:"name" binding:"required" example:"Groceries"`
}

// Category is a named group of expenses as it is returned by the API.
type Category struct {
	ID        uuid.UUID `json:"id" example:"65392deb-5e92-4268-b114-297faad6cdce"`
	Name      string    `json:"name" example:"Groceries"`
	IsDefault bool      `json:"is_default" example:"false"` // True for the fallback category, which cannot be deleted
}

func newCategory(category models.Category) Category {
	return Category{
		ID:        category.ID,
		Name:      category.Name,
		IsDefault: category.IsDefault,
	}
}

type CategoryResponse struct {
	Data  Category `json:"data"`  // The category data
	Error *string  `json:"error"` // The error, if any occurred
}

type CategoryListResponse struct {
	Data  []Category `json:"data"`  // List of categories
	Error *string    `json:"error"` // The error, if any occurred
}

// SuggestionRequest asks for a category suggestion for a transaction
// description.
type SuggestionRequest struct {
	Description string `json:"description" binding:"required" example:"REWE Supermarkt 221"`
}

// Suggestion is a suggested category with a confidence level.
type Suggestion struct {
	SuggestedCategory string `json:"suggested_category" example:"Groceries"`            // Empty when no keyword matched
	Confidence        string `json:"confidence,omitempty" example:"high" enums:"high,medium"` // Empty when no keyword matched
}

type SuggestionResponse struct {
	Data  Suggestion `json:"data"`  // The suggestion data
	Error *string    `json:"error"` // The error, if any occurred
}
