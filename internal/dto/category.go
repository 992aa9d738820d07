package dto

import "money-tracker/internal/models"

// CategoriesResponse lists the categories offered for a transaction type
type CategoriesResponse struct {
	Type       models.TransactionType       `json:"type,omitempty"`
	Categories []models.TransactionCategory `json:"categories"`
	Suggestion *models.CategorySuggestion   `json:"suggestion,omitempty"`
}
