package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"money-tracker/internal/dto"
	"money-tracker/internal/errors"
	"money-tracker/internal/models"
	"money-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

// CategoryHandler serves the category picker
type CategoryHandler struct {
	suggester services.CategorySuggesterInterface
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(suggester services.CategorySuggesterInterface) *CategoryHandler {
	return &CategoryHandler{suggester: suggester}
}

// ListCategories returns the categories allowed for a type and, when a title
// is given, the suggested one
// @Param type query string false "Income or Expense"
// @Param title query string false "Transaction title to suggest a category for"
// @Router /categories [get]
func (h *CategoryHandler) ListCategories(c echo.Context) error {
	transactionType := models.TransactionType(c.QueryParam("type"))
	title := strings.TrimSpace(c.QueryParam("title"))

	if transactionType == "" {
		if title != "" {
			return SendError(c, errors.ValidationRequiredField, errors.WithDetails("type is required to suggest a category"))
		}
		return c.JSON(http.StatusOK, dto.CategoriesResponse{Categories: models.AllCategories()})
	}

	if !models.IsValidTransactionType(transactionType) {
		return SendError(c, errors.ValidationGeneral,
			errors.WithDetails(fmt.Sprintf("type must be one of %v", models.AllTransactionTypes())))
	}

	response := dto.CategoriesResponse{
		Type:       transactionType,
		Categories: models.CategoriesForType(transactionType),
	}
	if title != "" {
		suggestion := h.suggester.Suggest(title, transactionType)
		response.Suggestion = &suggestion
	}

	return c.JSON(http.StatusOK, response)
}
