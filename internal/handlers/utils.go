package handlers

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"money-tracker/internal/models"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// dateLayout is the layout of date query parameters
const dateLayout = "2006-01-02"

func getIntParam(c echo.Context, name string, defaultValue int) (int, error) {
	param := c.QueryParam(name)
	if param == "" {
		return defaultValue, nil
	}

	value, err := strconv.Atoi(param)
	if err != nil {
		return 0, fmt.Errorf("%s must be a whole number", name)
	}
	return value, nil
}

// getDateParam parses a YYYY-MM-DD query parameter as noon of that day in loc.
// A missing parameter means now.
func getDateParam(c echo.Context, name string, loc *time.Location) (time.Time, error) {
	param := c.QueryParam(name)
	if param == "" {
		return time.Now().In(loc), nil
	}

	day, err := time.ParseInLocation(dateLayout, param, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s must use the YYYY-MM-DD format", name)
	}
	return day.Add(12 * time.Hour), nil
}

func getTransactionID(c echo.Context) (uuid.UUID, error) {
	return uuid.Parse(c.Param("id"))
}

// parseTransactionFilters reads the type, category and q query parameters
func parseTransactionFilters(c echo.Context) (models.TransactionFilters, error) {
	filters := models.TransactionFilters{
		Type:     models.TransactionType(c.QueryParam("type")),
		Category: models.TransactionCategory(c.QueryParam("category")),
		Search:   strings.TrimSpace(c.QueryParam("q")),
	}

	if filters.Type != "" && !models.IsValidTransactionType(filters.Type) {
		return filters, fmt.Errorf("type must be one of %v", models.AllTransactionTypes())
	}
	if filters.Category != "" && !models.IsValidCategory(filters.Category) {
		return filters, fmt.Errorf("category must be one of %v", models.AllCategories())
	}

	return filters, nil
}
