package handlers

import (
	"net/http"
	"time"

	"money-tracker/internal/dto"
	"money-tracker/internal/errors"
	"money-tracker/internal/models"
	"money-tracker/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

const maxTrendMonths = 120

// StatisticsHandler serves the dashboard and statistics views
type StatisticsHandler struct {
	statistics  services.StatisticsServiceInterface
	location    *time.Location
	trendMonths int
}

// NewStatisticsHandler creates a new statistics handler.
// Date parameters are read in loc; trendMonths is the default trend length.
func NewStatisticsHandler(statistics services.StatisticsServiceInterface, loc *time.Location, trendMonths int) *StatisticsHandler {
	if loc == nil {
		loc = time.Local
	}
	return &StatisticsHandler{
		statistics:  statistics,
		location:    loc,
		trendMonths: trendMonths,
	}
}

// GetSummary returns balance, monthly totals, breakdown, trend and recent transactions
// @Param date query string false "Reference date (YYYY-MM-DD), defaults to today"
// @Router /statistics/summary [get]
func (h *StatisticsHandler) GetSummary(c echo.Context) error {
	ref, err := getDateParam(c, "date", h.location)
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
	}

	return c.JSON(http.StatusOK, h.statistics.GetSummary(ref))
}

// GetCategoryBreakdown returns the expense split across categories, largest first
// @Router /statistics/categories [get]
func (h *StatisticsHandler) GetCategoryBreakdown(c echo.Context) error {
	categories := h.statistics.GetCategoryBreakdown()

	total := decimal.Zero
	for _, category := range categories {
		total = total.Add(category.TotalAmount)
	}

	if categories == nil {
		categories = []models.CategorySummary{}
	}

	return c.JSON(http.StatusOK, dto.CategoryBreakdownResponse{
		Categories:   categories,
		TotalExpense: total,
	})
}

// GetMonthlyTrend returns income and expense per month ending at the reference month
// @Param date query string false "Reference date (YYYY-MM-DD), defaults to today"
// @Param months query int false "Number of months"
// @Router /statistics/trend [get]
func (h *StatisticsHandler) GetMonthlyTrend(c echo.Context) error {
	ref, err := getDateParam(c, "date", h.location)
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
	}

	months, err := getIntParam(c, "months", h.trendMonths)
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails(err.Error()))
	}
	if months < 1 || months > maxTrendMonths {
		return SendError(c, errors.ValidationOutOfRange, errors.WithDetails("months must be between 1 and 120"))
	}

	return c.JSON(http.StatusOK, dto.NewTrendResponse(h.statistics.GetMonthlyTrend(ref, months)))
}
