package handlers

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes mounts the health check and the versioned API on e
func RegisterRoutes(e *echo.Echo, health *HealthCheckHandler, transactions *TransactionHandler, statistics *StatisticsHandler, categories *CategoryHandler) {
	e.GET("/health", health.HealthCheck)

	api := e.Group("/api/v1")

	tx := api.Group("/transactions")
	tx.GET("", transactions.ListTransactions)
	tx.POST("", transactions.CreateTransaction)
	tx.GET("/:id", transactions.GetTransaction)
	tx.PUT("/:id", transactions.UpdateTransaction)
	tx.DELETE("/:id", transactions.DeleteTransaction)

	api.GET("/categories", categories.ListCategories)

	stats := api.Group("/statistics")
	stats.GET("/summary", statistics.GetSummary)
	stats.GET("/categories", statistics.GetCategoryBreakdown)
	stats.GET("/trend", statistics.GetMonthlyTrend)
}
