package services

import (
	"time"

	"money-tracker/internal/models"

	"github.com/google/uuid"
)

// TransactionStoreInterface defines the authoritative transaction collection
type TransactionStoreInterface interface {
	// Initialize loads the collection from persistence; failures leave it empty
	Initialize()

	// Add appends a transaction and persists the collection
	Add(transaction models.Transaction)

	// Update replaces the first transaction with the same id in place.
	// It returns false, without persisting, when the id is absent.
	Update(transaction models.Transaction) bool

	// Delete removes every transaction with the id, persists, and returns the removed count
	Delete(id uuid.UUID) int

	// All returns a copy of the collection in insertion order
	All() []models.Transaction

	// Find returns the first transaction with the id
	Find(id uuid.UUID) (models.Transaction, bool)

	Close() error
}

// StatisticsServiceInterface composes collection snapshots with the query and aggregation functions
type StatisticsServiceInterface interface {
	GetSummary(referenceDate time.Time) *models.StatisticsSummary
	ListTransactions(filters models.TransactionFilters) []models.Transaction
	GroupTransactionsByDay(filters models.TransactionFilters) []models.DayGroup
	GetCategoryBreakdown() []models.CategorySummary
	GetMonthlyTrend(referenceDate time.Time, months int) []models.TrendBucket
}

// MetricsRecorderInterface records operational metrics
type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

// SampleDataGeneratorInterface produces realistic transactions for demo data
type SampleDataGeneratorInterface interface {
	GenerateMonths(referenceDate time.Time, months int) []models.Transaction
	GenerateIncome(month time.Time) []models.Transaction
	GenerateExpenses(month time.Time) []models.Transaction
}

// CategorySuggesterInterface proposes a category for a transaction title
type CategorySuggesterInterface interface {
	Suggest(title string, transactionType models.TransactionType) models.CategorySuggestion
}
