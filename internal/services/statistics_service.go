package services

import (
	"time"

	"money-tracker/internal/models"
)

const (
	defaultTrendMonths = 6
	defaultRecentLimit = 5
)

// StatisticsConfig configures the statistics service
type StatisticsConfig struct {
	// Location decides calendar days and months; nil means time.Local
	Location    *time.Location
	TrendMonths int
	RecentLimit int
	Metrics     MetricsRecorderInterface
}

type statisticsService struct {
	store       TransactionStoreInterface
	location    *time.Location
	trendMonths int
	recentLimit int
	metrics     MetricsRecorderInterface
}

// NewStatisticsService creates a statistics service reading snapshots from the store
func NewStatisticsService(store TransactionStoreInterface, cfg StatisticsConfig) StatisticsServiceInterface {
	s := &statisticsService{
		store:       store,
		location:    cfg.Location,
		trendMonths: cfg.TrendMonths,
		recentLimit: cfg.RecentLimit,
		metrics:     cfg.Metrics,
	}
	if s.location == nil {
		s.location = time.Local
	}
	if s.trendMonths <= 0 {
		s.trendMonths = defaultTrendMonths
	}
	if s.recentLimit < 0 {
		s.recentLimit = defaultRecentLimit
	}
	if s.metrics == nil {
		s.metrics = noopMetrics{}
	}
	return s
}

// GetSummary builds the dashboard for the month of referenceDate
func (s *statisticsService) GetSummary(referenceDate time.Time) *models.StatisticsSummary {
	defer s.observe("summary", time.Now())

	ref := referenceDate.In(s.location)
	transactions := s.store.All()

	return &models.StatisticsSummary{
		ReferenceDate:     ref,
		TransactionCount:  len(transactions),
		TotalBalance:      TotalBalance(transactions),
		MonthlyIncome:     MonthlyIncome(transactions, ref),
		MonthlyExpense:    MonthlyExpense(transactions, ref),
		MonthlyNet:        MonthlyNet(transactions, ref),
		CategoryBreakdown: CategoryBreakdown(transactions),
		MonthlyTrend:      MonthlyTrend(transactions, ref, s.trendMonths),
		Recent:            RecentTransactions(transactions, s.recentLimit),
	}
}

// ListTransactions returns the filtered collection newest first
func (s *statisticsService) ListTransactions(filters models.TransactionFilters) []models.Transaction {
	defer s.observe("list", time.Now())

	return SortByDateDescending(ApplyFilters(s.store.All(), filters))
}

// GroupTransactionsByDay returns the filtered collection bucketed by day, newest day first
func (s *statisticsService) GroupTransactionsByDay(filters models.TransactionFilters) []models.DayGroup {
	defer s.observe("group_by_day", time.Now())

	return GroupByDay(ApplyFilters(s.store.All(), filters), s.location)
}

func (s *statisticsService) GetCategoryBreakdown() []models.CategorySummary {
	defer s.observe("categories", time.Now())

	return CategoryBreakdown(s.store.All())
}

// GetMonthlyTrend uses the configured month count when months is not positive
func (s *statisticsService) GetMonthlyTrend(referenceDate time.Time, months int) []models.TrendBucket {
	defer s.observe("trend", time.Now())

	if months <= 0 {
		months = s.trendMonths
	}
	return MonthlyTrend(s.store.All(), referenceDate.In(s.location), months)
}

func (s *statisticsService) observe(view string, start time.Time) {
	s.metrics.RecordProcessingTime(MetricStatisticsRequest+"."+view, time.Since(start))
}
