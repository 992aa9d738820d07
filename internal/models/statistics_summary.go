package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// StatisticsSummary is the dashboard view over the whole collection
type StatisticsSummary struct {
	ReferenceDate     time.Time         `json:"reference_date"`
	TransactionCount  int               `json:"transaction_count"`
	TotalBalance      decimal.Decimal   `json:"total_balance"`
	MonthlyIncome     decimal.Decimal   `json:"monthly_income"`
	MonthlyExpense    decimal.Decimal   `json:"monthly_expense"`
	MonthlyNet        decimal.Decimal   `json:"monthly_net"`
	CategoryBreakdown []CategorySummary `json:"category_breakdown"`
	MonthlyTrend      []TrendBucket     `json:"monthly_trend"`
	Recent            []Transaction     `json:"recent_transactions"`
}
