package dto

import (
	"strings"
	"time"

	"money-tracker/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionRequest is the body of create and replace requests
type TransactionRequest struct {
	Amount   decimal.Decimal `json:"amount" validate:"transaction_amount"`
	Title    string          `json:"title" validate:"not_blank,max=200"`
	Category string          `json:"category" validate:"required,transaction_category"`
	Type     string          `json:"type" validate:"required,transaction_type"`
	Date     *time.Time      `json:"date,omitempty"`
	Notes    string          `json:"notes" validate:"max=1000"`
}

// ToTransaction builds a transaction with the given id.
// A missing date means now.
func (r TransactionRequest) ToTransaction(id uuid.UUID) models.Transaction {
	date := time.Now()
	if r.Date != nil {
		date = *r.Date
	}

	return models.Transaction{
		ID:       id,
		Amount:   r.Amount,
		Title:    strings.TrimSpace(r.Title),
		Category: models.TransactionCategory(r.Category),
		Date:     date,
		Type:     models.TransactionType(r.Type),
		Notes:    r.Notes,
	}
}

// ListTransactionsResponse represents the response for listing transactions
type ListTransactionsResponse struct {
	Transactions []models.Transaction `json:"transactions"`
	Count        int                  `json:"count"`
}

// GroupedTransactionsResponse lists transactions bucketed by calendar day
type GroupedTransactionsResponse struct {
	Days  []models.DayGroup `json:"days"`
	Count int               `json:"count"`
}

// DeleteTransactionResponse reports how many records a delete removed
type DeleteTransactionResponse struct {
	ID      uuid.UUID `json:"id"`
	Removed int       `json:"removed"`
}

// CategoryBreakdownResponse is the expense split across categories
type CategoryBreakdownResponse struct {
	Categories   []models.CategorySummary `json:"categories"`
	TotalExpense decimal.Decimal          `json:"total_expense"`
}

// TrendPoint is one month of the income/expense trend
type TrendPoint struct {
	Label   string          `json:"label"`
	Year    int             `json:"year"`
	Month   int             `json:"month"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Net     decimal.Decimal `json:"net"`
}

// TrendResponse is the monthly trend series, oldest month first
type TrendResponse struct {
	Months []TrendPoint `json:"months"`
}

// NewTrendResponse converts trend buckets into their API shape
func NewTrendResponse(buckets []models.TrendBucket) TrendResponse {
	points := make([]TrendPoint, 0, len(buckets))
	for _, b := range buckets {
		points = append(points, TrendPoint{
			Label:   b.Label,
			Year:    b.Year,
			Month:   int(b.Month),
			Income:  b.Income,
			Expense: b.Expense,
			Net:     b.Net(),
		})
	}
	return TrendResponse{Months: points}
}
