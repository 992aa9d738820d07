package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TrendBucket is one calendar month of a multi-month income/expense series
type TrendBucket struct {
	Label   string          `json:"label"`
	Year    int             `json:"year"`
	Month   time.Month      `json:"month"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// Net returns income minus expense for the month
func (b TrendBucket) Net() decimal.Decimal {
	return b.Income.Sub(b.Expense)
}
