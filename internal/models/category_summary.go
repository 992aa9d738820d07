package models

import "github.com/shopspring/decimal"

// CategoryTotal is the summed expense amount of one category
type CategoryTotal struct {
	Category TransactionCategory `json:"category"`
	Total    decimal.Decimal     `json:"total"`
}

// CategorySummary contains aggregated expense data by category
type CategorySummary struct {
	Category         TransactionCategory `json:"category"`
	TransactionCount int64               `json:"transaction_count"`
	TotalAmount      decimal.Decimal     `json:"total_amount"`
	AverageAmount    decimal.Decimal     `json:"average_amount"`
	Percentage       decimal.Decimal     `json:"percentage"`
}
