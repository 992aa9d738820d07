package services

import (
	"cmp"
	"slices"
	"time"

	"money-tracker/internal/models"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// TotalBalance sums income as positive and expense as negative
func TotalBalance(transactions []models.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, t := range transactions {
		total = total.Add(t.SignedAmount())
	}
	return total
}

// TotalIncome sums every income amount
func TotalIncome(transactions []models.Transaction) decimal.Decimal {
	return sumOfType(transactions, models.TransactionTypeIncome)
}

// TotalExpense sums every expense amount
func TotalExpense(transactions []models.Transaction) decimal.Decimal {
	return sumOfType(transactions, models.TransactionTypeExpense)
}

// MonthlyIncome sums income in the calendar month of referenceDate
func MonthlyIncome(transactions []models.Transaction, referenceDate time.Time) decimal.Decimal {
	return sumOfType(TransactionsForMonth(transactions, referenceDate), models.TransactionTypeIncome)
}

// MonthlyExpense sums expense in the calendar month of referenceDate
func MonthlyExpense(transactions []models.Transaction, referenceDate time.Time) decimal.Decimal {
	return sumOfType(TransactionsForMonth(transactions, referenceDate), models.TransactionTypeExpense)
}

// MonthlyNet is income minus expense in the calendar month of referenceDate
func MonthlyNet(transactions []models.Transaction, referenceDate time.Time) decimal.Decimal {
	month := TransactionsForMonth(transactions, referenceDate)
	return sumOfType(month, models.TransactionTypeIncome).Sub(sumOfType(month, models.TransactionTypeExpense))
}

// CategoryExpenses totals expenses per category, largest first.
// Equal totals follow category declaration order; categories without expenses are omitted.
func CategoryExpenses(transactions []models.Transaction) []models.CategoryTotal {
	breakdown := CategoryBreakdown(transactions)

	totals := make([]models.CategoryTotal, len(breakdown))
	for i, summary := range breakdown {
		totals[i] = models.CategoryTotal{
			Category: summary.Category,
			Total:    summary.TotalAmount,
		}
	}
	return totals
}

// CategoryBreakdown is CategoryExpenses with count, average and share of all expenses
func CategoryBreakdown(transactions []models.Transaction) []models.CategorySummary {
	byCategory := make(map[models.TransactionCategory]*models.CategorySummary)
	grandTotal := decimal.Zero

	for _, t := range transactions {
		if !t.IsExpense() {
			continue
		}

		summary, ok := byCategory[t.Category]
		if !ok {
			summary = &models.CategorySummary{
				Category:    t.Category,
				TotalAmount: decimal.Zero,
			}
			byCategory[t.Category] = summary
		}
		summary.TransactionCount++
		summary.TotalAmount = summary.TotalAmount.Add(t.Amount)
		grandTotal = grandTotal.Add(t.Amount)
	}

	result := make([]models.CategorySummary, 0, len(byCategory))
	for _, summary := range byCategory {
		summary.AverageAmount = summary.TotalAmount.Div(decimal.NewFromInt(summary.TransactionCount)).Round(2)
		summary.Percentage = decimal.Zero
		if grandTotal.IsPositive() {
			summary.Percentage = summary.TotalAmount.Div(grandTotal).Mul(hundred).Round(2)
		}
		result = append(result, *summary)
	}

	slices.SortFunc(result, func(a, b models.CategorySummary) int {
		if c := b.TotalAmount.Cmp(a.TotalAmount); c != 0 {
			return c
		}
		return compareCategories(a.Category, b.Category)
	})
	return result
}

// MonthlyTrend returns one bucket per calendar month, oldest first, ending at referenceDate's month.
// Months without transactions are present with zero totals.
func MonthlyTrend(transactions []models.Transaction, referenceDate time.Time, months int) []models.TrendBucket {
	if months <= 0 {
		return []models.TrendBucket{}
	}

	// step from the first of the month so day 31 never skips a short month
	first := time.Date(referenceDate.Year(), referenceDate.Month(), 1, 0, 0, 0, 0, referenceDate.Location())

	buckets := make([]models.TrendBucket, months)
	for i := 0; i < months; i++ {
		month := first.AddDate(0, -(months - 1 - i), 0)
		inMonth := TransactionsForMonth(transactions, month)

		buckets[i] = models.TrendBucket{
			Label:   month.Month().String()[:3],
			Year:    month.Year(),
			Month:   month.Month(),
			Income:  sumOfType(inMonth, models.TransactionTypeIncome),
			Expense: sumOfType(inMonth, models.TransactionTypeExpense),
		}
	}
	return buckets
}

func sumOfType(transactions []models.Transaction, transactionType models.TransactionType) decimal.Decimal {
	total := decimal.Zero
	for _, t := range transactions {
		if t.Type == transactionType {
			total = total.Add(t.Amount)
		}
	}
	return total
}

// compareCategories orders known categories by declaration, then unknown ones by name
func compareCategories(a, b models.TransactionCategory) int {
	ia, ib := models.CategoryIndex(a), models.CategoryIndex(b)
	switch {
	case ia >= 0 && ib >= 0:
		return cmp.Compare(ia, ib)
	case ia >= 0:
		return -1
	case ib >= 0:
		return 1
	default:
		return cmp.Compare(a, b)
	}
}
