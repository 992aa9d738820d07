package services

import (
	"slices"
	"strings"
	"time"

	"money-tracker/internal/models"

	"golang.org/x/text/cases"
)

// FilterByType keeps transactions of the given type. An empty type keeps all.
func FilterByType(transactions []models.Transaction, transactionType models.TransactionType) []models.Transaction {
	if transactionType == "" {
		return filter(transactions, keepAll)
	}
	return filter(transactions, func(t models.Transaction) bool {
		return t.Type == transactionType
	})
}

// FilterByCategory keeps transactions of the given category. An empty category keeps all.
func FilterByCategory(transactions []models.Transaction, category models.TransactionCategory) []models.Transaction {
	if category == "" {
		return filter(transactions, keepAll)
	}
	return filter(transactions, func(t models.Transaction) bool {
		return t.Category == category
	})
}

// FilterBySearch keeps transactions whose title or notes contain text, ignoring case.
// Empty text keeps all.
func FilterBySearch(transactions []models.Transaction, text string) []models.Transaction {
	if text == "" {
		return filter(transactions, keepAll)
	}

	// a Caser keeps state and cannot be shared between goroutines
	folder := cases.Fold()
	needle := folder.String(text)

	return filter(transactions, func(t models.Transaction) bool {
		return strings.Contains(folder.String(t.Title), needle) ||
			strings.Contains(folder.String(t.Notes), needle)
	})
}

// ApplyFilters intersects the type, category and search filters
func ApplyFilters(transactions []models.Transaction, filters models.TransactionFilters) []models.Transaction {
	result := FilterByType(transactions, filters.Type)
	result = FilterByCategory(result, filters.Category)
	return FilterBySearch(result, filters.Search)
}

// GroupByDay buckets transactions by calendar day in loc (time.Local when nil).
// Buckets are ordered newest day first; each bucket keeps the input order.
func GroupByDay(transactions []models.Transaction, loc *time.Location) []models.DayGroup {
	if loc == nil {
		loc = time.Local
	}

	groups := make([]models.DayGroup, 0)
	index := make(map[int64]int)

	for _, t := range transactions {
		day := startOfDay(t.Date, loc)
		key := day.Unix()

		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, models.DayGroup{Day: day})
		}
		groups[i].Transactions = append(groups[i].Transactions, t)
	}

	slices.SortFunc(groups, func(a, b models.DayGroup) int {
		return b.Day.Compare(a.Day)
	})
	return groups
}

// SortByDateDescending returns the transactions newest first, keeping input order for equal dates
func SortByDateDescending(transactions []models.Transaction) []models.Transaction {
	sorted := filter(transactions, keepAll)
	slices.SortStableFunc(sorted, func(a, b models.Transaction) int {
		return b.Date.Compare(a.Date)
	})
	return sorted
}

// RecentTransactions returns the n newest transactions
func RecentTransactions(transactions []models.Transaction, n int) []models.Transaction {
	if n <= 0 {
		return []models.Transaction{}
	}
	sorted := SortByDateDescending(transactions)
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// TransactionsForMonth keeps transactions in the calendar month of referenceDate,
// compared in referenceDate's location
func TransactionsForMonth(transactions []models.Transaction, referenceDate time.Time) []models.Transaction {
	return filter(transactions, func(t models.Transaction) bool {
		return sameMonth(t.Date, referenceDate)
	})
}

// TransactionsForCategory keeps transactions of one category
func TransactionsForCategory(transactions []models.Transaction, category models.TransactionCategory) []models.Transaction {
	return filter(transactions, func(t models.Transaction) bool {
		return t.Category == category
	})
}

func filter(transactions []models.Transaction, keep func(models.Transaction) bool) []models.Transaction {
	result := make([]models.Transaction, 0, len(transactions))
	for _, t := range transactions {
		if keep(t) {
			result = append(result, t)
		}
	}
	return result
}

func keepAll(models.Transaction) bool {
	return true
}

func startOfDay(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}

func sameMonth(t, referenceDate time.Time) bool {
	local := t.In(referenceDate.Location())
	return local.Year() == referenceDate.Year() && local.Month() == referenceDate.Month()
}
