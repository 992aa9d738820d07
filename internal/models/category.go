package models

// TransactionCategory classifies a transaction
type TransactionCategory string

// Categories in declaration order. The order is also the tie-break order
// for aggregated category listings.
const (
	CategoryFood           TransactionCategory = "Food"
	CategoryTransportation TransactionCategory = "Transportation"
	CategoryShopping       TransactionCategory = "Shopping"
	CategoryEntertainment  TransactionCategory = "Entertainment"
	CategoryBills          TransactionCategory = "Bills"
	CategoryHealthcare     TransactionCategory = "Healthcare"
	CategoryEducation      TransactionCategory = "Education"
	CategorySalary         TransactionCategory = "Salary"
	CategoryFreelance      TransactionCategory = "Freelance"
	CategoryInvestment     TransactionCategory = "Investment"
	CategoryOther          TransactionCategory = "Other"
)

// AllCategories returns all valid categories
func AllCategories() []TransactionCategory {
	return []TransactionCategory{
		CategoryFood,
		CategoryTransportation,
		CategoryShopping,
		CategoryEntertainment,
		CategoryBills,
		CategoryHealthcare,
		CategoryEducation,
		CategorySalary,
		CategoryFreelance,
		CategoryInvestment,
		CategoryOther,
	}
}

// IncomeCategories returns the categories offered for income
func IncomeCategories() []TransactionCategory {
	return []TransactionCategory{
		CategorySalary,
		CategoryFreelance,
		CategoryInvestment,
		CategoryOther,
	}
}

// ExpenseCategories returns the categories offered for expenses
func ExpenseCategories() []TransactionCategory {
	return []TransactionCategory{
		CategoryFood,
		CategoryTransportation,
		CategoryShopping,
		CategoryEntertainment,
		CategoryBills,
		CategoryHealthcare,
		CategoryEducation,
		CategoryOther,
	}
}

// CategoriesForType returns the categories offered for a transaction type.
// Unknown types get no categories.
func CategoriesForType(transactionType TransactionType) []TransactionCategory {
	switch transactionType {
	case TransactionTypeIncome:
		return IncomeCategories()
	case TransactionTypeExpense:
		return ExpenseCategories()
	default:
		return nil
	}
}

// IsValidCategory checks if a category is part of the closed set
func IsValidCategory(category TransactionCategory) bool {
	return CategoryIndex(category) >= 0
}

// IsCategoryAllowedForType checks the income/expense category partition
func IsCategoryAllowedForType(transactionType TransactionType, category TransactionCategory) bool {
	for _, allowed := range CategoriesForType(transactionType) {
		if allowed == category {
			return true
		}
	}
	return false
}

// CategoryIndex returns the declaration position of a category, or -1
func CategoryIndex(category TransactionCategory) int {
	for i, c := range AllCategories() {
		if c == category {
			return i
		}
	}
	return -1
}
