package models

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransaction_Validate(t *testing.T) {
	tests := []struct {
		name        string
		transaction Transaction
		wantErr     error
	}{
		{
			name: "valid expense",
			transaction: Transaction{
				ID:       uuid.New(),
				Amount:   decimal.NewFromFloat(12.50),
				Title:    "Lunch",
				Category: CategoryFood,
				Type:     TransactionTypeExpense,
			},
		},
		{
			name: "valid income",
			transaction: Transaction{
				ID:       uuid.New(),
				Amount:   decimal.NewFromInt(2500),
				Title:    "Salary",
				Category: CategorySalary,
				Type:     TransactionTypeIncome,
			},
		},
		{
			name: "zero amount",
			transaction: Transaction{
				Amount:   decimal.Zero,
				Title:    "Nothing",
				Category: CategoryOther,
				Type:     TransactionTypeExpense,
			},
			wantErr: ErrInvalidAmount,
		},
		{
			name: "negative amount",
			transaction: Transaction{
				Amount:   decimal.NewFromInt(-5),
				Title:    "Refund",
				Category: CategoryOther,
				Type:     TransactionTypeExpense,
			},
			wantErr: ErrInvalidAmount,
		},
		{
			name: "blank title",
			transaction: Transaction{
				Amount:   decimal.NewFromInt(5),
				Title:    "   ",
				Category: CategoryOther,
				Type:     TransactionTypeExpense,
			},
			wantErr: ErrEmptyTitle,
		},
		{
			name: "multibyte title at the limit",
			transaction: Transaction{
				Amount:   decimal.NewFromInt(5),
				Title:    strings.Repeat("é", 200),
				Category: CategoryFood,
				Type:     TransactionTypeExpense,
			},
		},
		{
			name: "title too long",
			transaction: Transaction{
				Amount:   decimal.NewFromInt(5),
				Title:    strings.Repeat("a", 201),
				Category: CategoryFood,
				Type:     TransactionTypeExpense,
			},
			wantErr: ErrTitleTooLong,
		},
		{
			name: "unknown type",
			transaction: Transaction{
				Amount:   decimal.NewFromInt(5),
				Title:    "Coffee",
				Category: CategoryFood,
				Type:     TransactionType("Transfer"),
			},
			wantErr: ErrInvalidTransactionType,
		},
		{
			name: "unknown category",
			transaction: Transaction{
				Amount:   decimal.NewFromInt(5),
				Title:    "Coffee",
				Category: TransactionCategory("Travel"),
				Type:     TransactionTypeExpense,
			},
			wantErr: ErrInvalidCategory,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.transaction.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestTransaction_ValidateCategoryForType(t *testing.T) {
	income := Transaction{Type: TransactionTypeIncome, Category: CategoryFood}
	assert.ErrorIs(t, income.ValidateCategoryForType(), ErrCategoryNotAllowed)

	expense := Transaction{Type: TransactionTypeExpense, Category: CategoryFood}
	assert.NoError(t, expense.ValidateCategoryForType())

	for _, transactionType := range AllTransactionTypes() {
		other := Transaction{Type: transactionType, Category: CategoryOther}
		assert.NoError(t, other.ValidateCategoryForType(), "Other is valid for %s", transactionType)
	}
}

func TestNewTransaction(t *testing.T) {
	before := time.Now()
	tx := NewTransaction(decimal.NewFromInt(10), "Bus ticket", CategoryTransportation, time.Time{}, TransactionTypeExpense, "")

	assert.NotEqual(t, uuid.Nil, tx.ID)
	assert.False(t, tx.Date.Before(before))
	assert.Empty(t, tx.Notes)

	date := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	other := NewTransaction(decimal.NewFromInt(10), "Bus ticket", CategoryTransportation, date, TransactionTypeExpense, "monthly pass")

	assert.NotEqual(t, tx.ID, other.ID)
	assert.True(t, other.Date.Equal(date))
	assert.Equal(t, "monthly pass", other.Notes)
}

func TestTransaction_SignedAmount(t *testing.T) {
	income := Transaction{Type: TransactionTypeIncome, Amount: decimal.NewFromInt(100)}
	expense := Transaction{Type: TransactionTypeExpense, Amount: decimal.NewFromInt(40)}

	assert.True(t, income.SignedAmount().Equal(decimal.NewFromInt(100)))
	assert.True(t, expense.SignedAmount().Equal(decimal.NewFromInt(-40)))
	assert.True(t, income.IsIncome())
	assert.True(t, expense.IsExpense())
}

func TestCategoryPartition(t *testing.T) {
	require.Len(t, AllCategories(), 11)

	for _, c := range IncomeCategories() {
		assert.True(t, IsCategoryAllowedForType(TransactionTypeIncome, c))
	}
	for _, c := range ExpenseCategories() {
		assert.True(t, IsCategoryAllowedForType(TransactionTypeExpense, c))
	}

	assert.False(t, IsCategoryAllowedForType(TransactionTypeIncome, CategoryBills))
	assert.False(t, IsCategoryAllowedForType(TransactionTypeExpense, CategorySalary))
	assert.Nil(t, CategoriesForType(TransactionType("bogus")))

	assert.Equal(t, 0, CategoryIndex(CategoryFood))
	assert.Equal(t, 10, CategoryIndex(CategoryOther))
	assert.Equal(t, -1, CategoryIndex(TransactionCategory("Travel")))
}

func TestTrendBucket_Net(t *testing.T) {
	bucket := TrendBucket{Income: decimal.NewFromInt(100), Expense: decimal.NewFromInt(140)}
	assert.True(t, bucket.Net().Equal(decimal.NewFromInt(-40)))
}
