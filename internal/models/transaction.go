package models

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType decides the sign of a transaction in balance math
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "Income"
	TransactionTypeExpense TransactionType = "Expense"
)

const maxTitleLength = 200

var (
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	ErrInvalidCategory        = errors.New("invalid transaction category")
	ErrInvalidAmount          = errors.New("transaction amount must be positive")
	ErrEmptyTitle             = errors.New("transaction title is required")
	ErrTitleTooLong           = errors.New("transaction title too long (max 200 characters)")
	ErrCategoryNotAllowed     = errors.New("category is not allowed for transaction type")
)

// Transaction represents one recorded income or expense.
// Fields are only replaced as a whole record through the store.
type Transaction struct {
	ID       uuid.UUID
	Amount   decimal.Decimal
	Title    string
	Category TransactionCategory
	Date     time.Time
	Type     TransactionType
	Notes    string
}

// NewTransaction creates a transaction with a fresh ID.
// A zero date defaults to the current time.
func NewTransaction(amount decimal.Decimal, title string, category TransactionCategory, date time.Time, transactionType TransactionType, notes string) Transaction {
	if date.IsZero() {
		date = time.Now()
	}

	return Transaction{
		ID:       uuid.New(),
		Amount:   amount,
		Title:    title,
		Category: category,
		Date:     date,
		Type:     transactionType,
		Notes:    notes,
	}
}

// Validate checks the fields a caller must guarantee before handing a
// transaction to the store
func (t Transaction) Validate() error {
	if !IsValidTransactionType(t.Type) {
		return ErrInvalidTransactionType
	}

	if !IsValidCategory(t.Category) {
		return ErrInvalidCategory
	}

	if t.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	if strings.TrimSpace(t.Title) == "" {
		return ErrEmptyTitle
	}

	if utf8.RuneCountInString(t.Title) > maxTitleLength {
		return ErrTitleTooLong
	}

	return nil
}

// ValidateCategoryForType checks the income/expense category partition
func (t Transaction) ValidateCategoryForType() error {
	if !IsCategoryAllowedForType(t.Type, t.Category) {
		return ErrCategoryNotAllowed
	}
	return nil
}

// IsIncome returns true for income transactions
func (t Transaction) IsIncome() bool {
	return t.Type == TransactionTypeIncome
}

// IsExpense returns true for expense transactions
func (t Transaction) IsExpense() bool {
	return t.Type == TransactionTypeExpense
}

// SignedAmount returns the amount as it contributes to the balance
func (t Transaction) SignedAmount() decimal.Decimal {
	if t.IsIncome() {
		return t.Amount
	}
	return t.Amount.Neg()
}

// AllTransactionTypes returns every transaction type
func AllTransactionTypes() []TransactionType {
	return []TransactionType{TransactionTypeIncome, TransactionTypeExpense}
}

// IsValidTransactionType checks if the transaction type is valid
func IsValidTransactionType(transactionType TransactionType) bool {
	switch transactionType {
	case TransactionTypeIncome, TransactionTypeExpense:
		return true
	default:
		return false
	}
}
