package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionRecord is the relational row of a Transaction.
// Position keeps the collection's insertion order; ids are not unique
// at this level because the collection itself does not enforce it.
type TransactionRecord struct {
	Position      int             `gorm:"primaryKey;autoIncrement:false"`
	TransactionID string          `gorm:"type:varchar(36);not null;index"`
	Amount        decimal.Decimal `gorm:"type:decimal(20,8);not null"`
	Title         string          `gorm:"type:text;not null"`
	Category      string          `gorm:"type:varchar(32);not null"`
	Date          time.Time       `gorm:"not null;index"`
	Type          string          `gorm:"type:varchar(16);not null"`
	Notes         string          `gorm:"type:text;not null;default:''"`
}

// TableName returns the table name for TransactionRecord
func (TransactionRecord) TableName() string {
	return "transactions"
}

// NewTransactionRecord converts a transaction into its row at the given position
func NewTransactionRecord(position int, t Transaction) TransactionRecord {
	return TransactionRecord{
		Position:      position,
		TransactionID: t.ID.String(),
		Amount:        t.Amount,
		Title:         t.Title,
		Category:      string(t.Category),
		Date:          t.Date,
		Type:          string(t.Type),
		Notes:         t.Notes,
	}
}

// ToTransaction converts the row back, validating the enumerated tags
func (r TransactionRecord) ToTransaction() (Transaction, error) {
	id, err := uuid.Parse(r.TransactionID)
	if err != nil {
		return Transaction{}, ErrMissingID
	}

	category := TransactionCategory(r.Category)
	if !IsValidCategory(category) {
		return Transaction{}, ErrInvalidCategory
	}

	transactionType := TransactionType(r.Type)
	if !IsValidTransactionType(transactionType) {
		return Transaction{}, ErrInvalidTransactionType
	}

	return Transaction{
		ID:       id,
		Amount:   r.Amount,
		Title:    r.Title,
		Category: category,
		Date:     r.Date,
		Type:     transactionType,
		Notes:    r.Notes,
	}, nil
}
