package repositories

import (
	"errors"

	"money-tracker/internal/models"
)

var (
	// ErrDecodeFailure marks persisted data that exists but cannot be decoded
	ErrDecodeFailure = errors.New("stored transactions could not be decoded")
)

// TransactionPersistenceInterface defines the contract for loading and saving
// the full transaction collection.
//
// Load returns (nil, nil) when nothing has been stored yet. Save always
// receives the complete collection and must not retain the slice.
type TransactionPersistenceInterface interface {
	Load() ([]models.Transaction, error)
	Save(transactions []models.Transaction) error
}
