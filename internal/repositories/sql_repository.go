package repositories

import (
	"fmt"

	"money-tracker/internal/models"

	"gorm.io/gorm"
)

const saveBatchSize = 200

// sqlRepository stores the collection as ordered rows through gorm
type sqlRepository struct {
	db *gorm.DB
}

// NewSQLRepository creates a gorm backed persistence store
func NewSQLRepository(db *gorm.DB) TransactionPersistenceInterface {
	return &sqlRepository{db: db}
}

// Load reads all rows in insertion order
func (r *sqlRepository) Load() ([]models.Transaction, error) {
	var records []models.TransactionRecord
	if err := r.db.Order("position ASC").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	transactions := make([]models.Transaction, 0, len(records))
	for _, record := range records {
		transaction, err := record.ToTransaction()
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", ErrDecodeFailure, record.Position, err)
		}
		transactions = append(transactions, transaction)
	}

	return transactions, nil
}

// Save replaces every row in a single database transaction
func (r *sqlRepository) Save(transactions []models.Transaction) error {
	records := make([]models.TransactionRecord, len(transactions))
	for i, transaction := range transactions {
		records[i] = models.NewTransactionRecord(i+1, transaction)
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.TransactionRecord{}).Error; err != nil {
			return fmt.Errorf("failed to clear transactions: %w", err)
		}

		if len(records) == 0 {
			return nil
		}

		if err := tx.CreateInBatches(&records, saveBatchSize).Error; err != nil {
			return fmt.Errorf("failed to save transactions: %w", err)
		}
		return nil
	})
}
