package repositories

import (
	"sync"

	"money-tracker/internal/models"
)

// memoryRepository keeps the encoded collection in process memory
type memoryRepository struct {
	mu   sync.Mutex
	blob []byte
}

// NewMemoryRepository creates a persistence store that lives as long as the process
func NewMemoryRepository() TransactionPersistenceInterface {
	return &memoryRepository{}
}

// Load decodes the last saved collection
func (r *memoryRepository) Load() ([]models.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.blob == nil {
		return nil, nil
	}
	return decodeTransactions(r.blob)
}

// Save replaces the stored collection
func (r *memoryRepository) Save(transactions []models.Transaction) error {
	data, err := encodeTransactions(transactions)
	if err != nil {
		return err
	}

	r.mu.Lock()
	r.blob = data
	r.mu.Unlock()
	return nil
}
