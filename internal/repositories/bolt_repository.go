package repositories

import (
	"fmt"
	"os"
	"path/filepath"

	"money-tracker/internal/models"

	bolt "go.etcd.io/bbolt"
)

var (
	settingsBucketName = []byte("settings")
	transactionsKey    = []byte("saved_transactions")
)

// boltRepository stores the encoded collection under a single bbolt key
type boltRepository struct {
	db *bolt.DB
}

// NewBoltRepository creates a bbolt backed persistence store
func NewBoltRepository(db *bolt.DB) (TransactionPersistenceInterface, error) {
	err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(settingsBucketName)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create settings bucket: %w", err)
	}

	return &boltRepository{db: db}, nil
}

// OpenBoltRepository opens (or creates) a bbolt file and wraps it.
// The returned store implements io.Closer.
func OpenBoltRepository(path string) (TransactionPersistenceInterface, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create bolt directory: %w", err)
	}

	db, err := bolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt database: %w", err)
	}

	repo, err := NewBoltRepository(db)
	if err != nil {
		db.Close()
		return nil, err
	}
	return repo, nil
}

// Load decodes the stored collection
func (r *boltRepository) Load() ([]models.Transaction, error) {
	var data []byte
	err := r.db.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket(settingsBucketName).Get(transactionsKey)
		if raw != nil {
			// raw is only valid inside the transaction
			data = append([]byte(nil), raw...)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read transactions: %w", err)
	}

	if data == nil {
		return nil, nil
	}
	return decodeTransactions(data)
}

// Save replaces the stored collection
func (r *boltRepository) Save(transactions []models.Transaction) error {
	data, err := encodeTransactions(transactions)
	if err != nil {
		return err
	}

	return r.db.Update(func(tx *bolt.Tx) error {
		if err := tx.Bucket(settingsBucketName).Put(transactionsKey, data); err != nil {
			return fmt.Errorf("failed to write transactions: %w", err)
		}
		return nil
	})
}

// Close closes the underlying bbolt database
func (r *boltRepository) Close() error {
	return r.db.Close()
}
