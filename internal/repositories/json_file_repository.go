package repositories

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"money-tracker/internal/models"
)

// jsonFileRepository stores the collection as one JSON array in a file
type jsonFileRepository struct {
	path string
}

// NewJSONFileRepository creates a file backed persistence store
func NewJSONFileRepository(path string) TransactionPersistenceInterface {
	return &jsonFileRepository{path: path}
}

// Load reads and decodes the file. A missing file means nothing was stored yet.
func (r *jsonFileRepository) Load() ([]models.Transaction, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read transactions file: %w", err)
	}

	return decodeTransactions(data)
}

// Save writes the collection to a temp file and renames it over the old one
func (r *jsonFileRepository) Save(transactions []models.Transaction) error {
	data, err := encodeTransactions(transactions)
	if err != nil {
		return err
	}

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create transactions directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(r.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write transactions file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close transactions file: %w", err)
	}

	if err := os.Rename(tmpName, r.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace transactions file: %w", err)
	}
	return nil
}
