package repositories

import (
	"encoding/json"
	"fmt"

	"money-tracker/internal/models"
)

// encodeTransactions encodes the collection as a JSON array
func encodeTransactions(transactions []models.Transaction) ([]byte, error) {
	if transactions == nil {
		transactions = []models.Transaction{}
	}
	data, err := json.Marshal(transactions)
	if err != nil {
		return nil, fmt.Errorf("failed to encode transactions: %w", err)
	}
	return data, nil
}

// decodeTransactions decodes a JSON array; any malformed record fails the whole blob
func decodeTransactions(data []byte) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := json.Unmarshal(data, &transactions); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodeFailure, err)
	}
	return transactions, nil
}
