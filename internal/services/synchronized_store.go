package services

import (
	"sync"

	"money-tracker/internal/models"

	"github.com/google/uuid"
)

// synchronizedStore serializes mutations on a wrapped store and lets reads share access
type synchronizedStore struct {
	mu    sync.RWMutex
	inner TransactionStoreInterface
}

// NewSynchronizedStore wraps a store for use by concurrent callers such as HTTP handlers
func NewSynchronizedStore(inner TransactionStoreInterface) TransactionStoreInterface {
	return &synchronizedStore{inner: inner}
}

func (s *synchronizedStore) Initialize() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inner.Initialize()
}

func (s *synchronizedStore) Add(transaction models.Transaction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inner.Add(transaction)
}

func (s *synchronizedStore) Update(transaction models.Transaction) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Update(transaction)
}

func (s *synchronizedStore) Delete(id uuid.UUID) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Delete(id)
}

func (s *synchronizedStore) All() []models.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.inner.All()
}

func (s *synchronizedStore) Find(id uuid.UUID) (models.Transaction, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.inner.Find(id)
}

func (s *synchronizedStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Close()
}
