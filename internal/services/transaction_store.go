package services

import (
	"io"
	"log/slog"
	"slices"

	"money-tracker/internal/models"
	"money-tracker/internal/repositories"

	"github.com/google/uuid"
)

// Metric names recorded by the store and the statistics service
const (
	MetricStoreMutation      = "store.mutation"
	MetricPersistenceFailure = "store.persistence.failed"
	MetricTransactionCount   = "store.transactions"
	MetricStatisticsRequest  = "statistics.request"
)

// Store operations reported to metrics and the diagnostic hook
const (
	OperationLoad   = "load"
	OperationAdd    = "add"
	OperationUpdate = "update"
	OperationDelete = "delete"
	OperationClose  = "close"
)

// DiagnosticHook observes persistence failures without changing control flow
type DiagnosticHook func(operation string, err error)

// StoreOption configures a transaction store
type StoreOption func(*transactionStore)

// WithDiagnosticHook registers a callback for swallowed persistence errors
func WithDiagnosticHook(hook DiagnosticHook) StoreOption {
	return func(s *transactionStore) {
		s.hook = hook
	}
}

// WithMetricsRecorder sets the recorder for mutation and failure metrics
func WithMetricsRecorder(metrics MetricsRecorderInterface) StoreOption {
	return func(s *transactionStore) {
		if metrics != nil {
			s.metrics = metrics
		}
	}
}

// transactionStore owns the in-memory collection and writes it through on every mutation.
// It does no locking; see NewSynchronizedStore for concurrent callers.
type transactionStore struct {
	persistence  repositories.TransactionPersistenceInterface
	transactions []models.Transaction
	hook         DiagnosticHook
	metrics      MetricsRecorderInterface
}

// NewTransactionStore creates a store over the persistence collaborator.
// The collection is empty until Initialize is called.
func NewTransactionStore(persistence repositories.TransactionPersistenceInterface, opts ...StoreOption) TransactionStoreInterface {
	s := &transactionStore{
		persistence: persistence,
		metrics:     noopMetrics{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *transactionStore) Initialize() {
	transactions, err := s.persistence.Load()
	if err != nil {
		s.reportFailure(OperationLoad, err)
		transactions = nil
	}

	s.transactions = transactions
	s.recordCount()

	slog.Info("Transaction store initialized", "count", len(s.transactions))
}

func (s *transactionStore) Add(transaction models.Transaction) {
	s.transactions = append(s.transactions, transaction)
	s.persist(OperationAdd)
}

func (s *transactionStore) Update(transaction models.Transaction) bool {
	index := slices.IndexFunc(s.transactions, func(t models.Transaction) bool {
		return t.ID == transaction.ID
	})
	if index < 0 {
		return false
	}

	s.transactions[index] = transaction
	s.persist(OperationUpdate)
	return true
}

func (s *transactionStore) Delete(id uuid.UUID) int {
	before := len(s.transactions)
	s.transactions = slices.DeleteFunc(s.transactions, func(t models.Transaction) bool {
		return t.ID == id
	})

	s.persist(OperationDelete)
	return before - len(s.transactions)
}

func (s *transactionStore) All() []models.Transaction {
	return slices.Clone(s.transactions)
}

func (s *transactionStore) Find(id uuid.UUID) (models.Transaction, bool) {
	for _, t := range s.transactions {
		if t.ID == id {
			return t, true
		}
	}
	return models.Transaction{}, false
}

// Close releases the persistence collaborator when it holds resources
func (s *transactionStore) Close() error {
	closer, ok := s.persistence.(io.Closer)
	if !ok {
		return nil
	}
	if err := closer.Close(); err != nil {
		s.reportFailure(OperationClose, err)
		return err
	}
	return nil
}

// persist writes the full collection; failures are reported and swallowed
func (s *transactionStore) persist(operation string) {
	s.metrics.IncrementCounter(MetricStoreMutation, map[string]string{"operation": operation})
	s.recordCount()

	if err := s.persistence.Save(s.transactions); err != nil {
		s.reportFailure(operation, err)
	}
}

func (s *transactionStore) reportFailure(operation string, err error) {
	slog.Warn("Transaction persistence failed", "operation", operation, "error", err)
	s.metrics.IncrementCounter(MetricPersistenceFailure, map[string]string{"operation": operation})
	if s.hook != nil {
		s.hook(operation, err)
	}
}

func (s *transactionStore) recordCount() {
	s.metrics.RecordGauge(MetricTransactionCount, float64(len(s.transactions)), nil)
}
