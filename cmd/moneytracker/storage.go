package main

import (
	"fmt"

	"money-tracker/internal/config"
	"money-tracker/internal/database"
	"money-tracker/internal/handlers"
	"money-tracker/internal/repositories"
)

// storage is the persistence collaborator chosen by configuration
type storage struct {
	persistence repositories.TransactionPersistenceInterface
	checker     handlers.StorageHealthChecker
	db          *database.DB
}

// openStorage builds the persistence backend named by STORAGE_BACKEND
func openStorage(cfg *config.Config) (*storage, error) {
	switch cfg.Storage.Backend {
	case config.StorageBackendMemory:
		return &storage{persistence: repositories.NewMemoryRepository()}, nil
	case config.StorageBackendJSON:
		return &storage{persistence: repositories.NewJSONFileRepository(cfg.Storage.Path)}, nil
	case config.StorageBackendBolt:
		persistence, err := repositories.OpenBoltRepository(cfg.Storage.Path)
		if err != nil {
			return nil, err
		}
		return &storage{persistence: persistence}, nil
	case config.StorageBackendSQLite, config.StorageBackendPostgres:
		db, err := database.Initialize(cfg)
		if err != nil {
			return nil, err
		}
		return &storage{
			persistence: repositories.NewSQLRepository(db.DB),
			checker:     db,
			db:          db,
		}, nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}

// Close releases the database connection; file backends are closed by the store
func (s *storage) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
