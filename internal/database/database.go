package database

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"money-tracker/internal/config"
	"money-tracker/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var ErrUnsupportedBackend = errors.New("storage backend is not a SQL database")

type DB struct {
	*gorm.DB
	dialect string
	config  *config.StorageConfig
}

// New opens the SQL database selected by the storage backend
func New(cfg *config.StorageConfig) (*DB, error) {
	var (
		dialector gorm.Dialector
		dialect   string
	)

	switch cfg.Backend {
	case config.StorageBackendSQLite:
		if dir := filepath.Dir(cfg.Path); dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("failed to create database directory: %w", err)
			}
		}
		dialector = sqlite.Open(cfg.Path)
		dialect = DialectSQLite
	case config.StorageBackendPostgres:
		dialector = postgres.Open(cfg.DSN)
		dialect = DialectPostgres
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedBackend, cfg.Backend)
	}

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	maxOpen := cfg.MaxConnections
	if dialect == DialectSQLite {
		// sqlite allows a single writer
		maxOpen = 1
	}
	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{
		DB:      db,
		dialect: dialect,
		config:  cfg,
	}, nil
}

func (db *DB) AutoMigrate() error {
	return db.DB.AutoMigrate(
		&models.TransactionRecord{},
	)
}

// Migrate applies the embedded migrations, falling back to gorm AutoMigrate
func (db *DB) Migrate() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}

	if db.config != nil && db.config.RunMigrations {
		runner := NewMigrationRunner(sqlDB, db.dialect)

		if db.dialect == DialectPostgres {
			if err := runner.WaitForDatabase(); err != nil {
				return fmt.Errorf("database readiness check failed: %w", err)
			}
		}

		err := runner.RunMigrations()
		if err == nil {
			return nil
		}

		log.Printf("Warning: migration runner failed: %v", err)
		log.Println("Falling back to GORM AutoMigrate...")
	}

	if err := db.AutoMigrate(); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (db *DB) HealthCheck() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// Dialect returns the migration dialect of the connection
func (db *DB) Dialect() string {
	return db.dialect
}

// Initialize opens the database and brings the schema up to date
func Initialize(cfg *config.Config) (*DB, error) {
	start := time.Now()

	db, err := New(&cfg.Storage)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, err
	}

	log.Printf("Database initialized successfully in %s", time.Since(start))
	return db, nil
}
