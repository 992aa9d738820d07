package database

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

// Dialects with embedded migrations
const (
	DialectSQLite   = "sqlite3"
	DialectPostgres = "postgres"
)

//go:embed migrations
var migrationsFS embed.FS

var (
	maxRetries    = 30
	retryInterval = 2 * time.Second

	ErrUnsupportedDialect = errors.New("unsupported migration dialect")
)

// MigrationRunner applies the embedded schema migrations
type MigrationRunner struct {
	db         *sql.DB
	dialect    string
	migrations fs.FS
}

// NewMigrationRunner creates a new migration runner for the dialect
func NewMigrationRunner(db *sql.DB, dialect string) *MigrationRunner {
	return &MigrationRunner{
		db:         db,
		dialect:    dialect,
		migrations: migrationsFS,
	}
}

// WaitForDatabase waits for the database to be ready
func (mr *MigrationRunner) WaitForDatabase() error {
	log.Println("Waiting for database to be ready...")

	for i := 0; i < maxRetries; i++ {
		err := mr.db.Ping()
		if err == nil {
			log.Println("Database is ready!")
			return nil
		}

		log.Printf("Database not ready (attempt %d/%d): %v", i+1, maxRetries, err)
		time.Sleep(retryInterval)
	}

	return fmt.Errorf("database not ready after %d attempts", maxRetries)
}

// RunMigrations executes all pending migrations
func (mr *MigrationRunner) RunMigrations() error {
	m, err := mr.newMigrate()
	if err != nil {
		return err
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("failed to get migration version: %w", err)
	}

	if dirty {
		log.Printf("Warning: database is in dirty state at version %d, forcing version", version)
		if err := m.Force(int(version)); err != nil {
			return fmt.Errorf("failed to force version: %w", err)
		}
	}

	err = m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration failed: %w", err)
	}

	if errors.Is(err, migrate.ErrNoChange) {
		log.Println("No new migrations to apply")
		return nil
	}

	newVersion, _, err := m.Version()
	if err != nil {
		return fmt.Errorf("failed to get new migration version: %w", err)
	}
	log.Printf("Successfully applied migrations. New version: %d", newVersion)

	return nil
}

// GetMigrationStatus returns the current migration status
func (mr *MigrationRunner) GetMigrationStatus() (version uint, dirty bool, err error) {
	m, err := mr.newMigrate()
	if err != nil {
		return 0, false, err
	}
	return m.Version()
}

// newMigrate builds a migrate instance on the shared connection.
// It is never closed because closing it would close the caller's *sql.DB.
func (mr *MigrationRunner) newMigrate() (*migrate.Migrate, error) {
	var (
		driver database.Driver
		err    error
	)

	switch mr.dialect {
	case DialectSQLite:
		driver, err = sqlite3.WithInstance(mr.db, &sqlite3.Config{})
	case DialectPostgres:
		driver, err = postgres.WithInstance(mr.db, &postgres.Config{})
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedDialect, mr.dialect)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create %s driver: %w", mr.dialect, err)
	}

	source, err := iofs.New(mr.migrations, "migrations/"+migrationDir(mr.dialect))
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded migrations: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, mr.dialect, driver)
	if err != nil {
		return nil, fmt.Errorf("failed to create migration instance: %w", err)
	}
	return m, nil
}

func migrationDir(dialect string) string {
	if dialect == DialectSQLite {
		return "sqlite"
	}
	return dialect
}
