package database

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

const defaultMigrationsPath = "db/migrations"

var (
	maxRetries    = 30
	retryInterval = 2 * time.Second
)

// MigrationRunner applies versioned SQL migrations at startup. It only
// manages schema; demo data is seeded by the application seeder, never here.
type MigrationRunner struct {
	db   *sql.DB
	path string
}

// NewMigrationRunner creates a runner reading migrations from the
// MIGRATIONS_PATH environment variable, falling back to db/migrations.
func NewMigrationRunner(db *sql.DB) *MigrationRunner {
	path := os.Getenv("MIGRATIONS_PATH")
	if path == "" {
		path = defaultMigrationsPath
	}
	return &MigrationRunner{db: db, path: path}
}

// WaitForDatabase pings until the database answers or the retries run out.
func (mr *MigrationRunner) WaitForDatabase() error {
	var err error
	for i := 0; i < maxRetries; i++ {
		if err = mr.db.Ping(); err == nil {
			return nil
		}
		log.Printf("database not ready (attempt %d/%d): %v", i+1, maxRetries, err)
		time.Sleep(retryInterval)
	}
	return fmt.Errorf("database not ready after %d attempts: %w", maxRetries, err)
}

// Up applies every pending migration. A missing migrations directory is not
// an error: deployments without SQL migrations rely on the AutoMigrate
// fallback in Initialize instead.
func (mr *MigrationRunner) Up() error {
	if _, err := os.Stat(mr.path); os.IsNotExist(err) {
		log.Printf("no migrations directory at %s, skipping migration run", mr.path)
		return nil
	}

	m, err := mr.newMigrate()
	if err != nil {
		return err
	}

	version, dirty, err := m.Version()
	if err != nil && err != migrate.ErrNilVersion {
		return fmt.Errorf("reading migration version: %w", err)
	}
	if dirty {
		log.Printf("database dirty at version %d, forcing clean state", version)
		if err := m.Force(int(version)); err != nil {
			return fmt.Errorf("forcing migration version %d: %w", version, err)
		}
	}

	switch err := m.Up(); err {
	case nil:
		applied, _, verr := m.Version()
		if verr != nil {
			return fmt.Errorf("reading migration version after apply: %w", verr)
		}
		log.Printf("migrations applied, schema now at version %d", applied)
	case migrate.ErrNoChange:
		log.Println("schema already up to date")
	default:
		return fmt.Errorf("applying migrations: %w", err)
	}

	return nil
}

// Status reports the current schema version and dirty flag.
func (mr *MigrationRunner) Status() (version uint, dirty bool, err error) {
	if _, err := os.Stat(mr.path); os.IsNotExist(err) {
		return 0, false, fmt.Errorf("migrations directory not found at %s", mr.path)
	}

	m, err := mr.newMigrate()
	if err != nil {
		return 0, false, err
	}
	return m.Version()
}

func (mr *MigrationRunner) newMigrate() (*migrate.Migrate, error) {
	abs, err := filepath.Abs(mr.path)
	if err != nil {
		return nil, fmt.Errorf("resolving migrations path: %w", err)
	}

	driver, err := postgres.WithInstance(mr.db, &postgres.Config{})
	if err != nil {
		return nil, fmt.Errorf("creating postgres migrate driver: %w", err)
	}

	return migrate.NewWithDatabaseInstance("file://"+abs, "postgres", driver)
}

// RunMigrationsIfEnabled applies SQL migrations when AUTO_MIGRATE=true. Any
// other value leaves the schema to the GORM AutoMigrate fallback.
func RunMigrationsIfEnabled(db *sql.DB) error {
	if os.Getenv("AUTO_MIGRATE") != "true" {
		log.Println("auto-migration disabled, skipping migration runner")
		return nil
	}

	runner := NewMigrationRunner(db)

	if err := runner.WaitForDatabase(); err != nil {
		return fmt.Errorf("database readiness check failed: %w", err)
	}
	if err := runner.Up(); err != nil {
		return fmt.Errorf("migration run failed: %w", err)
	}

	if version, dirty, err := runner.Status(); err == nil {
		log.Printf("schema at version %d (dirty=%v)", version, dirty)
	}

	return nil
}
