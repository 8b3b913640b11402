package database

import (
	"embed"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	driver "github.com/golang-migrate/migrate/v4/database/mysql"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// NewMigrator creates a migrate instance bound to the given connection.
func NewMigrator(db *sqlx.DB) (*migrate.Migrate, error) {
	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return nil, fmt.Errorf("iofs.New() > %w", err)
	}

	dbDriver, err := driver.WithInstance(db.DB, &driver.Config{})
	if err != nil {
		return nil, fmt.Errorf("mysql.WithInstance() > %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "mysql", dbDriver)
	if err != nil {
		return nil, fmt.Errorf("migrate.NewWithInstance() > %w", err)
	}

	return m, nil
}

// RunMigrations applies all pending migrations. Being already up to date is
// not an error.
func RunMigrations(db *sqlx.DB) error {
	m, err := NewMigrator(db)
	if err != nil {
		return err
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("m.Up() > %w", err)
	}

	return nil
}
