package postgresengine

import (
	"database/sql"
	"embed"
	"errors"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/schoollibrary/lendingengine/eventstore"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

const (
	migrationSourceName   = "iofs"
	migrationDatabaseName = "postgres"
	logMsgMigrated        = "events schema migrated"
	logMsgMigrationDirty  = "events schema migration is dirty"
	logAttrVersion        = "version"
)

// Migrate brings the events table of db up to the latest schema version.
// db must be opened with the lib/pq driver.
func Migrate(db *sql.DB, logger eventstore.Logger) error {
	if db == nil {
		return eventstore.ErrNilDatabaseConnection
	}

	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return errors.Join(eventstore.ErrMigratingSchemaFailed, err)
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return errors.Join(eventstore.ErrMigratingSchemaFailed, err)
	}

	m, err := migrate.NewWithInstance(migrationSourceName, source, migrationDatabaseName, driver)
	if err != nil {
		return errors.Join(eventstore.ErrMigratingSchemaFailed, err)
	}

	if err = m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return errors.Join(eventstore.ErrMigratingSchemaFailed, err)
	}

	if logger != nil {
		version, dirty, _ := m.Version()
		if dirty {
			logger.Warn(logMsgMigrationDirty, logAttrVersion, version)
		} else {
			logger.Info(logMsgMigrated, logAttrVersion, version)
		}
	}

	return nil
}
