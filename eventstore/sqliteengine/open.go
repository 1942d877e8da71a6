package sqliteengine

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/schoollibrary/lendingengine/eventstore"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

const (
	driverName            = "sqlite"
	dsnPragmas            = "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)"
	migrationSourceName   = "iofs"
	migrationDatabaseName = "sqlite"
	logMsgMigrated        = "events schema migrated"
	logMsgMigrationDirty  = "events schema migration is dirty"
	logAttrVersion        = "version"
)

var ErrEmptyDatabasePath = errors.New("sqlite database path must not be empty")

// Open opens the SQLite database at path in WAL mode with a busy timeout.
func Open(path string) (*sql.DB, error) {
	if strings.TrimSpace(path) == "" {
		return nil, ErrEmptyDatabasePath
	}

	db, err := sql.Open(driverName, "file:"+filepath.Clean(path)+dsnPragmas)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err = db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	return db, nil
}

// Migrate brings the events table of db up to the latest schema version.
func Migrate(db *sql.DB, logger eventstore.Logger) error {
	if db == nil {
		return eventstore.ErrNilDatabaseConnection
	}

	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return errors.Join(eventstore.ErrMigratingSchemaFailed, err)
	}

	driver, err := migratesqlite.WithInstance(db, &migratesqlite.Config{})
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
