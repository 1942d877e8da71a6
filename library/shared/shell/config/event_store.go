package config

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // registers the "postgres" database/sql driver

	"github.com/schoollibrary/lendingengine/eventstore"
	"github.com/schoollibrary/lendingengine/eventstore/postgresengine"
	"github.com/schoollibrary/lendingengine/eventstore/sqliteengine"
	"github.com/schoollibrary/lendingengine/library/shared/shell"
)

const (
	postgresDriverName = "postgres"

	// MigratedEventsTableName is the table the bundled migrations create.
	MigratedEventsTableName = "events"
)

var ErrOpeningEventStoreFailed = errors.New("opening the event store failed")

// EventStore is an opened event store plus the function that releases its connections.
type EventStore struct {
	shell.EventStore
	Close func() error
}

// OpenEventStore connects to the configured store. With migrate set the events schema is brought up to date first.
func (c Config) OpenEventStore(ctx context.Context, logger eventstore.Logger, migrate bool) (EventStore, error) {
	if c.Store == StorePostgres {
		return c.openPostgres(ctx, logger, migrate)
	}

	return c.openSQLite(logger, migrate)
}

// Migrate only brings the events schema of the configured store up to date.
// It refuses a custom EventsTableName, such a table has to be created outside the engine.
func (c Config) Migrate(logger eventstore.Logger) error {
	if err := c.checkMigratable(); err != nil {
		return err
	}

	if c.Store == StorePostgres {
		db, err := sql.Open(postgresDriverName, c.PostgresDSN)
		if err != nil {
			return errors.Join(ErrOpeningEventStoreFailed, err)
		}
		defer db.Close()

		return postgresengine.Migrate(db, logger)
	}

	db, err := sqliteengine.Open(c.SQLitePath)
	if err != nil {
		return errors.Join(ErrOpeningEventStoreFailed, err)
	}
	defer db.Close()

	return sqliteengine.Migrate(db, logger)
}

func (c Config) openSQLite(logger eventstore.Logger, migrate bool) (EventStore, error) {
	db, err := sqliteengine.Open(c.SQLitePath)
	if err != nil {
		return EventStore{}, errors.Join(ErrOpeningEventStoreFailed, err)
	}

	if migrate {
		if err = c.checkMigratable(); err != nil {
			_ = db.Close()
			return EventStore{}, err
		}

		if err = sqliteengine.Migrate(db, logger); err != nil {
			_ = db.Close()
			return EventStore{}, err
		}
	}

	options := []sqliteengine.Option{sqliteengine.WithTableName(c.EventsTableName)}
	if logger != nil {
		options = append(options, sqliteengine.WithLogger(logger))
	}

	store, err := sqliteengine.NewEventStore(db, options...)
	if err != nil {
		_ = db.Close()
		return EventStore{}, errors.Join(ErrOpeningEventStoreFailed, err)
	}

	return EventStore{EventStore: store, Close: db.Close}, nil
}

func (c Config) openPostgres(ctx context.Context, logger eventstore.Logger, migrate bool) (EventStore, error) {
	if migrate {
		if err := c.Migrate(logger); err != nil {
			return EventStore{}, err
		}
	}

	options := []postgresengine.Option{postgresengine.WithTableName(c.EventsTableName)}
	if logger != nil {
		options = append(options, postgresengine.WithLogger(logger))
	}

	switch c.PostgresAdapter {
	case AdapterSQL:
		db, err := sql.Open(postgresDriverName, c.PostgresDSN)
		if err != nil {
			return EventStore{}, errors.Join(ErrOpeningEventStoreFailed, err)
		}

		store, err := postgresengine.NewEventStoreFromSQLDB(db, options...)
		if err != nil {
			_ = db.Close()
			return EventStore{}, errors.Join(ErrOpeningEventStoreFailed, err)
		}

		return EventStore{EventStore: store, Close: db.Close}, nil

	case AdapterSQLX:
		db, err := sqlx.ConnectContext(ctx, postgresDriverName, c.PostgresDSN)
		if err != nil {
			return EventStore{}, errors.Join(ErrOpeningEventStoreFailed, err)
		}

		store, err := postgresengine.NewEventStoreFromSQLX(db, options...)
		if err != nil {
			_ = db.Close()
			return EventStore{}, errors.Join(ErrOpeningEventStoreFailed, err)
		}

		return EventStore{EventStore: store, Close: db.Close}, nil

	default:
		poolConfig, err := PGXPoolConfig(c.PostgresDSN)
		if err != nil {
			return EventStore{}, errors.Join(ErrOpeningEventStoreFailed, err)
		}

		pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
		if err != nil {
			return EventStore{}, errors.Join(ErrOpeningEventStoreFailed, err)
		}

		store, err := postgresengine.NewEventStoreFromPGXPool(pool, options...)
		if err != nil {
			pool.Close()
			return EventStore{}, errors.Join(ErrOpeningEventStoreFailed, err)
		}

		return EventStore{EventStore: store, Close: func() error { pool.Close(); return nil }}, nil
	}
}

func (c Config) checkMigratable() error {
	if c.EventsTableName != MigratedEventsTableName {
		return fmt.Errorf("%w: migrations create the %q table, not %q",
			ErrInvalidConfig, MigratedEventsTableName, c.EventsTableName)
	}

	return nil
}

// PGXPoolConfig parses dsn and applies the pool sizing of the engine.
func PGXPoolConfig(dsn string) (*pgxpool.Config, error) {
	const defaultMaxConnections = int32(8)
	const defaultMinConnections = int32(2)
	const defaultMaxConnLifetime = time.Hour
	const defaultMaxConnIdleTime = time.Minute * 5
	const defaultHealthCheckPeriod = time.Minute
	const defaultConnectTimeout = time.Second * 5

	dbConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}

	dbConfig.MaxConns = defaultMaxConnections
	dbConfig.MinConns = defaultMinConnections
	dbConfig.MaxConnLifetime = defaultMaxConnLifetime
	dbConfig.MaxConnIdleTime = defaultMaxConnIdleTime
	dbConfig.HealthCheckPeriod = defaultHealthCheckPeriod
	dbConfig.ConnConfig.ConnectTimeout = defaultConnectTimeout

	return dbConfig, nil
}
