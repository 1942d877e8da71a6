// Package postgresengine provides the PostgreSQL implementation of the event store.
//
// It accepts a pgxpool.Pool, a sql.DB (lib/pq) or a sqlx.DB. Payload predicates are evaluated
// with JSONB containment, and appends run as one INSERT ... SELECT under SERIALIZABLE isolation
// that only inserts while the max sequence number of the filtered stream is unchanged.
//
//	pool, _ := pgxpool.New(ctx, dsn)
//	store, _ := postgresengine.NewEventStoreFromPGXPool(pool, postgresengine.WithLogger(slog.Default()))
//
//	events, maxSeq, _ := store.Query(ctx, filter)
//	err := store.Append(ctx, filter, maxSeq, newEvent)
//
// Migrate creates the events table through golang-migrate.
package postgresengine
