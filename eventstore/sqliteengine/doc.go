// Package sqliteengine provides an embedded event store engine on top of modernc.org/sqlite.
//
// It mirrors postgresengine: Query returns the filtered events with the max sequence number,
// Append inserts only while that number is unchanged. Predicates use json_extract, occurred_at is
// stored as Unix microseconds, and the SQLite write lock serializes concurrent appends.
//
//	db, _ := sqliteengine.Open("library.db")
//	_ = sqliteengine.Migrate(db, logger)
//	store, _ := sqliteengine.NewEventStore(db, sqliteengine.WithLogger(logger))
package sqliteengine
