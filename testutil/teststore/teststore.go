// Package teststore provides an embedded event store plus seeding helpers for feature tests.
package teststore

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/schoollibrary/lendingengine/eventstore"
	"github.com/schoollibrary/lendingengine/eventstore/sqliteengine"
	"github.com/schoollibrary/lendingengine/library/shared/core"
	"github.com/schoollibrary/lendingengine/library/shared/shell"
)

// NewSQLite returns a migrated SQLite event store in a temporary directory of t.
func NewSQLite(t testing.TB) sqliteengine.EventStore {
	t.Helper()

	db, err := sqliteengine.Open(filepath.Join(t.TempDir(), "events.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, sqliteengine.Migrate(db, nil))

	store, err := sqliteengine.NewEventStore(db)
	require.NoError(t, err)

	return store
}

// Given appends events to the store as one unit, after whatever it already holds.
func Given(t testing.TB, store shell.EventStore, events ...core.DomainEvent) {
	t.Helper()

	ctx := context.Background()
	filter := eventstore.BuildEventFilter().MatchingAnyEvent()

	_, maxSequenceNumber, err := store.Query(ctx, filter)
	require.NoError(t, err)

	require.NoError(t, shell.AppendEvents(ctx, store, filter, maxSequenceNumber, events))
}

// History returns every event in the store.
func History(t testing.TB, store shell.EventStore) core.DomainEvents {
	t.Helper()

	history, _, err := shell.QueryDomainEvents(context.Background(), store, eventstore.BuildEventFilter().MatchingAnyEvent())
	require.NoError(t, err)

	return history
}

// EventsOfType returns the events in the store with the given type, in append order.
func EventsOfType(t testing.TB, store shell.EventStore, eventType core.EventTypeString) core.DomainEvents {
	t.Helper()

	found := core.DomainEvents{}
	for _, event := range History(t, store) {
		if event.EventType() == eventType {
			found = append(found, event)
		}
	}

	return found
}
