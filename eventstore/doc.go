// Package eventstore provides the storage-agnostic types of an append-only event store
// with dynamic consistency boundaries.
//
// Instead of fixed streams, every write is guarded by a Filter: the engine appends only if the
// highest sequence number among the events matching the filter is still the one the caller saw
// when it queried. Two writers that decided on overlapping facts therefore cannot both succeed;
// the loser gets ErrConcurrencyConflict and may re-query and re-decide.
//
// Typical flow of a command handler:
//
//	filter := eventstore.BuildEventFilter().
//		Matching().
//		AnyEventTypeOf("BookAddedToCatalog", "BookIssued", "BookReturned").
//		AndAnyPredicateOf(eventstore.P("BookID", bookID.String())).
//		Finalize()
//
//	events, maxSeq, err := store.Query(ctx, filter)
//	// ... decide on the events ...
//	err = store.Append(ctx, filter, maxSeq, newEvent, moreEvents...)
//
// Engines live in the postgresengine and sqliteengine sub packages.
package eventstore
