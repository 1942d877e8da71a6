package shell

import (
	"context"

	"github.com/schoollibrary/lendingengine/eventstore"
)

// QueriesEvents is the read side of the event store, all query handlers need.
type QueriesEvents interface {
	Query(ctx context.Context, filter eventstore.Filter) (
		eventstore.StorableEvents,
		eventstore.MaxSequenceNumberUint,
		error,
	)
}

// EventStore is what command handlers need: read a dynamic event stream and append against its max sequence number.
// Both postgresengine.EventStore and sqliteengine.EventStore satisfy it.
type EventStore interface {
	QueriesEvents
	Append(
		ctx context.Context,
		filter eventstore.Filter,
		expectedMaxSequenceNumber eventstore.MaxSequenceNumberUint,
		storableEvent eventstore.StorableEvent,
		additionalEvents ...eventstore.StorableEvent,
	) error
}

// Command represents the contract for all command types.
// CommandType is used for logging, metrics and the audit trail of rejected commands.
type Command interface {
	CommandType() string
}

// CoreCommandHandler processes a command: query, decide, append.
// It reports the business outcome and retry information in the HandlerResult and is wrapped
// by observable.CommandWrapper for logging, metrics and tracing.
type CoreCommandHandler[C Command] interface {
	Handle(ctx context.Context, command C) (HandlerResult, error)
}

// Query represents the contract for all query types.
type Query interface {
	QueryType() string
}

// CoreQueryHandler projects the events selected for query into a read model R.
type CoreQueryHandler[Q Query, R any] interface {
	Handle(ctx context.Context, query Q) (R, error)
}
