package shell

import (
	"context"

	"github.com/schoollibrary/lendingengine/eventstore"
	"github.com/schoollibrary/lendingengine/library/shared/core"
)

// AppendEvents appends all events of one decision in a single guarded append.
// It fails with eventstore.ErrConcurrencyConflict if the stream selected by filter grew beyond maxSequenceNumber.
func AppendEvents(
	ctx context.Context,
	store EventStore,
	filter eventstore.Filter,
	maxSequenceNumber eventstore.MaxSequenceNumberUint,
	events core.DomainEvents,
) error {

	if len(events) == 0 {
		return nil
	}

	storableEvents, err := StorableEventsFrom(events, EventMetadataChain(ctx, len(events)))
	if err != nil {
		return err
	}

	return store.Append(ctx, filter, maxSequenceNumber, storableEvents[0], storableEvents[1:]...)
}

// QueryDomainEvents reads the stream selected by filter and maps it to DomainEvents.
func QueryDomainEvents(
	ctx context.Context,
	store QueriesEvents,
	filter eventstore.Filter,
) (core.DomainEvents, eventstore.MaxSequenceNumberUint, error) {

	storableEvents, maxSequenceNumber, err := store.Query(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	domainEvents, err := DomainEventsFrom(storableEvents)
	if err != nil {
		return nil, 0, err
	}

	return domainEvents, maxSequenceNumber, nil
}
