package shell

import (
	"errors"
	"fmt"

	jsoniter "github.com/json-iterator/go"

	"github.com/schoollibrary/lendingengine/eventstore"
	"github.com/schoollibrary/lendingengine/library/shared/core"
)

var (
	// ErrMappingToDomainEventFailed is returned when domain event conversion fails.
	ErrMappingToDomainEventFailed = errors.New("mapping to domain event failed")

	// ErrMappingToDomainEventUnknownEventType is returned for unrecognized event types.
	ErrMappingToDomainEventUnknownEventType = errors.New("unknown event type")
)

// DomainEventsFrom converts multiple StorableEvents to DomainEvents.
func DomainEventsFrom(storableEvents eventstore.StorableEvents) (core.DomainEvents, error) {
	domainEvents := make(core.DomainEvents, 0, len(storableEvents))

	for _, storableEvent := range storableEvents {
		domainEvent, err := DomainEventFrom(storableEvent)
		if err != nil {
			return nil, err
		}

		domainEvents = append(domainEvents, domainEvent)
	}

	return domainEvents, nil
}

// DomainEventFrom converts a StorableEvent to its corresponding DomainEvent.
func DomainEventFrom(storableEvent eventstore.StorableEvent) (core.DomainEvent, error) {
	payload := storableEvent.PayloadJSON

	switch storableEvent.EventType {
	case core.BookAddedToCatalogEventType:
		return unmarshalPayload[core.BookAddedToCatalog](payload)

	case core.BookAvailabilityAdjustedEventType:
		return unmarshalPayload[core.BookAvailabilityAdjusted](payload)

	case core.BookRemovedFromCatalogEventType:
		return unmarshalPayload[core.BookRemovedFromCatalog](payload)

	case core.BookIssuedEventType:
		return unmarshalPayload[core.BookIssued](payload)

	case core.BookReturnedEventType:
		return unmarshalPayload[core.BookReturned](payload)

	case core.FineAssessedEventType:
		return unmarshalPayload[core.FineAssessed](payload)

	case core.ReservationRequestedEventType:
		return unmarshalPayload[core.ReservationRequested](payload)

	case core.ReservationCancelledEventType:
		return unmarshalPayload[core.ReservationCancelled](payload)

	case core.ReservationFulfilledEventType:
		return unmarshalPayload[core.ReservationFulfilled](payload)

	case core.ReadingListCreatedEventType:
		return unmarshalPayload[core.ReadingListCreated](payload)

	case core.BookAddedToReadingListEventType:
		return unmarshalPayload[core.BookAddedToReadingList](payload)

	case core.ReadingListDeletedEventType:
		return unmarshalPayload[core.ReadingListDeleted](payload)

	case core.AcquisitionRequestedEventType:
		return unmarshalPayload[core.AcquisitionRequested](payload)

	case core.AcquisitionApprovedEventType:
		return unmarshalPayload[core.AcquisitionApproved](payload)

	case core.AcquisitionRejectedEventType:
		return unmarshalPayload[core.AcquisitionRejected](payload)

	case core.CommandRejectedEventType:
		return unmarshalPayload[core.CommandRejected](payload)
	}

	return nil, errors.Join(
		ErrMappingToDomainEventFailed,
		fmt.Errorf("%w: %q", ErrMappingToDomainEventUnknownEventType, storableEvent.EventType),
	)
}

func unmarshalPayload[E core.DomainEvent](payloadJSON []byte) (core.DomainEvent, error) {
	var payload E

	if err := jsoniter.ConfigFastest.Unmarshal(payloadJSON, &payload); err != nil {
		return nil, errors.Join(ErrMappingToDomainEventFailed, err)
	}

	return payload, nil
}
