package cancelreservation

import (
	"github.com/schoollibrary/lendingengine/eventstore"
	"github.com/schoollibrary/lendingengine/library/shared/core"
)

// Decide implements the business logic to determine whether a reservation can be cancelled.
//
// Business Rules:
//
//	GIVEN: A reservation with ReservationID
//	WHEN: CancelReservation command is received
//	THEN: ReservationCancelled event is generated
//	ERROR: NotFound if the reservation does not exist
//	ERROR: Forbidden if ByMemberID is not the requester
//	ERROR: InvalidState if the reservation is not Pending
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	reservation := core.ProjectReservation(history, command.ReservationID)

	if !reservation.Exists() {
		return core.RejectDecision(
			commandType,
			command.ReservationID,
			core.NewDomainError(core.ErrNotFound, core.EntityReservation, command.ReservationID, "reservation does not exist"),
			command.OccurredAt,
		)
	}

	if reservation.MemberID != command.ByMemberID {
		return core.RejectDecision(
			commandType,
			command.ReservationID,
			core.NewDomainError(core.ErrForbidden, core.EntityReservation, command.ReservationID,
				"only the requester may cancel a reservation"),
			command.OccurredAt,
		)
	}

	if !reservation.Status.CanTransitionTo(core.ReservationStatusCancelled) {
		return core.RejectDecision(
			commandType,
			command.ReservationID,
			core.NewDomainError(core.ErrInvalidState, core.EntityReservation, command.ReservationID,
				"only pending reservations can be cancelled").WithStatus(string(reservation.Status)),
			command.OccurredAt,
		)
	}

	return core.SuccessDecision(core.BuildReservationCancelled(reservation, command.OccurredAt))
}

// BuildEventFilter creates the filter for querying all events
// related to the specified reservation which are relevant for this feature/use-case.
// A fulfillment of the same reservation appends into this filter, so both cannot succeed.
func BuildEventFilter(reservationID core.ReservationIDString) eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(
			core.ReservationRequestedEventType,
			core.ReservationCancelledEventType,
			core.ReservationFulfilledEventType,
		).
		AndAnyPredicateOf(eventstore.P("ReservationID", reservationID)).
		Finalize()
}
