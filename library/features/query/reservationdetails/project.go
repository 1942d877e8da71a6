package reservationdetails

import (
	"github.com/schoollibrary/lendingengine/eventstore"
	"github.com/schoollibrary/lendingengine/library/shared/core"
)

// ProjectReservationDetails returns the reservation of the query, or a NotFound error.
func ProjectReservationDetails(history core.DomainEvents, query Query) (core.Reservation, error) {
	reservation := core.ProjectReservation(history, query.ReservationID)

	if !reservation.Exists() {
		return core.Reservation{}, core.NewDomainError(
			core.ErrNotFound, core.EntityReservation, query.ReservationID, "reservation does not exist")
	}

	return reservation, nil
}

// BuildEventFilter creates the filter for querying the events of the specified reservation.
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
