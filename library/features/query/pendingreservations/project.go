package pendingreservations

import (
	"github.com/schoollibrary/lendingengine/eventstore"
	"github.com/schoollibrary/lendingengine/library/shared/core"
)

// ProjectPendingReservations builds the queue of a book.
//
// Query Logic:
//
//	INCLUDES: reservations of the book that are still Pending, oldest first
//	EXCLUDES: fulfilled and cancelled reservations
//	FLAGS:    FollowUpDue when the reservation is older than the policy's follow-up window at query.AsOf
func ProjectPendingReservations(history core.DomainEvents, query Query, policy core.LoanPolicy) PendingReservations {
	pending := make([]PendingReservation, 0)

	for _, r := range core.ProjectReservations(history) {
		if r.BookID != query.BookID || r.Status != core.ReservationStatusPending {
			continue
		}

		pending = append(pending, PendingReservation{
			Reservation: r,
			FollowUpDue: policy.FollowUpDue(r.RequestDate, query.AsOf),
		})
	}

	return PendingReservations{
		BookID:       query.BookID,
		Reservations: pending,
		Count:        len(pending),
	}
}

// BuildEventFilter creates the filter for querying the reservation events of the specified book.
func BuildEventFilter(bookID core.BookIDString) eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(
			core.ReservationRequestedEventType,
			core.ReservationCancelledEventType,
			core.ReservationFulfilledEventType,
		).
		AndAnyPredicateOf(eventstore.P("BookID", bookID)).
		Finalize()
}
