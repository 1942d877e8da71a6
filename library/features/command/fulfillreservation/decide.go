package fulfillreservation

import (
	"github.com/schoollibrary/lendingengine/eventstore"
	"github.com/schoollibrary/lendingengine/library/shared/core"
)

// Decide implements the business logic to determine whether a reservation can be fulfilled now.
// requester is the directory entry of the reservation's member, the zero Member if it is unknown.
//
// Business Rules:
//
//	GIVEN: A pending reservation with ReservationID for a catalogued book
//	WHEN: FulfillReservation command is received
//	THEN: BookAvailabilityAdjusted(-1), ReservationFulfilled and BookIssued events are generated together
//	ERROR: NotFound if the reservation, its book or its requester is unknown
//	ERROR: InvalidState if the reservation is not Pending
//	ERROR: Conflict if TransactionID is already used by another loan
//	ERROR: Unavailable if no copy is available, the reservation stays Pending
//	IDEMPOTENCY: If the reservation was fulfilled into TransactionID, no event generated (no-op)
func Decide(history core.DomainEvents, command Command, requester core.Member, policy core.LoanPolicy) core.DecisionResult {
	reservation := core.ProjectReservation(history, command.ReservationID)

	if !reservation.Exists() {
		return reject(command, core.NewDomainError(
			core.ErrNotFound, core.EntityReservation, command.ReservationID, "reservation does not exist"))
	}

	if reservation.Status == core.ReservationStatusFulfilled && reservation.TransactionID == command.TransactionID {
		return core.IdempotentDecision()
	}

	if !reservation.Status.CanTransitionTo(core.ReservationStatusFulfilled) {
		return reject(command, core.NewDomainError(
			core.ErrInvalidState, core.EntityReservation, command.ReservationID,
			"only pending reservations can be fulfilled").WithStatus(string(reservation.Status)))
	}

	if existing := core.ProjectTransaction(history, command.TransactionID); existing.Exists() {
		return reject(command, core.NewDomainError(
			core.ErrConflict, core.EntityTransaction, command.TransactionID,
			"transaction id is already used for book "+existing.BookID+" and member "+existing.MemberID))
	}

	if !requester.IsKnown() {
		return reject(command, core.NewDomainError(
			core.ErrNotFound, core.EntityMember, reservation.MemberID, "requester is not in the directory"))
	}

	book := core.ProjectBook(history, reservation.BookID)
	if book.IsCatalogued() && book.AvailableCopies == 0 {
		return reject(command, core.NewDomainError(
			core.ErrUnavailable, core.EntityBook, book.ID, "no copy left to fulfill reservation "+reservation.ID))
	}

	adjusted, err := core.AdjustAvailability(book, -1, core.AdjustmentFulfill, command.OccurredAt)
	if err != nil {
		return reject(command, err)
	}

	return core.SuccessDecision(
		adjusted,
		core.BuildReservationFulfilled(reservation, command.TransactionID, command.OccurredAt),
		core.BuildBookIssued(
			command.TransactionID,
			reservation.BookID,
			requester,
			policy.DueDate(command.OccurredAt, requester.Role),
			reservation.ID,
			command.OccurredAt,
		),
	)
}

func reject(command Command, err error) core.DecisionResult {
	return core.RejectDecision(commandType, command.ReservationID, err, command.OccurredAt)
}

// BuildEventFilter creates the filter for querying all events
// related to the specified reservation and its book which are relevant for this feature/use-case,
// plus any loan that already uses transactionID.
// bookID is empty while the reservation is unknown, then only the reservation is selected.
func BuildEventFilter(
	reservationID core.ReservationIDString,
	bookID core.BookIDString,
	transactionID core.TransactionIDString,
) eventstore.Filter {

	reservationOnly := eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(
			core.ReservationRequestedEventType,
			core.ReservationCancelledEventType,
			core.ReservationFulfilledEventType,
		).
		AndAnyPredicateOf(eventstore.P("ReservationID", reservationID))

	if bookID == "" {
		return reservationOnly.Finalize()
	}

	return reservationOnly.
		OrMatching().
		AnyEventTypeOf(
			core.BookAddedToCatalogEventType,
			core.BookAvailabilityAdjustedEventType,
			core.BookRemovedFromCatalogEventType,
			core.BookIssuedEventType,
			core.BookReturnedEventType,
		).
		AndAnyPredicateOf(eventstore.P("BookID", bookID)).
		OrMatching().
		AnyEventTypeOf(core.BookIssuedEventType).
		AndAnyPredicateOf(eventstore.P("TransactionID", transactionID)).
		Finalize()
}

// BuildReservationFilter selects the events of one reservation, used to find its book and requester.
func BuildReservationFilter(reservationID core.ReservationIDString) eventstore.Filter {
	return BuildEventFilter(reservationID, "", "")
}
