package requestreservation

import (
	"github.com/schoollibrary/lendingengine/eventstore"
	"github.com/schoollibrary/lendingengine/library/shared/core"
)

// state represents the current state projected from the event history.
type state struct {
	book                       core.Book
	existing                   core.Reservation
	pendingReservationOfMember core.ReservationIDString
}

// Decide implements the business logic to determine whether a member may reserve a book.
// member is the directory entry of command.MemberID, the zero Member if it is unknown.
//
// Business Rules:
//
//	GIVEN: A catalogued book with BookID and a known member with MemberID
//	WHEN: RequestReservation command is received
//	THEN: ReservationRequested event is generated
//	ERROR: NotFound if the member is unknown or the book is not catalogued
//	ERROR: Duplicate if the member already holds a Pending reservation for the book
//	ERROR: Conflict if ReservationID is taken by a reservation of another book or member
//	IDEMPOTENCY: If the same reservation with ReservationID exists, no event generated (no-op)
func Decide(history core.DomainEvents, command Command, member core.Member) core.DecisionResult {
	s := project(history, command)

	if s.existing.Exists() {
		if s.existing.BookID == command.BookID && s.existing.MemberID == command.MemberID {
			return core.IdempotentDecision()
		}

		return core.RejectDecision(
			commandType,
			command.ReservationID,
			core.NewDomainError(core.ErrConflict, core.EntityReservation, command.ReservationID,
				"reservation id is already used for book "+s.existing.BookID+" and member "+s.existing.MemberID),
			command.OccurredAt,
		)
	}

	if !member.IsKnown() {
		return core.RejectDecision(
			commandType,
			command.ReservationID,
			core.NewDomainError(core.ErrNotFound, core.EntityMember, command.MemberID, "member is not in the directory"),
			command.OccurredAt,
		)
	}

	if !s.book.IsCatalogued() {
		return core.RejectDecision(
			commandType,
			command.ReservationID,
			core.NewDomainError(core.ErrNotFound, core.EntityBook, command.BookID, "book is not in the catalog"),
			command.OccurredAt,
		)
	}

	if s.pendingReservationOfMember != "" {
		return core.RejectDecision(
			commandType,
			command.ReservationID,
			core.NewDomainError(core.ErrDuplicate, core.EntityReservation, s.pendingReservationOfMember,
				"member "+command.MemberID+" already holds a pending reservation for book "+command.BookID).
				WithStatus(string(core.ReservationStatusPending)),
			command.OccurredAt,
		)
	}

	return core.SuccessDecision(
		core.BuildReservationRequested(
			command.ReservationID,
			command.BookID,
			command.MemberID,
			command.OccurredAt,
		),
	)
}

// project builds the current state by replaying all events from the history.
func project(history core.DomainEvents, command Command) state {
	s := state{book: core.ProjectBook(history, command.BookID)}

	for _, reservation := range core.ProjectReservations(history) {
		if reservation.ID == command.ReservationID {
			s.existing = reservation
		}

		if reservation.BookID == command.BookID &&
			reservation.MemberID == command.MemberID &&
			reservation.Status == core.ReservationStatusPending {

			s.pendingReservationOfMember = reservation.ID
		}
	}

	return s
}

// BuildEventFilter creates the filter for querying all events
// related to the specified book which are relevant for this feature/use-case,
// plus the reservation with reservationID, whatever book it was for.
func BuildEventFilter(bookID core.BookIDString, reservationID core.ReservationIDString) eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(
			core.BookAddedToCatalogEventType,
			core.BookRemovedFromCatalogEventType,
			core.ReservationRequestedEventType,
			core.ReservationCancelledEventType,
			core.ReservationFulfilledEventType,
		).
		AndAnyPredicateOf(eventstore.P("BookID", bookID)).
		OrMatching().
		AnyEventTypeOf(core.ReservationRequestedEventType).
		AndAnyPredicateOf(eventstore.P("ReservationID", reservationID)).
		Finalize()
}
