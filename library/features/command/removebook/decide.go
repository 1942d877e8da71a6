package removebook

import (
	"fmt"

	"github.com/schoollibrary/lendingengine/eventstore"
	"github.com/schoollibrary/lendingengine/library/shared/core"
)

// state represents the current state projected from the event history.
type state struct {
	book                core.Book
	openTransactions    int
	pendingReservations int
}

// Decide implements the business logic to determine whether a book can be removed from the catalog.
//
// Business Rules:
//
//	GIVEN: A catalogued book with BookID
//	WHEN: RemoveBook command is received
//	THEN: BookRemovedFromCatalog event is generated
//	ERROR: NotFound if the book is not catalogued
//	ERROR: Conflict if an Issued transaction or a Pending reservation references the book
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	s := project(history, command.BookID)

	if !s.book.IsCatalogued() {
		return core.RejectDecision(
			commandType,
			command.BookID,
			core.NewDomainError(core.ErrNotFound, core.EntityBook, command.BookID, "book is not in the catalog"),
			command.OccurredAt,
		)
	}

	if s.openTransactions > 0 || s.pendingReservations > 0 {
		return core.RejectDecision(
			commandType,
			command.BookID,
			core.NewDomainError(core.ErrConflict, core.EntityBook, command.BookID, fmt.Sprintf(
				"book is referenced by %d issued transactions and %d pending reservations",
				s.openTransactions, s.pendingReservations)),
			command.OccurredAt,
		)
	}

	return core.SuccessDecision(core.BuildBookRemovedFromCatalog(command.BookID, s.book.ISBN, command.OccurredAt))
}

// project builds the current state by replaying all events from the history.
func project(history core.DomainEvents, bookID core.BookIDString) state {
	s := state{book: core.ProjectBook(history, bookID)}

	for _, transaction := range core.ProjectTransactions(history) {
		if transaction.BookID == bookID && transaction.Status == core.TransactionStatusIssued {
			s.openTransactions++
		}
	}

	for _, reservation := range core.ProjectReservations(history) {
		if reservation.BookID == bookID && reservation.Status == core.ReservationStatusPending {
			s.pendingReservations++
		}
	}

	return s
}

// BuildEventFilter creates the filter for querying all events
// related to the specified book which are relevant for this feature/use-case.
func BuildEventFilter(bookID core.BookIDString) eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(
			core.BookAddedToCatalogEventType,
			core.BookRemovedFromCatalogEventType,
			core.BookIssuedEventType,
			core.BookReturnedEventType,
			core.ReservationRequestedEventType,
			core.ReservationCancelledEventType,
			core.ReservationFulfilledEventType,
		).
		AndAnyPredicateOf(eventstore.P("BookID", bookID)).
		Finalize()
}
