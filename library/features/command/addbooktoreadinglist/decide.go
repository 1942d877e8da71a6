package addbooktoreadinglist

import (
	"github.com/schoollibrary/lendingengine/eventstore"
	"github.com/schoollibrary/lendingengine/library/shared/core"
)

// Decide implements the business logic to determine whether a book can be added to a reading list.
//
// Business Rules:
//
//	GIVEN: An active reading list with ListID and a catalogued book with BookID
//	WHEN: AddBookToReadingList command is received
//	THEN: BookAddedToReadingList event is generated
//	ERROR: NotFound if the list does not exist or was deleted
//	ERROR: Forbidden if ByTeacherID does not own the list
//	ERROR: NotFound if the book is not catalogued
//	ERROR: Duplicate if the list already contains the book
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	list := core.ProjectReadingList(history, command.ListID)

	if !list.IsActive() {
		return reject(command, core.NewDomainError(
			core.ErrNotFound, core.EntityReadingList, command.ListID, "reading list does not exist"))
	}

	if list.TeacherID != command.ByTeacherID {
		return reject(command, core.NewDomainError(
			core.ErrForbidden, core.EntityReadingList, command.ListID, "only the owner may add books"))
	}

	if !core.ProjectBook(history, command.BookID).IsCatalogued() {
		return reject(command, core.NewDomainError(
			core.ErrNotFound, core.EntityBook, command.BookID, "book is not in the catalog"))
	}

	if list.Contains(command.BookID) {
		return reject(command, core.NewDomainError(
			core.ErrDuplicate, core.EntityReadingList, command.ListID, "book "+command.BookID+" is already on the list"))
	}

	return core.SuccessDecision(
		core.BuildBookAddedToReadingList(command.ListID, command.BookID, command.ByTeacherID, command.OccurredAt),
	)
}

func reject(command Command, err error) core.DecisionResult {
	return core.RejectDecision(commandType, command.ListID, err, command.OccurredAt)
}

// BuildEventFilter creates the filter for querying all events
// related to the specified reading list and book which are relevant for this feature/use-case.
func BuildEventFilter(listID core.ListIDString, bookID core.BookIDString) eventstore.Filter {
	list := eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(
			core.ReadingListCreatedEventType,
			core.BookAddedToReadingListEventType,
			core.ReadingListDeletedEventType,
		).
		AndAnyPredicateOf(eventstore.P("ListID", listID))

	if bookID == "" {
		return list.Finalize()
	}

	return list.
		OrMatching().
		AnyEventTypeOf(
			core.BookAddedToCatalogEventType,
			core.BookRemovedFromCatalogEventType,
		).
		AndAnyPredicateOf(eventstore.P("BookID", bookID)).
		Finalize()
}
