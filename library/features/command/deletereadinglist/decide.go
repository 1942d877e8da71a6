package deletereadinglist

import (
	"github.com/schoollibrary/lendingengine/eventstore"
	"github.com/schoollibrary/lendingengine/library/shared/core"
)

// Decide implements the business logic to determine whether a reading list can be deleted.
//
// Business Rules:
//
//	GIVEN: An active reading list with ListID
//	WHEN: DeleteReadingList command is received
//	THEN: ReadingListDeleted event is generated
//	ERROR: NotFound if the list does not exist or was deleted
//	ERROR: Forbidden if ByTeacherID does not own the list
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	list := core.ProjectReadingList(history, command.ListID)

	if !list.IsActive() {
		return core.RejectDecision(
			commandType,
			command.ListID,
			core.NewDomainError(core.ErrNotFound, core.EntityReadingList, command.ListID, "reading list does not exist"),
			command.OccurredAt,
		)
	}

	if list.TeacherID != command.ByTeacherID {
		return core.RejectDecision(
			commandType,
			command.ListID,
			core.NewDomainError(core.ErrForbidden, core.EntityReadingList, command.ListID, "only the owner may delete the list"),
			command.OccurredAt,
		)
	}

	return core.SuccessDecision(core.BuildReadingListDeleted(command.ListID, command.ByTeacherID, command.OccurredAt))
}

// BuildEventFilter creates the filter for querying all events
// related to the specified reading list which are relevant for this feature/use-case.
func BuildEventFilter(listID core.ListIDString) eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(
			core.ReadingListCreatedEventType,
			core.BookAddedToReadingListEventType,
			core.ReadingListDeletedEventType,
		).
		AndAnyPredicateOf(eventstore.P("ListID", listID)).
		Finalize()
}
