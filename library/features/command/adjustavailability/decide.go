package adjustavailability

import (
	"github.com/schoollibrary/lendingengine/eventstore"
	"github.com/schoollibrary/lendingengine/library/shared/core"
)

// Decide implements the business logic of a manual availability adjustment.
//
// Business Rules:
//
//	GIVEN: A catalogued book with BookID
//	WHEN: AdjustAvailability command is received
//	THEN: BookAvailabilityAdjusted event is generated
//	ERROR: NotFound if the book is not catalogued
//	ERROR: OutOfRange if Delta is not +1 or -1 or the result leaves 0..TotalCopies
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	book := core.ProjectBook(history, command.BookID)

	adjusted, err := core.AdjustAvailability(book, command.Delta, core.AdjustmentManual, command.OccurredAt)
	if err != nil {
		return core.RejectDecision(commandType, command.BookID, err, command.OccurredAt)
	}

	return core.SuccessDecision(adjusted)
}

// BuildEventFilter creates the filter for querying all events
// related to the specified book which are relevant for this feature/use-case.
func BuildEventFilter(bookID core.BookIDString) eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(
			core.BookAddedToCatalogEventType,
			core.BookAvailabilityAdjustedEventType,
			core.BookRemovedFromCatalogEventType,
		).
		AndAnyPredicateOf(eventstore.P("BookID", bookID)).
		Finalize()
}
