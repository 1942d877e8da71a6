package createreadinglist

import (
	"github.com/schoollibrary/lendingengine/eventstore"
	"github.com/schoollibrary/lendingengine/library/shared/core"
)

// Decide implements the business logic to determine whether a teacher may create a reading list.
// section is the directory entry of command.SectionID, the zero Section if it is unknown.
//
// Business Rules:
//
//	GIVEN: A known section with SectionID
//	WHEN: CreateReadingList command is received
//	THEN: ReadingListCreated event is generated
//	ERROR: NotFound if the section is unknown
//	ERROR: Forbidden if TeacherID is not the class teacher of the section
//	ERROR: Conflict if ListID belongs to a deleted list or to a list with other name, teacher or section
//	IDEMPOTENCY: If the same list with ListID exists, no event generated (no-op)
func Decide(history core.DomainEvents, command Command, section core.Section) core.DecisionResult {
	if existing := core.ProjectReadingList(history, command.ListID); existing.ID != "" {
		if existing.IsActive() &&
			existing.Name == command.Name &&
			existing.TeacherID == command.TeacherID &&
			existing.SectionID == command.SectionID {
			return core.IdempotentDecision()
		}

		reason := "list id is already used by list " + existing.Name + " of teacher " + existing.TeacherID
		if existing.Deleted {
			reason = "list id belongs to a deleted list"
		}

		return core.RejectDecision(
			commandType,
			command.ListID,
			core.NewDomainError(core.ErrConflict, core.EntityReadingList, command.ListID, reason),
			command.OccurredAt,
		)
	}

	if !section.IsKnown() {
		return core.RejectDecision(
			commandType,
			command.ListID,
			core.NewDomainError(core.ErrNotFound, core.EntitySection, command.SectionID, "section is not in the directory"),
			command.OccurredAt,
		)
	}

	if section.ClassTeacherID != command.TeacherID {
		return core.RejectDecision(
			commandType,
			command.ListID,
			core.NewDomainError(core.ErrForbidden, core.EntitySection, command.SectionID,
				"member "+command.TeacherID+" is not the class teacher"),
			command.OccurredAt,
		)
	}

	return core.SuccessDecision(
		core.BuildReadingListCreated(
			command.ListID,
			command.Name,
			command.TeacherID,
			command.SectionID,
			command.OccurredAt,
		),
	)
}

// BuildEventFilter creates the filter for querying all events
// related to the specified reading list which are relevant for this feature/use-case.
func BuildEventFilter(listID core.ListIDString) eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(
			core.ReadingListCreatedEventType,
			core.ReadingListDeletedEventType,
		).
		AndAnyPredicateOf(eventstore.P("ListID", listID)).
		Finalize()
}
