package readinglist

import (
	"github.com/schoollibrary/lendingengine/eventstore"
	"github.com/schoollibrary/lendingengine/library/shared/core"
)

// ProjectReadingList returns the list of the query if the viewer may see it.
//
// Query Logic:
//
//	NOT FOUND: the list was never created or has been deleted
//	FORBIDDEN: the viewer is neither the owning teacher nor a member of the list's section
func ProjectReadingList(history core.DomainEvents, query Query, section core.Section) (core.ReadingList, error) {
	list := core.ProjectReadingList(history, query.ListID)

	if !list.IsActive() {
		return core.ReadingList{}, core.NewDomainError(
			core.ErrNotFound, core.EntityReadingList, query.ListID, "reading list does not exist")
	}

	if list.TeacherID != query.ByMemberID && !section.HasMember(query.ByMemberID) {
		return core.ReadingList{}, core.NewDomainError(
			core.ErrForbidden, core.EntityReadingList, query.ListID, "viewer is not a member of the list's section")
	}

	return list, nil
}

// BuildEventFilter creates the filter for querying the events of the specified reading list.
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
