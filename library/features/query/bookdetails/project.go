package bookdetails

import (
	"github.com/schoollibrary/lendingengine/eventstore"
	"github.com/schoollibrary/lendingengine/library/shared/core"
)

// ProjectBookDetails returns the book of the query, or a NotFound error if it is not catalogued.
func ProjectBookDetails(history core.DomainEvents, query Query) (core.Book, error) {
	book := core.ProjectBook(history, query.BookID)

	if !book.IsCatalogued() {
		return core.Book{}, core.NewDomainError(core.ErrNotFound, core.EntityBook, query.BookID, "book is not in the catalog")
	}

	return book, nil
}

// BuildEventFilter creates the filter for querying the catalog events of the specified book.
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
