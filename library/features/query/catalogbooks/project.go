package catalogbooks

import (
	"github.com/schoollibrary/lendingengine/eventstore"
	"github.com/schoollibrary/lendingengine/library/shared/core"
)

// ProjectCatalogBooks replays the catalog.
//
// Query Logic:
//
//	INCLUDES: every book that was added, with its current availability
//	EXCLUDES: books that were removed from the catalog
func ProjectCatalogBooks(history core.DomainEvents) CatalogBooks {
	index := make(map[core.BookIDString]int)
	books := make([]core.Book, 0)

	for _, event := range history {
		switch e := event.(type) {
		case core.BookAddedToCatalog:
			if _, known := index[e.BookID]; known {
				continue
			}

			index[e.BookID] = len(books)
			b := core.Book{}
			b.Apply(e)
			books = append(books, b)

		case core.BookAvailabilityAdjusted:
			if i, ok := index[e.BookID]; ok {
				books[i].Apply(e)
			}

		case core.BookRemovedFromCatalog:
			if i, ok := index[e.BookID]; ok {
				books[i].Apply(e)
			}
		}
	}

	catalogued := make([]core.Book, 0, len(books))
	for _, b := range books {
		if b.IsCatalogued() {
			catalogued = append(catalogued, b)
		}
	}

	return CatalogBooks{
		Books: catalogued,
		Count: len(catalogued),
	}
}

// BuildEventFilter creates the filter for querying all catalog events.
func BuildEventFilter() eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(
			core.BookAddedToCatalogEventType,
			core.BookAvailabilityAdjustedEventType,
			core.BookRemovedFromCatalogEventType,
		).
		Finalize()
}
