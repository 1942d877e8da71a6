package addbook

import (
	"fmt"

	"github.com/schoollibrary/lendingengine/eventstore"
	"github.com/schoollibrary/lendingengine/library/shared/core"
)

// state represents the current state projected from the event history.
type state struct {
	bookIsKnown      bool
	bookIsRemoved    bool
	added            core.BookAddedToCatalog
	isbnIsCatalogued bool
	isbnUsedByBookID core.BookIDString
}

// Decide implements the business logic to determine whether a book should be added to the catalog.
//
// Business Rules:
//
//	GIVEN: A book with BookID and optional ISBN
//	WHEN: AddBook command is received
//	THEN: BookAddedToCatalog event is generated
//	ERROR: OutOfRange if TotalCopies < 1
//	ERROR: Duplicate if another catalogued book has the same ISBN
//	ERROR: Conflict if BookID was removed from the catalog or was added with other details
//	IDEMPOTENCY: If the same book with BookID was added before, no event generated (no-op)
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	s := project(history, command.BookID, command.ISBN)

	if s.bookIsKnown {
		if !s.bookIsRemoved && s.added.Title == command.Title &&
			s.added.Author == command.Author &&
			s.added.ISBN == command.ISBN &&
			s.added.Genre == command.Genre &&
			s.added.TotalCopies == command.TotalCopies {
			return core.IdempotentDecision()
		}

		reason := "book id is already used by " + s.added.Title + " of " + s.added.Author
		if s.bookIsRemoved {
			reason = "book id belongs to a book removed from the catalog"
		}

		return core.RejectDecision(
			commandType,
			command.BookID,
			core.NewDomainError(core.ErrConflict, core.EntityBook, command.BookID, reason),
			command.OccurredAt,
		)
	}

	if command.TotalCopies < 1 {
		return core.RejectDecision(
			commandType,
			command.BookID,
			core.NewDomainError(core.ErrOutOfRange, core.EntityBook, command.BookID,
				fmt.Sprintf("total copies must be at least 1, got %d", command.TotalCopies)),
			command.OccurredAt,
		)
	}

	if s.isbnIsCatalogued {
		return core.RejectDecision(
			commandType,
			command.BookID,
			core.NewDomainError(core.ErrDuplicate, core.EntityBook, command.BookID,
				fmt.Sprintf("isbn %s is already used by book %s", command.ISBN, s.isbnUsedByBookID)),
			command.OccurredAt,
		)
	}

	return core.SuccessDecision(
		core.BuildBookAddedToCatalog(
			command.BookID,
			command.Title,
			command.Author,
			command.ISBN,
			command.Genre,
			command.TotalCopies,
			command.OccurredAt,
		),
	)
}

// project builds the current state by replaying all events from the history.
func project(history core.DomainEvents, bookID core.BookIDString, isbn core.ISBNString) state {
	s := state{}

	for _, event := range history {
		switch e := event.(type) {
		case core.BookAddedToCatalog:
			if e.BookID == bookID {
				s.bookIsKnown = true
				s.added = e
			}

			if isbn != "" && e.ISBN == isbn {
				s.isbnIsCatalogued = true
				s.isbnUsedByBookID = e.BookID
			}

		case core.BookRemovedFromCatalog:
			if e.BookID == bookID {
				s.bookIsRemoved = true
			}

			if isbn != "" && e.ISBN == isbn && e.BookID == s.isbnUsedByBookID {
				s.isbnIsCatalogued = false
				s.isbnUsedByBookID = ""
			}
		}
	}

	return s
}

// BuildEventFilter creates the filter for querying all events
// related to the specified book and ISBN which are relevant for this feature/use-case.
// Without an ISBN only the book itself is selected.
func BuildEventFilter(bookID core.BookIDString, isbn core.ISBNString) eventstore.Filter {
	predicates := []eventstore.FilterPredicate{eventstore.P("BookID", bookID)}
	if isbn != "" {
		predicates = append(predicates, eventstore.P("ISBN", isbn))
	}

	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(
			core.BookAddedToCatalogEventType,
			core.BookRemovedFromCatalogEventType,
		).
		AndAnyPredicateOf(predicates[0], predicates[1:]...).
		Finalize()
}
