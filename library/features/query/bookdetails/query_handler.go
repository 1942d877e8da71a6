package bookdetails

import (
	"context"

	"github.com/schoollibrary/lendingengine/library/shared/core"
	"github.com/schoollibrary/lendingengine/library/shared/shell"
)

// QueryHandler runs Query -> Unmarshal -> Project. External wrappers handle all observability concerns.
type QueryHandler struct {
	eventStore shell.QueriesEvents
}

// NewQueryHandler creates a new QueryHandler.
func NewQueryHandler(eventStore shell.QueriesEvents) QueryHandler {
	return QueryHandler{eventStore: eventStore}
}

// Handle reads the book's events and projects its current state.
func (h QueryHandler) Handle(ctx context.Context, query Query) (core.Book, error) {
	history, _, err := shell.QueryDomainEvents(ctx, h.eventStore, BuildEventFilter(query.BookID))
	if err != nil {
		return core.Book{}, err
	}

	return ProjectBookDetails(history, query)
}
