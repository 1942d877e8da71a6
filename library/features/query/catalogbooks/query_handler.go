package catalogbooks

import (
	"context"

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

// Handle reads the catalog events and projects the current catalog.
func (h QueryHandler) Handle(ctx context.Context, _ Query) (CatalogBooks, error) {
	history, _, err := shell.QueryDomainEvents(ctx, h.eventStore, BuildEventFilter())
	if err != nil {
		return CatalogBooks{}, err
	}

	return ProjectCatalogBooks(history), nil
}
