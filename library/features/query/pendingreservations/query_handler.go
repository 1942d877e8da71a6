package pendingreservations

import (
	"context"

	"github.com/schoollibrary/lendingengine/library/shared/core"
	"github.com/schoollibrary/lendingengine/library/shared/shell"
)

// QueryHandler runs Query -> Unmarshal -> Project. External wrappers handle all observability concerns.
type QueryHandler struct {
	eventStore shell.QueriesEvents
	policy     core.LoanPolicy
}

// NewQueryHandler creates a new QueryHandler.
func NewQueryHandler(eventStore shell.QueriesEvents, policy core.LoanPolicy) QueryHandler {
	return QueryHandler{
		eventStore: eventStore,
		policy:     policy,
	}
}

// Handle reads the reservation events of the book and projects its queue.
func (h QueryHandler) Handle(ctx context.Context, query Query) (PendingReservations, error) {
	history, _, err := shell.QueryDomainEvents(ctx, h.eventStore, BuildEventFilter(query.BookID))
	if err != nil {
		return PendingReservations{}, err
	}

	return ProjectPendingReservations(history, query, h.policy), nil
}
