package assessedfines

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

func (h QueryHandler) Handle(ctx context.Context, query Query) (AssessedFines, error) {
	history, _, err := shell.QueryDomainEvents(ctx, h.eventStore, BuildEventFilter(query.MemberID))
	if err != nil {
		return AssessedFines{}, err
	}

	return ProjectAssessedFines(history, query), nil
}
