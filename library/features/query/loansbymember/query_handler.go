package loansbymember

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

// Handle reads the lending events of the member and projects the open loans.
func (h QueryHandler) Handle(ctx context.Context, query Query) (MemberLoans, error) {
	history, _, err := shell.QueryDomainEvents(ctx, h.eventStore, BuildEventFilter(query.MemberID))
	if err != nil {
		return MemberLoans{}, err
	}

	return ProjectMemberLoans(history, query), nil
}
