package acquisitiondetails

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

func (h QueryHandler) Handle(ctx context.Context, query Query) (core.Acquisition, error) {
	history, _, err := shell.QueryDomainEvents(ctx, h.eventStore, BuildEventFilter(query.AcquisitionID))
	if err != nil {
		return core.Acquisition{}, err
	}

	return ProjectAcquisitionDetails(history, query)
}
