package readinglist

import (
	"context"

	"github.com/schoollibrary/lendingengine/library/shared/core"
	"github.com/schoollibrary/lendingengine/library/shared/shell"
)

// QueryHandler runs Query -> Unmarshal -> Lookup section -> Project.
type QueryHandler struct {
	eventStore shell.QueriesEvents
	sections   shell.SectionDirectory
}

// NewQueryHandler creates a new QueryHandler.
func NewQueryHandler(eventStore shell.QueriesEvents, sections shell.SectionDirectory) QueryHandler {
	return QueryHandler{
		eventStore: eventStore,
		sections:   sections,
	}
}

// Handle projects the list and checks the viewer against the section the list belongs to.
func (h QueryHandler) Handle(ctx context.Context, query Query) (core.ReadingList, error) {
	history, _, err := shell.QueryDomainEvents(ctx, h.eventStore, BuildEventFilter(query.ListID))
	if err != nil {
		return core.ReadingList{}, err
	}

	section := core.Section{}
	if list := core.ProjectReadingList(history, query.ListID); list.IsActive() {
		if section, err = h.sections.Section(ctx, list.SectionID); err != nil {
			return core.ReadingList{}, err
		}
	}

	return ProjectReadingList(history, query, section)
}
