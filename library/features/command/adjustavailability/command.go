package adjustavailability

import (
	"time"

	"github.com/schoollibrary/lendingengine/library/shared/core"
)

const (
	commandType = "AdjustAvailability"
)

// Command represents the intent to change the available copies of a book by Delta.
type Command struct {
	BookID     core.BookIDString
	Delta      int
	OccurredAt core.OccurredAt
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(bookID core.BookIDString, delta int, occurredAt time.Time) Command {
	return Command{
		BookID:     bookID,
		Delta:      delta,
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}
