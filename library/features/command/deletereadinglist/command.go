package deletereadinglist

import (
	"time"

	"github.com/schoollibrary/lendingengine/library/shared/core"
)

const (
	commandType = "DeleteReadingList"
)

// Command represents the intent of a teacher to delete a reading list.
type Command struct {
	ListID      core.ListIDString
	ByTeacherID core.MemberIDString
	OccurredAt  core.OccurredAt
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(listID core.ListIDString, byTeacherID core.MemberIDString, occurredAt time.Time) Command {
	return Command{
		ListID:      listID,
		ByTeacherID: byTeacherID,
		OccurredAt:  core.ToOccurredAt(occurredAt),
	}
}
