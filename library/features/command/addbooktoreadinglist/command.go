package addbooktoreadinglist

import (
	"time"

	"github.com/schoollibrary/lendingengine/library/shared/core"
)

const (
	commandType = "AddBookToReadingList"
)

// Command represents the intent of a teacher to append a book to a reading list.
type Command struct {
	ListID      core.ListIDString
	BookID      core.BookIDString
	ByTeacherID core.MemberIDString
	OccurredAt  core.OccurredAt
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(
	listID core.ListIDString,
	bookID core.BookIDString,
	byTeacherID core.MemberIDString,
	occurredAt time.Time,
) Command {

	return Command{
		ListID:      listID,
		BookID:      bookID,
		ByTeacherID: byTeacherID,
		OccurredAt:  core.ToOccurredAt(occurredAt),
	}
}
