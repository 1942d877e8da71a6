package issuebook

import (
	"time"

	"github.com/schoollibrary/lendingengine/library/shared/core"
)

const (
	commandType = "IssueBook"
)

// Command represents the intent to loan a copy of a book to a member.
// DueDateOverride replaces the due date of the member's loan period when set.
type Command struct {
	TransactionID   core.TransactionIDString
	BookID          core.BookIDString
	MemberID        core.MemberIDString
	DueDateOverride *time.Time
	OccurredAt      core.OccurredAt
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(
	transactionID core.TransactionIDString,
	bookID core.BookIDString,
	memberID core.MemberIDString,
	dueDateOverride *time.Time,
	occurredAt time.Time,
) Command {

	var override *time.Time
	if dueDateOverride != nil {
		o := core.ToOccurredAt(*dueDateOverride)
		override = &o
	}

	return Command{
		TransactionID:   transactionID,
		BookID:          bookID,
		MemberID:        memberID,
		DueDateOverride: override,
		OccurredAt:      core.ToOccurredAt(occurredAt),
	}
}
