package requestreservation

import (
	"time"

	"github.com/schoollibrary/lendingengine/library/shared/core"
)

const (
	commandType = "RequestReservation"
)

// Command represents the intent of a member to reserve a book.
type Command struct {
	ReservationID core.ReservationIDString
	BookID        core.BookIDString
	MemberID      core.MemberIDString
	OccurredAt    core.OccurredAt
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(
	reservationID core.ReservationIDString,
	bookID core.BookIDString,
	memberID core.MemberIDString,
	occurredAt time.Time,
) Command {

	return Command{
		ReservationID: reservationID,
		BookID:        bookID,
		MemberID:      memberID,
		OccurredAt:    core.ToOccurredAt(occurredAt),
	}
}
