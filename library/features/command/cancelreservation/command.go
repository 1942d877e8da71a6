package cancelreservation

import (
	"time"

	"github.com/schoollibrary/lendingengine/library/shared/core"
)

const (
	commandType = "CancelReservation"
)

// Command represents the intent of a member to withdraw a reservation.
type Command struct {
	ReservationID core.ReservationIDString
	ByMemberID    core.MemberIDString
	OccurredAt    core.OccurredAt
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(reservationID core.ReservationIDString, byMemberID core.MemberIDString, occurredAt time.Time) Command {
	return Command{
		ReservationID: reservationID,
		ByMemberID:    byMemberID,
		OccurredAt:    core.ToOccurredAt(occurredAt),
	}
}
