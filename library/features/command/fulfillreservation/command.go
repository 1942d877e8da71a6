package fulfillreservation

import (
	"time"

	"github.com/schoollibrary/lendingengine/library/shared/core"
)

const (
	commandType = "FulfillReservation"
)

// Command represents the intent to convert a pending reservation into the transaction TransactionID.
type Command struct {
	ReservationID core.ReservationIDString
	TransactionID core.TransactionIDString
	OccurredAt    core.OccurredAt
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(
	reservationID core.ReservationIDString,
	transactionID core.TransactionIDString,
	occurredAt time.Time,
) Command {

	return Command{
		ReservationID: reservationID,
		TransactionID: transactionID,
		OccurredAt:    core.ToOccurredAt(occurredAt),
	}
}
