package pendingreservations

import (
	"github.com/schoollibrary/lendingengine/library/shared/core"
)

// PendingReservation is one entry of the queue.
type PendingReservation struct {
	core.Reservation
	FollowUpDue bool
}

// PendingReservations represents the query result.
type PendingReservations struct {
	BookID       core.BookIDString
	Reservations []PendingReservation
	Count        int
}
