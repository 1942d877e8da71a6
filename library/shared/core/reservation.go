package core

import (
	"time"
)

// Reservation is the read model of a member queueing up for a book.
type Reservation struct {
	ID            ReservationIDString
	BookID        BookIDString
	MemberID      MemberIDString
	RequestDate   time.Time
	Status        ReservationStatus
	TransactionID TransactionIDString
}

func (r Reservation) Exists() bool {
	return r.ID != ""
}

// Apply folds one event into the reservation. Events of other reservations are ignored.
func (r *Reservation) Apply(event DomainEvent) {
	switch e := event.(type) {
	case ReservationRequested:
		if r.ID == "" || r.ID == e.ReservationID {
			*r = Reservation{
				ID:          e.ReservationID,
				BookID:      e.BookID,
				MemberID:    e.MemberID,
				RequestDate: e.OccurredAt,
				Status:      ReservationStatusPending,
			}
		}

	case ReservationCancelled:
		if e.ReservationID == r.ID {
			r.Status = ReservationStatusCancelled
		}

	case ReservationFulfilled:
		if e.ReservationID == r.ID {
			r.Status = ReservationStatusFulfilled
			r.TransactionID = e.TransactionID
		}
	}
}

// ProjectReservation replays history into the Reservation with the given id.
func ProjectReservation(history DomainEvents, reservationID ReservationIDString) Reservation {
	r := Reservation{}

	for _, event := range history {
		if requested, ok := event.(ReservationRequested); ok && requested.ReservationID != reservationID {
			continue
		}

		r.Apply(event)
	}

	return r
}

// ProjectReservations replays history into all Reservations it contains, in request order.
func ProjectReservations(history DomainEvents) []Reservation {
	index := make(map[ReservationIDString]int)
	reservations := make([]Reservation, 0)

	for _, event := range history {
		switch e := event.(type) {
		case ReservationRequested:
			index[e.ReservationID] = len(reservations)
			r := Reservation{}
			r.Apply(e)
			reservations = append(reservations, r)

		case ReservationCancelled:
			if i, ok := index[e.ReservationID]; ok {
				reservations[i].Apply(e)
			}

		case ReservationFulfilled:
			if i, ok := index[e.ReservationID]; ok {
				reservations[i].Apply(e)
			}
		}
	}

	return reservations
}
