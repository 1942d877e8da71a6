package core

import (
	"time"
)

const (
	ReservationRequestedEventType = "ReservationRequested"
	ReservationCancelledEventType = "ReservationCancelled"
	ReservationFulfilledEventType = "ReservationFulfilled"
)

// ReservationRequested represents when a member queues up for a book.
type ReservationRequested struct {
	ReservationID ReservationIDString
	BookID        BookIDString
	MemberID      MemberIDString
	OccurredAt    OccurredAt
}

// BuildReservationRequested creates a new ReservationRequested event.
func BuildReservationRequested(
	reservationID ReservationIDString,
	bookID BookIDString,
	memberID MemberIDString,
	occurredAt time.Time,
) ReservationRequested {

	return ReservationRequested{
		ReservationID: reservationID,
		BookID:        bookID,
		MemberID:      memberID,
		OccurredAt:    ToOccurredAt(occurredAt),
	}
}

func (e ReservationRequested) EventType() EventTypeString { return ReservationRequestedEventType }
func (e ReservationRequested) HasOccurredAt() time.Time   { return e.OccurredAt }
func (e ReservationRequested) IsErrorEvent() bool         { return false }

// ReservationCancelled represents when the requester withdraws a pending reservation.
type ReservationCancelled struct {
	ReservationID ReservationIDString
	BookID        BookIDString
	MemberID      MemberIDString
	OccurredAt    OccurredAt
}

// BuildReservationCancelled creates a new ReservationCancelled event.
func BuildReservationCancelled(reservation Reservation, occurredAt time.Time) ReservationCancelled {
	return ReservationCancelled{
		ReservationID: reservation.ID,
		BookID:        reservation.BookID,
		MemberID:      reservation.MemberID,
		OccurredAt:    ToOccurredAt(occurredAt),
	}
}

func (e ReservationCancelled) EventType() EventTypeString { return ReservationCancelledEventType }
func (e ReservationCancelled) HasOccurredAt() time.Time   { return e.OccurredAt }
func (e ReservationCancelled) IsErrorEvent() bool         { return false }

// ReservationFulfilled represents when a pending reservation turned into the Transaction TransactionID.
type ReservationFulfilled struct {
	ReservationID ReservationIDString
	BookID        BookIDString
	MemberID      MemberIDString
	TransactionID TransactionIDString
	OccurredAt    OccurredAt
}

// BuildReservationFulfilled creates a new ReservationFulfilled event.
func BuildReservationFulfilled(
	reservation Reservation,
	transactionID TransactionIDString,
	occurredAt time.Time,
) ReservationFulfilled {

	return ReservationFulfilled{
		ReservationID: reservation.ID,
		BookID:        reservation.BookID,
		MemberID:      reservation.MemberID,
		TransactionID: transactionID,
		OccurredAt:    ToOccurredAt(occurredAt),
	}
}

func (e ReservationFulfilled) EventType() EventTypeString { return ReservationFulfilledEventType }
func (e ReservationFulfilled) HasOccurredAt() time.Time   { return e.OccurredAt }
func (e ReservationFulfilled) IsErrorEvent() bool         { return false }
