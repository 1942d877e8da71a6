package engine

import (
	"context"

	"github.com/schoollibrary/lendingengine/library/features/command/cancelreservation"
	"github.com/schoollibrary/lendingengine/library/features/command/fulfillreservation"
	"github.com/schoollibrary/lendingengine/library/features/command/requestreservation"
	"github.com/schoollibrary/lendingengine/library/features/query/pendingreservations"
	"github.com/schoollibrary/lendingengine/library/features/query/reservationdetails"
	"github.com/schoollibrary/lendingengine/library/features/query/transactiondetails"
	"github.com/schoollibrary/lendingengine/library/shared/core"
)

// NewReservation describes a member queueing up for a book. ReservationID is generated when empty.
type NewReservation struct {
	ReservationID core.ReservationIDString
	BookID        core.BookIDString
	MemberID      core.MemberIDString
}

// RequestReservation queues a member up for a book, also while copies are available.
func (e *Engine) RequestReservation(ctx context.Context, reservation NewReservation) (core.Reservation, error) {
	reservationID := e.idOr(reservation.ReservationID)

	command := requestreservation.BuildCommand(reservationID, reservation.BookID, reservation.MemberID, e.now())
	if _, err := e.requestReservation.Handle(ctx, command); err != nil {
		return core.Reservation{}, err
	}

	return e.Reservation(ctx, reservationID)
}

// CancelReservation withdraws a pending reservation on behalf of its requester.
func (e *Engine) CancelReservation(
	ctx context.Context,
	reservationID core.ReservationIDString,
	byMemberID core.MemberIDString,
) (core.Reservation, error) {

	command := cancelreservation.BuildCommand(reservationID, byMemberID, e.now())
	if _, err := e.cancelReservation.Handle(ctx, command); err != nil {
		return core.Reservation{}, err
	}

	return e.Reservation(ctx, reservationID)
}

// FulfillReservation issues a copy to the requester of a pending reservation in one atomic step.
// transactionID is generated when empty. Repeating a fulfillment with the same transactionID is a no-op.
func (e *Engine) FulfillReservation(
	ctx context.Context,
	reservationID core.ReservationIDString,
	transactionID core.TransactionIDString,
) (core.Transaction, error) {

	command := fulfillreservation.BuildCommand(reservationID, e.idOr(transactionID), e.now())
	if _, err := e.fulfillReservation.Handle(ctx, command); err != nil {
		return core.Transaction{}, err
	}

	reservation, err := e.Reservation(ctx, reservationID)
	if err != nil {
		return core.Transaction{}, err
	}

	details, err := e.transactionDetails.Handle(ctx, transactiondetails.BuildQuery(reservation.TransactionID))
	if err != nil {
		return core.Transaction{}, err
	}

	return details.Transaction, nil
}

// Reservation returns the current state of the reservation with reservationID.
func (e *Engine) Reservation(ctx context.Context, reservationID core.ReservationIDString) (core.Reservation, error) {
	return e.reservationDetails.Handle(ctx, reservationdetails.BuildQuery(reservationID))
}

// PendingReservations lists the queue of a book, oldest first.
func (e *Engine) PendingReservations(
	ctx context.Context,
	bookID core.BookIDString,
) (pendingreservations.PendingReservations, error) {

	return e.pendingReservations.Handle(ctx, pendingreservations.BuildQuery(bookID, e.now()))
}
