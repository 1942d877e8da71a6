package core

import (
	"slices"
)

// TransactionStatus is the lifecycle state of a loan.
type TransactionStatus string

// ReservationStatus is the lifecycle state of a reservation.
type ReservationStatus string

// AcquisitionStatus is the lifecycle state of a purchase request.
type AcquisitionStatus string

const (
	TransactionStatusIssued   TransactionStatus = "Issued"
	TransactionStatusReturned TransactionStatus = "Returned"

	ReservationStatusPending   ReservationStatus = "Pending"
	ReservationStatusFulfilled ReservationStatus = "Fulfilled"
	ReservationStatusCancelled ReservationStatus = "Cancelled"

	AcquisitionStatusPending  AcquisitionStatus = "Pending"
	AcquisitionStatusApproved AcquisitionStatus = "Approved"
	AcquisitionStatusRejected AcquisitionStatus = "Rejected"
)

// The only legal status transitions. Everything else is rejected with ErrInvalidState.
var (
	transactionTransitions = map[TransactionStatus][]TransactionStatus{
		TransactionStatusIssued: {TransactionStatusReturned},
	}

	reservationTransitions = map[ReservationStatus][]ReservationStatus{
		ReservationStatusPending: {ReservationStatusFulfilled, ReservationStatusCancelled},
	}

	acquisitionTransitions = map[AcquisitionStatus][]AcquisitionStatus{
		AcquisitionStatusPending: {AcquisitionStatusApproved, AcquisitionStatusRejected},
	}
)

// CanTransitionTo reports whether a transaction may move from s to next.
func (s TransactionStatus) CanTransitionTo(next TransactionStatus) bool {
	return canTransition(transactionTransitions, s, next)
}

// CanTransitionTo reports whether a reservation may move from s to next.
func (s ReservationStatus) CanTransitionTo(next ReservationStatus) bool {
	return canTransition(reservationTransitions, s, next)
}

// CanTransitionTo reports whether an acquisition may move from s to next.
func (s AcquisitionStatus) CanTransitionTo(next AcquisitionStatus) bool {
	return canTransition(acquisitionTransitions, s, next)
}

func canTransition[S comparable](table map[S][]S, from S, to S) bool {
	return slices.Contains(table[from], to)
}
