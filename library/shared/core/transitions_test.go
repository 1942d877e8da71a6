package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/schoollibrary/lendingengine/library/shared/core"
)

func Test_StatusTransitions(t *testing.T) {
	// transactions
	assert.True(t, core.TransactionStatusIssued.CanTransitionTo(core.TransactionStatusReturned))
	assert.False(t, core.TransactionStatusReturned.CanTransitionTo(core.TransactionStatusReturned))
	assert.False(t, core.TransactionStatusReturned.CanTransitionTo(core.TransactionStatusIssued))

	// reservations
	assert.True(t, core.ReservationStatusPending.CanTransitionTo(core.ReservationStatusFulfilled))
	assert.True(t, core.ReservationStatusPending.CanTransitionTo(core.ReservationStatusCancelled))
	assert.False(t, core.ReservationStatusCancelled.CanTransitionTo(core.ReservationStatusCancelled))
	assert.False(t, core.ReservationStatusFulfilled.CanTransitionTo(core.ReservationStatusCancelled))

	// acquisitions
	assert.True(t, core.AcquisitionStatusPending.CanTransitionTo(core.AcquisitionStatusApproved))
	assert.True(t, core.AcquisitionStatusPending.CanTransitionTo(core.AcquisitionStatusRejected))
	assert.False(t, core.AcquisitionStatusApproved.CanTransitionTo(core.AcquisitionStatusRejected))
	assert.False(t, core.AcquisitionStatusRejected.CanTransitionTo(core.AcquisitionStatusApproved))
}
