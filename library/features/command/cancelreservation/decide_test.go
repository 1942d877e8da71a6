package cancelreservation_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/schoollibrary/lendingengine/library/features/command/cancelreservation"
	"github.com/schoollibrary/lendingengine/library/shared/core"
)

func Test_Decide(t *testing.T) {
	now := time.Now()
	requested := core.BuildReservationRequested("r-1", "b-1", "m-1", now.Add(-time.Hour))
	pending := core.ProjectReservation(core.DomainEvents{requested}, "r-1")
	cancelled := core.BuildReservationCancelled(pending, now.Add(-time.Minute))
	fulfilled := core.BuildReservationFulfilled(pending, "tx-1", now.Add(-time.Minute))

	testCases := []struct {
		description string
		history     core.DomainEvents
		byMemberID  string
		expectedErr error
	}{
		{description: "pending by requester", history: core.DomainEvents{requested}, byMemberID: "m-1"},
		{description: "unknown reservation", history: core.DomainEvents{}, byMemberID: "m-1", expectedErr: core.ErrNotFound},
		{description: "pending by someone else", history: core.DomainEvents{requested}, byMemberID: "m-2", expectedErr: core.ErrForbidden},
		{description: "already cancelled", history: core.DomainEvents{requested, cancelled}, byMemberID: "m-1", expectedErr: core.ErrInvalidState},
		{description: "already fulfilled", history: core.DomainEvents{requested, fulfilled}, byMemberID: "m-1", expectedErr: core.ErrInvalidState},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			// act
			result := cancelreservation.Decide(tc.history, cancelreservation.BuildCommand("r-1", tc.byMemberID, now))

			// assert
			if tc.expectedErr != nil {
				assert.ErrorIs(t, result.HasError(), tc.expectedErr)
				return
			}

			assert.NoError(t, result.HasError())
			assert.IsType(t, core.ReservationCancelled{}, result.Events[0])
		})
	}
}
