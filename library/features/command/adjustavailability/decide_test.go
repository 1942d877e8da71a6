package adjustavailability_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/schoollibrary/lendingengine/library/features/command/adjustavailability"
	"github.com/schoollibrary/lendingengine/library/shared/core"
)

func Test_Decide(t *testing.T) {
	now := time.Now()
	added := core.BuildBookAddedToCatalog("b-1", "Momo", "Michael Ende", "", "Fantasy", 2, now.Add(-time.Hour))
	lent := core.BookAvailabilityAdjusted{BookID: "b-1", Delta: -1, Reason: core.AdjustmentIssue, OccurredAt: now.Add(-time.Minute)}

	testCases := []struct {
		description string
		history     core.DomainEvents
		delta       int
		expectedErr error
	}{
		{description: "decrement with copies left", history: core.DomainEvents{added}, delta: -1},
		{description: "increment after a loan", history: core.DomainEvents{added, lent}, delta: 1},
		{description: "increment beyond total copies", history: core.DomainEvents{added}, delta: 1, expectedErr: core.ErrOutOfRange},
		{description: "delta of two", history: core.DomainEvents{added}, delta: -2, expectedErr: core.ErrOutOfRange},
		{description: "unknown book", history: core.DomainEvents{}, delta: -1, expectedErr: core.ErrNotFound},
		{
			description: "removed book",
			history:     core.DomainEvents{added, core.BuildBookRemovedFromCatalog("b-1", "", now)},
			delta:       -1,
			expectedErr: core.ErrNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			// act
			result := adjustavailability.Decide(tc.history, adjustavailability.BuildCommand("b-1", tc.delta, now))

			// assert
			if tc.expectedErr != nil {
				assert.ErrorIs(t, result.HasError(), tc.expectedErr)
				assert.IsType(t, core.CommandRejected{}, result.Events[0])

				return
			}

			assert.NoError(t, result.HasError())
			adjusted, ok := result.Events[0].(core.BookAvailabilityAdjusted)
			assert.True(t, ok)
			assert.Equal(t, tc.delta, adjusted.Delta)
			assert.Equal(t, core.AdjustmentManual, adjusted.Reason)
		})
	}
}
