package fulfillreservation_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/schoollibrary/lendingengine/library/features/command/fulfillreservation"
	"github.com/schoollibrary/lendingengine/library/shared/core"
)

var (
	student = core.Member{ID: "m-1", Role: core.RoleStudent, Name: "Arnold"}
	teacher = core.Member{ID: "m-1", Role: core.RoleTeacher, Name: "Ms. Frizzle"}
)

func Test_Decide_Success_IssuesWithLoanPeriodOfRequester(t *testing.T) {
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

	testCases := []struct {
		description     string
		requester       core.Member
		expectedDueDate time.Time
	}{
		{description: "student", requester: student, expectedDueDate: now.AddDate(0, 0, 14)},
		{description: "teacher", requester: teacher, expectedDueDate: now.AddDate(0, 0, 28)},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			// arrange
			history := givenPendingReservation(now, 1)

			// act
			result := fulfillreservation.Decide(
				history, fulfillreservation.BuildCommand("r-1", "tx-1", now), tc.requester, core.DefaultLoanPolicy())

			// assert
			assert.NoError(t, result.HasError())
			assert.Len(t, result.Events, 3)
			assert.IsType(t, core.BookAvailabilityAdjusted{}, result.Events[0])
			assert.IsType(t, core.ReservationFulfilled{}, result.Events[1])
			issued, ok := result.Events[2].(core.BookIssued)
			assert.True(t, ok)
			assert.Equal(t, "r-1", issued.ReservationID)
			assert.Equal(t, "tx-1", issued.TransactionID)
			assert.Equal(t, tc.expectedDueDate, issued.DueDate)
		})
	}
}

func Test_Decide_Error_Unavailable_WhenNoCopyLeft(t *testing.T) {
	// arrange
	now := time.Now()
	history := givenPendingReservation(now, 1)
	history = append(history,
		core.BookAvailabilityAdjusted{BookID: "b-1", Delta: -1, Reason: core.AdjustmentIssue, OccurredAt: now.Add(-time.Second)})

	// act
	result := fulfillreservation.Decide(history, fulfillreservation.BuildCommand("r-1", "tx-1", now), student, core.DefaultLoanPolicy())

	// assert
	assert.ErrorIs(t, result.HasError(), core.ErrUnavailable)
	assert.Len(t, result.Events, 1)
	assert.IsType(t, core.CommandRejected{}, result.Events[0])
}

func Test_Decide_Error_InvalidState_WhenNotPending(t *testing.T) {
	// arrange
	now := time.Now()
	history := givenPendingReservation(now, 1)
	reservation := core.ProjectReservation(history, "r-1")
	history = append(history, core.BuildReservationCancelled(reservation, now.Add(-time.Second)))

	// act
	result := fulfillreservation.Decide(history, fulfillreservation.BuildCommand("r-1", "tx-1", now), student, core.DefaultLoanPolicy())

	// assert
	assert.ErrorIs(t, result.HasError(), core.ErrInvalidState)
	assert.ErrorContains(t, result.HasError(), "status Cancelled")
}

func Test_Decide_Error_NotFound(t *testing.T) {
	now := time.Now()

	testCases := []struct {
		description string
		history     core.DomainEvents
		requester   core.Member
	}{
		{description: "unknown reservation", history: core.DomainEvents{}, requester: student},
		{description: "requester left the directory", history: givenPendingReservation(now, 1), requester: core.Member{}},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			// act
			result := fulfillreservation.Decide(
				tc.history, fulfillreservation.BuildCommand("r-1", "tx-1", now), tc.requester, core.DefaultLoanPolicy())

			// assert
			assert.ErrorIs(t, result.HasError(), core.ErrNotFound)
		})
	}
}

func Test_Decide_Idempotent_WhenFulfilledIntoSameTransaction(t *testing.T) {
	// arrange
	now := time.Now()
	history := givenPendingReservation(now, 1)
	reservation := core.ProjectReservation(history, "r-1")
	history = append(history, core.BuildReservationFulfilled(reservation, "tx-1", now.Add(-time.Second)))

	// act
	same := fulfillreservation.Decide(history, fulfillreservation.BuildCommand("r-1", "tx-1", now), student, core.DefaultLoanPolicy())
	other := fulfillreservation.Decide(history, fulfillreservation.BuildCommand("r-1", "tx-2", now), student, core.DefaultLoanPolicy())

	// assert
	assert.NoError(t, same.HasError())
	assert.False(t, same.HasEventsToAppend())
	assert.ErrorIs(t, other.HasError(), core.ErrInvalidState)
}

func givenPendingReservation(now time.Time, totalCopies int) core.DomainEvents {
	return core.DomainEvents{
		core.BuildBookAddedToCatalog("b-1", "Momo", "Michael Ende", "", "Fantasy", totalCopies, now.Add(-time.Hour)),
		core.BuildReservationRequested("r-1", "b-1", "m-1", now.Add(-time.Minute)),
	}
}

func Test_Decide_Error_Conflict_WhenTransactionIDIsTakenByAnotherLoan(t *testing.T) {
	// arrange
	now := time.Now()
	history := append(givenPendingReservation(now, 1),
		core.BuildBookAddedToCatalog("b-2", "Krabat", "Otfried Preussler", "", "Fantasy", 1, now.Add(-time.Hour)),
		core.BuildBookIssued("tx-1", "b-2", core.Member{ID: "m-2", Role: core.RoleStudent}, now.AddDate(0, 0, 14), "", now.Add(-time.Second)),
	)

	// act
	result := fulfillreservation.Decide(history, fulfillreservation.BuildCommand("r-1", "tx-1", now), student, core.DefaultLoanPolicy())

	// assert
	assert.ErrorIs(t, result.HasError(), core.ErrConflict)
	assert.Equal(t, core.ReservationStatusPending, core.ProjectReservation(history, "r-1").Status)
}
