package requestreservation_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/schoollibrary/lendingengine/library/features/command/requestreservation"
	"github.com/schoollibrary/lendingengine/library/shared/core"
)

var student = core.Member{ID: "m-1", Role: core.RoleStudent, Name: "Arnold"}

func Test_Decide_Success_EvenWhenCopiesAreAvailable(t *testing.T) {
	// arrange
	now := time.Now()
	history := core.DomainEvents{
		core.BuildBookAddedToCatalog("b-1", "Momo", "Michael Ende", "", "Fantasy", 2, now.Add(-time.Hour)),
	}

	// act
	result := requestreservation.Decide(history, requestreservation.BuildCommand("r-1", "b-1", "m-1", now), student)

	// assert
	assert.NoError(t, result.HasError())
	requested, ok := result.Events[0].(core.ReservationRequested)
	assert.True(t, ok)
	assert.Equal(t, "r-1", requested.ReservationID)
	assert.Equal(t, "m-1", requested.MemberID)
}

func Test_Decide_Error_Duplicate_WhenMemberHasPendingReservation(t *testing.T) {
	// arrange
	now := time.Now()
	history := core.DomainEvents{
		core.BuildBookAddedToCatalog("b-1", "Momo", "Michael Ende", "", "Fantasy", 1, now.Add(-time.Hour)),
		core.BuildReservationRequested("r-1", "b-1", "m-1", now.Add(-time.Minute)),
	}

	// act
	result := requestreservation.Decide(history, requestreservation.BuildCommand("r-2", "b-1", "m-1", now), student)

	// assert
	assert.ErrorIs(t, result.HasError(), core.ErrDuplicate)
	assert.ErrorContains(t, result.HasError(), "reservation r-1 (status Pending)")
}

func Test_Decide_Success_AfterPreviousReservationWasCancelled(t *testing.T) {
	// arrange
	now := time.Now()
	requested := core.BuildReservationRequested("r-1", "b-1", "m-1", now.Add(-time.Minute))
	history := core.DomainEvents{
		core.BuildBookAddedToCatalog("b-1", "Momo", "Michael Ende", "", "Fantasy", 1, now.Add(-time.Hour)),
		requested,
		core.BuildReservationCancelled(core.ProjectReservation(core.DomainEvents{requested}, "r-1"), now.Add(-time.Second)),
	}

	// act
	result := requestreservation.Decide(history, requestreservation.BuildCommand("r-2", "b-1", "m-1", now), student)

	// assert
	assert.NoError(t, result.HasError())
	assert.True(t, result.HasEventsToAppend())
}

func Test_Decide_Error_NotFound(t *testing.T) {
	now := time.Now()
	catalogued := core.DomainEvents{core.BuildBookAddedToCatalog("b-1", "Momo", "Michael Ende", "", "Fantasy", 1, now.Add(-time.Hour))}

	testCases := []struct {
		description string
		history     core.DomainEvents
		member      core.Member
		entity      string
	}{
		{description: "unknown member", history: catalogued, member: core.Member{}, entity: "member m-1"},
		{description: "unknown book", history: core.DomainEvents{}, member: student, entity: "book b-1"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			// act
			result := requestreservation.Decide(tc.history, requestreservation.BuildCommand("r-1", "b-1", "m-1", now), tc.member)

			// assert
			assert.ErrorIs(t, result.HasError(), core.ErrNotFound)
			assert.ErrorContains(t, result.HasError(), tc.entity)
		})
	}
}

func Test_Decide_Idempotent_WhenReservationExists(t *testing.T) {
	// arrange
	now := time.Now()
	history := core.DomainEvents{
		core.BuildBookAddedToCatalog("b-1", "Momo", "Michael Ende", "", "Fantasy", 1, now.Add(-time.Hour)),
		core.BuildReservationRequested("r-1", "b-1", "m-1", now.Add(-time.Minute)),
	}

	// act
	result := requestreservation.Decide(history, requestreservation.BuildCommand("r-1", "b-1", "m-1", now), student)

	// assert
	assert.NoError(t, result.HasError())
	assert.False(t, result.HasEventsToAppend())
}

func Test_Decide_Error_Conflict_WhenReservationIDIsTaken(t *testing.T) {
	now := time.Now()

	testCases := []struct {
		description string
		requested   core.ReservationRequested
	}{
		{description: "reservation of another book", requested: core.BuildReservationRequested("r-1", "b-2", "m-1", now.Add(-time.Minute))},
		{description: "reservation of another member", requested: core.BuildReservationRequested("r-1", "b-1", "m-2", now.Add(-time.Minute))},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			// arrange
			history := core.DomainEvents{
				core.BuildBookAddedToCatalog("b-1", "Momo", "Michael Ende", "", "Fantasy", 1, now.Add(-time.Hour)),
				tc.requested,
			}

			// act
			result := requestreservation.Decide(history, requestreservation.BuildCommand("r-1", "b-1", "m-1", now), student)

			// assert
			assert.ErrorIs(t, result.HasError(), core.ErrConflict)
		})
	}
}
