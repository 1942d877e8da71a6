package submitacquisition_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/schoollibrary/lendingengine/library/features/command/submitacquisition"
	"github.com/schoollibrary/lendingengine/library/shared/core"
)

var teacher = core.Member{ID: "t-1", Role: core.RoleTeacher, Name: "Ms. Frizzle"}

func Test_Decide_Success_StartsPending(t *testing.T) {
	// arrange
	now := time.Now()
	command := submitacquisition.BuildCommand("a-1", "The Hobbit", "J. R. R. Tolkien", "class reading", "t-1", now)

	// act
	result := submitacquisition.Decide(core.DomainEvents{}, command, teacher)

	// assert
	assert.NoError(t, result.HasError())
	acquisition := core.ProjectAcquisition(result.Events, "a-1")
	assert.Equal(t, core.AcquisitionStatusPending, acquisition.Status)
	assert.Equal(t, "class reading", acquisition.Reason)
	assert.Nil(t, acquisition.AcquiredDate)
}

func Test_Decide_Error_NotFound_WhenRequesterUnknown(t *testing.T) {
	// arrange
	command := submitacquisition.BuildCommand("a-1", "The Hobbit", "J. R. R. Tolkien", "", "t-404", time.Now())

	// act
	result := submitacquisition.Decide(core.DomainEvents{}, command, core.Member{})

	// assert
	assert.ErrorIs(t, result.HasError(), core.ErrNotFound)
}

func Test_Decide_Idempotent_WhenSubmittedBefore(t *testing.T) {
	// arrange
	now := time.Now()
	history := core.DomainEvents{
		core.BuildAcquisitionRequested("a-1", "The Hobbit", "J. R. R. Tolkien", "", "t-1", now.Add(-time.Hour)),
	}

	// act
	result := submitacquisition.Decide(history, submitacquisition.BuildCommand("a-1", "The Hobbit", "J. R. R. Tolkien", "", "t-1", now), teacher)

	// assert
	assert.NoError(t, result.HasError())
	assert.False(t, result.HasEventsToAppend())
}

func Test_Decide_Error_Conflict_WhenAcquisitionIDIsTaken(t *testing.T) {
	// arrange
	now := time.Now()
	history := core.DomainEvents{
		core.BuildAcquisitionRequested("a-1", "The Hobbit", "J. R. R. Tolkien", "", "t-2", now.Add(-time.Hour)),
	}

	// act
	result := submitacquisition.Decide(history, submitacquisition.BuildCommand("a-1", "The Hobbit", "J. R. R. Tolkien", "", "t-1", now), teacher)

	// assert
	assert.ErrorIs(t, result.HasError(), core.ErrConflict)
	assert.Len(t, result.Events, 1)
}
