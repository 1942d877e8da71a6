package addbook_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/schoollibrary/lendingengine/library/features/command/addbook"
	"github.com/schoollibrary/lendingengine/library/shared/core"
)

func Test_Decide_Success_WhenBookIsNew(t *testing.T) {
	// arrange
	now := time.Now()
	command := addbook.BuildCommand("b-1", "Matilda", "Roald Dahl", "978-0-14-241037-1", "Fiction", 3, now)

	// act
	result := addbook.Decide(core.DomainEvents{}, command)

	// assert
	assert.NoError(t, result.HasError())
	assert.Len(t, result.Events, 1)
	added, ok := result.Events[0].(core.BookAddedToCatalog)
	assert.True(t, ok)
	assert.Equal(t, "b-1", added.BookID)
	assert.Equal(t, 3, added.TotalCopies)
}

func Test_Decide_Idempotent_WhenBookWasAddedBefore(t *testing.T) {
	// arrange
	now := time.Now()
	history := core.DomainEvents{
		core.BuildBookAddedToCatalog("b-1", "Matilda", "Roald Dahl", "", "Fiction", 3, now.Add(-time.Hour)),
	}
	command := addbook.BuildCommand("b-1", "Matilda", "Roald Dahl", "", "Fiction", 3, now)

	// act
	result := addbook.Decide(history, command)

	// assert
	assert.False(t, result.HasEventsToAppend())
	assert.NoError(t, result.HasError())
}

func Test_Decide_Error_OutOfRange_WhenNoCopies(t *testing.T) {
	// arrange
	command := addbook.BuildCommand("b-1", "Matilda", "Roald Dahl", "", "Fiction", 0, time.Now())

	// act
	result := addbook.Decide(core.DomainEvents{}, command)

	// assert
	assert.ErrorIs(t, result.HasError(), core.ErrOutOfRange)
	assertRejected(t, result, "OutOfRange")
}

func Test_Decide_Error_Duplicate_WhenISBNIsCatalogued(t *testing.T) {
	// arrange
	now := time.Now()
	history := core.DomainEvents{
		core.BuildBookAddedToCatalog("b-1", "Matilda", "Roald Dahl", "978-0-14-241037-1", "Fiction", 3, now.Add(-time.Hour)),
	}
	command := addbook.BuildCommand("b-2", "Matilda", "Roald Dahl", "978-0-14-241037-1", "Fiction", 1, now)

	// act
	result := addbook.Decide(history, command)

	// assert
	assert.ErrorIs(t, result.HasError(), core.ErrDuplicate)
	assert.ErrorIs(t, result.HasError(), core.ErrConflict)
	assertRejected(t, result, "Duplicate")
}

func Test_Decide_Success_WhenISBNWasFreedByRemoval(t *testing.T) {
	// arrange
	now := time.Now()
	history := core.DomainEvents{
		core.BuildBookAddedToCatalog("b-1", "Matilda", "Roald Dahl", "978-0-14-241037-1", "Fiction", 3, now.Add(-2*time.Hour)),
		core.BuildBookRemovedFromCatalog("b-1", "978-0-14-241037-1", now.Add(-time.Hour)),
	}
	command := addbook.BuildCommand("b-2", "Matilda", "Roald Dahl", "978-0-14-241037-1", "Fiction", 1, now)

	// act
	result := addbook.Decide(history, command)

	// assert
	assert.NoError(t, result.HasError())
	assert.True(t, result.HasEventsToAppend())
}

func Test_Decide_Error_Conflict_WhenBookIDIsTaken(t *testing.T) {
	now := time.Now()
	added := core.BuildBookAddedToCatalog("b-1", "Matilda", "Roald Dahl", "", "Fiction", 3, now.Add(-2*time.Hour))

	testCases := []struct {
		description string
		history     core.DomainEvents
		command     addbook.Command
	}{
		{
			description: "other title",
			history:     core.DomainEvents{added},
			command:     addbook.BuildCommand("b-1", "The BFG", "Roald Dahl", "", "Fiction", 3, now),
		},
		{
			description: "other number of copies",
			history:     core.DomainEvents{added},
			command:     addbook.BuildCommand("b-1", "Matilda", "Roald Dahl", "", "Fiction", 5, now),
		},
		{
			description: "book was removed",
			history:     core.DomainEvents{added, core.BuildBookRemovedFromCatalog("b-1", "", now.Add(-time.Hour))},
			command:     addbook.BuildCommand("b-1", "Matilda", "Roald Dahl", "", "Fiction", 3, now),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			// act
			result := addbook.Decide(tc.history, tc.command)

			// assert
			assert.ErrorIs(t, result.HasError(), core.ErrConflict)
			assert.NotErrorIs(t, result.HasError(), core.ErrDuplicate)
			assertRejected(t, result, "Conflict")
		})
	}
}

func assertRejected(t *testing.T, result core.DecisionResult, errorKind string) {
	t.Helper()

	assert.Len(t, result.Events, 1)
	rejected, ok := result.Events[0].(core.CommandRejected)
	assert.True(t, ok, "expected a CommandRejected event")
	assert.Equal(t, errorKind, rejected.ErrorKind)
	assert.True(t, rejected.IsErrorEvent())
}
