package adjustavailability_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schoollibrary/lendingengine/library/features/command/adjustavailability"
	"github.com/schoollibrary/lendingengine/library/shared/core"
	"github.com/schoollibrary/lendingengine/testutil/teststore"
)

func Test_CommandHandler_Handle_KeepsAvailabilityWithinStock(t *testing.T) {
	// setup
	store := teststore.NewSQLite(t)
	handler := adjustavailability.NewCommandHandler(store)
	ctx := context.Background()
	now := time.Now()

	// arrange
	teststore.Given(t, store, core.BuildBookAddedToCatalog("b-1", "Momo", "Michael Ende", "", "Fantasy", 1, now))

	// act
	_, firstErr := handler.Handle(ctx, adjustavailability.BuildCommand("b-1", -1, now))
	_, secondErr := handler.Handle(ctx, adjustavailability.BuildCommand("b-1", -1, now))

	// assert
	require.NoError(t, firstErr)
	assert.ErrorIs(t, secondErr, core.ErrOutOfRange)
	book := core.ProjectBook(teststore.History(t, store), "b-1")
	assert.Equal(t, 0, book.AvailableCopies)
	assert.Equal(t, 1, book.OutstandingCopies())
}
