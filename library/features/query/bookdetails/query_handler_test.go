package bookdetails_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schoollibrary/lendingengine/library/features/query/bookdetails"
	"github.com/schoollibrary/lendingengine/library/shared/core"
	"github.com/schoollibrary/lendingengine/testutil/teststore"
)

func Test_QueryHandler_Handle_ReturnsCurrentAvailability(t *testing.T) {
	// setup
	store := teststore.NewSQLite(t)
	handler := bookdetails.NewQueryHandler(store)
	now := time.Now()

	// arrange
	teststore.Given(t, store,
		core.BuildBookAddedToCatalog("b-1", "Momo", "Michael Ende", "978-3-522-20210-8", "Fantasy", 3, now),
		core.BookAvailabilityAdjusted{BookID: "b-1", Delta: -1, Reason: core.AdjustmentIssue, OccurredAt: now},
		core.BuildBookAddedToCatalog("b-2", "Matilda", "Roald Dahl", "", "Fiction", 1, now),
	)

	// act
	book, err := handler.Handle(context.Background(), bookdetails.BuildQuery("b-1"))

	// assert
	require.NoError(t, err)
	assert.Equal(t, "Momo", book.Title)
	assert.Equal(t, 3, book.TotalCopies)
	assert.Equal(t, 2, book.AvailableCopies)
}

func Test_QueryHandler_Handle_NotFound(t *testing.T) {
	// setup
	store := teststore.NewSQLite(t)
	handler := bookdetails.NewQueryHandler(store)
	now := time.Now()

	// arrange
	teststore.Given(t, store,
		core.BuildBookAddedToCatalog("b-1", "Momo", "Michael Ende", "", "Fantasy", 1, now),
		core.BuildBookRemovedFromCatalog("b-1", "", now),
	)

	// act
	_, removedErr := handler.Handle(context.Background(), bookdetails.BuildQuery("b-1"))
	_, unknownErr := handler.Handle(context.Background(), bookdetails.BuildQuery("b-404"))

	// assert
	assert.ErrorIs(t, removedErr, core.ErrNotFound)
	assert.ErrorIs(t, unknownErr, core.ErrNotFound)
}
