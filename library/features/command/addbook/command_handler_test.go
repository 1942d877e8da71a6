package addbook_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schoollibrary/lendingengine/library/features/command/addbook"
	"github.com/schoollibrary/lendingengine/library/shared/core"
	"github.com/schoollibrary/lendingengine/library/shared/shell"
	"github.com/schoollibrary/lendingengine/testutil/teststore"
)

func Test_CommandHandler_Handle_Success(t *testing.T) {
	// setup
	store := teststore.NewSQLite(t)
	handler := addbook.NewCommandHandler(store)
	ctx := context.Background()

	// act
	result, err := handler.Handle(ctx, addbook.BuildCommand("b-1", "Momo", "Michael Ende", "", "Fantasy", 2, time.Now()))

	// assert
	require.NoError(t, err)
	assert.False(t, result.Idempotent)
	assert.Equal(t, 1, result.RetryAttempts)
	book := core.ProjectBook(teststore.History(t, store), "b-1")
	assert.Equal(t, 2, book.TotalCopies)
	assert.Equal(t, 2, book.AvailableCopies)
}

func Test_CommandHandler_Handle_IdempotentOnRepeat(t *testing.T) {
	// setup
	store := teststore.NewSQLite(t)
	handler := addbook.NewCommandHandler(store)
	ctx := context.Background()
	command := addbook.BuildCommand("b-1", "Momo", "Michael Ende", "", "Fantasy", 2, time.Now())

	// arrange
	_, err := handler.Handle(ctx, command)
	require.NoError(t, err)

	// act
	result, err := handler.Handle(ctx, command)

	// assert
	require.NoError(t, err)
	assert.True(t, result.Idempotent)
	assert.Len(t, teststore.EventsOfType(t, store, core.BookAddedToCatalogEventType), 1)
}

func Test_CommandHandler_Handle_RecordsRejection(t *testing.T) {
	// setup
	store := teststore.NewSQLite(t)
	handler := addbook.NewCommandHandler(store, addbook.WithRetryOptions(shell.WithMaxAttempts(2)))
	ctx := context.Background()

	// arrange
	_, err := handler.Handle(ctx, addbook.BuildCommand("b-1", "Momo", "Michael Ende", "978-3-522-20210-8", "Fantasy", 1, time.Now()))
	require.NoError(t, err)

	// act
	result, err := handler.Handle(ctx, addbook.BuildCommand("b-2", "Momo", "Michael Ende", "978-3-522-20210-8", "Fantasy", 1, time.Now()))

	// assert
	assert.ErrorIs(t, err, core.ErrDuplicate)
	assert.Equal(t, 1, result.RetryAttempts)
	assert.Len(t, teststore.EventsOfType(t, store, core.CommandRejectedEventType), 1)
	assert.False(t, core.ProjectBook(teststore.History(t, store), "b-2").IsCatalogued())
}

func Test_CommandHandler_Handle_RemovedBookIDIsConflict(t *testing.T) {
	// setup
	store := teststore.NewSQLite(t)
	handler := addbook.NewCommandHandler(store)
	ctx := context.Background()
	now := time.Now()

	// arrange
	teststore.Given(t, store,
		core.BuildBookAddedToCatalog("b-1", "Momo", "Michael Ende", "", "Fantasy", 2, now.Add(-time.Hour)),
		core.BuildBookRemovedFromCatalog("b-1", "", now.Add(-time.Minute)),
	)

	// act
	_, err := handler.Handle(ctx, addbook.BuildCommand("b-1", "Momo", "Michael Ende", "", "Fantasy", 2, now))

	// assert
	assert.ErrorIs(t, err, core.ErrConflict)
	assert.Len(t, teststore.EventsOfType(t, store, core.BookAddedToCatalogEventType), 1)
	assert.False(t, core.ProjectBook(teststore.History(t, store), "b-1").IsCatalogued())
}
