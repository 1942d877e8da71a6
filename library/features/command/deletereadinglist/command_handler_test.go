package deletereadinglist_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schoollibrary/lendingengine/library/features/command/deletereadinglist"
	"github.com/schoollibrary/lendingengine/library/shared/core"
	"github.com/schoollibrary/lendingengine/testutil/teststore"
)

func Test_CommandHandler_Handle(t *testing.T) {
	// setup
	store := teststore.NewSQLite(t)
	handler := deletereadinglist.NewCommandHandler(store)
	ctx := context.Background()
	now := time.Now()

	// arrange
	teststore.Given(t, store, core.BuildReadingListCreated("l-1", "Summer", "t-1", "s-1", now))

	// act
	_, forbiddenErr := handler.Handle(ctx, deletereadinglist.BuildCommand("l-1", "t-2", now))
	_, err := handler.Handle(ctx, deletereadinglist.BuildCommand("l-1", "t-1", now))
	_, againErr := handler.Handle(ctx, deletereadinglist.BuildCommand("l-1", "t-1", now))

	// assert
	assert.ErrorIs(t, forbiddenErr, core.ErrForbidden)
	require.NoError(t, err)
	assert.ErrorIs(t, againErr, core.ErrNotFound)
	assert.False(t, core.ProjectReadingList(teststore.History(t, store), "l-1").IsActive())
}
