package addbooktoreadinglist_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schoollibrary/lendingengine/library/features/command/addbooktoreadinglist"
	"github.com/schoollibrary/lendingengine/library/shared/core"
	"github.com/schoollibrary/lendingengine/testutil/teststore"
)

func Test_CommandHandler_Handle_SameBookTwice(t *testing.T) {
	// setup
	store := teststore.NewSQLite(t)
	handler := addbooktoreadinglist.NewCommandHandler(store)
	ctx := context.Background()
	now := time.Now()

	// arrange
	teststore.Given(t, store,
		core.BuildBookAddedToCatalog("b-1", "Momo", "Michael Ende", "", "Fantasy", 1, now),
		core.BuildBookAddedToCatalog("b-2", "Matilda", "Roald Dahl", "", "Fiction", 1, now),
		core.BuildReadingListCreated("l-1", "Summer", "t-1", "s-1", now),
	)

	// act
	_, firstErr := handler.Handle(ctx, addbooktoreadinglist.BuildCommand("l-1", "b-2", "t-1", now))
	_, secondErr := handler.Handle(ctx, addbooktoreadinglist.BuildCommand("l-1", "b-1", "t-1", now))
	_, duplicateErr := handler.Handle(ctx, addbooktoreadinglist.BuildCommand("l-1", "b-2", "t-1", now))

	// assert
	require.NoError(t, firstErr)
	require.NoError(t, secondErr)
	assert.ErrorIs(t, duplicateErr, core.ErrDuplicate)
	assert.Equal(t, []string{"b-2", "b-1"}, core.ProjectReadingList(teststore.History(t, store), "l-1").BookIDs)
}
