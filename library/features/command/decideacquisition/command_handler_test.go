package decideacquisition_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schoollibrary/lendingengine/library/features/command/decideacquisition"
	"github.com/schoollibrary/lendingengine/library/shared/core"
	"github.com/schoollibrary/lendingengine/testutil/teststore"
)

func Test_CommandHandler_Handle_ApprovalIsTerminal(t *testing.T) {
	// setup
	store := teststore.NewSQLite(t)
	handler := decideacquisition.NewCommandHandler(store)
	ctx := context.Background()
	now := time.Now()

	// arrange
	teststore.Given(t, store, core.BuildAcquisitionRequested("a-1", "The Hobbit", "J. R. R. Tolkien", "", "t-1", now))

	// act
	_, err := handler.Handle(ctx, decideacquisition.BuildCommand("a-1", true, now))
	_, secondErr := handler.Handle(ctx, decideacquisition.BuildCommand("a-1", false, now))

	// assert
	require.NoError(t, err)
	assert.ErrorIs(t, secondErr, core.ErrInvalidState)
	history := teststore.History(t, store)
	acquisition := core.ProjectAcquisition(history, "a-1")
	assert.Equal(t, core.AcquisitionStatusApproved, acquisition.Status)
	assert.NotNil(t, acquisition.AcquiredDate)
	assert.Empty(t, teststore.EventsOfType(t, store, core.BookAddedToCatalogEventType))
}
