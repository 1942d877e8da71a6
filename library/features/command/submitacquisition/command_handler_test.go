package submitacquisition_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schoollibrary/lendingengine/library/directory/memdirectory"
	"github.com/schoollibrary/lendingengine/library/features/command/submitacquisition"
	"github.com/schoollibrary/lendingengine/library/shared/core"
	"github.com/schoollibrary/lendingengine/testutil/teststore"
)

func Test_CommandHandler_Handle(t *testing.T) {
	// setup
	store := teststore.NewSQLite(t)
	handler := submitacquisition.NewCommandHandler(store, memdirectory.New([]core.Member{teacher}, nil))
	ctx := context.Background()

	// act
	result, err := handler.Handle(ctx, submitacquisition.BuildCommand("a-1", "The Hobbit", "J. R. R. Tolkien", "", "t-1", time.Now()))

	// assert
	require.NoError(t, err)
	assert.Len(t, result.Events, 1)
	assert.Equal(t, core.AcquisitionStatusPending, core.ProjectAcquisition(teststore.History(t, store), "a-1").Status)
}
