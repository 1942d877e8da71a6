package acquisitiondetails_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schoollibrary/lendingengine/library/features/query/acquisitiondetails"
	"github.com/schoollibrary/lendingengine/library/shared/core"
	"github.com/schoollibrary/lendingengine/testutil/teststore"
)

func Test_QueryHandler_Handle(t *testing.T) {
	// setup
	store := teststore.NewSQLite(t)
	handler := acquisitiondetails.NewQueryHandler(store)
	ctx := context.Background()
	now := time.Now()

	// arrange
	teststore.Given(t, store,
		core.BuildAcquisitionRequested("a-1", "Momo", "Michael Ende", "class reading", "m-2", now),
		core.BuildAcquisitionRejected("a-1", now),
	)

	// act
	acquisition, err := handler.Handle(ctx, acquisitiondetails.BuildQuery("a-1"))
	_, notFoundErr := handler.Handle(ctx, acquisitiondetails.BuildQuery("a-404"))

	// assert
	require.NoError(t, err)
	assert.Equal(t, core.AcquisitionStatusRejected, acquisition.Status)
	assert.Equal(t, "class reading", acquisition.Reason)
	assert.Nil(t, acquisition.AcquiredDate)
	assert.ErrorIs(t, notFoundErr, core.ErrNotFound)
}
