package assessedfines_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schoollibrary/lendingengine/library/features/query/assessedfines"
	"github.com/schoollibrary/lendingengine/library/shared/core"
	"github.com/schoollibrary/lendingengine/testutil/teststore"
)

func Test_QueryHandler_Handle(t *testing.T) {
	// setup
	store := teststore.NewSQLite(t)
	handler := assessedfines.NewQueryHandler(store)
	ctx := context.Background()
	now := time.Now()
	dueDate := now.AddDate(0, 0, 14)

	// arrange
	teststore.Given(t, store,
		core.BuildFineAssessed("fee-1", core.Transaction{ID: "tx-1", BookID: "b-1", MemberID: "m-1"}, 15, dueDate, now),
		core.BuildFineAssessed("fee-2", core.Transaction{ID: "tx-2", BookID: "b-2", MemberID: "m-2"}, 5, dueDate, now),
		core.BuildFineAssessed("fee-3", core.Transaction{ID: "tx-3", BookID: "b-1", MemberID: "m-1"}, 30, dueDate, now),
	)

	// act
	memberFines, memberErr := handler.Handle(ctx, assessedfines.BuildQuery("m-1"))
	allFines, allErr := handler.Handle(ctx, assessedfines.BuildQuery(""))

	// assert
	require.NoError(t, memberErr)
	require.NoError(t, allErr)
	assert.Equal(t, 2, memberFines.Count)
	assert.Equal(t, 45, memberFines.TotalAmount)
	assert.Equal(t, "fee-1", memberFines.Fees[0].ID)
	assert.Equal(t, core.FeeTypeLibraryFine, memberFines.Fees[0].FeeType)
	assert.Equal(t, core.FeeStatusUnpaid, memberFines.Fees[0].Status)
	assert.Equal(t, 3, allFines.Count)
	assert.Equal(t, 50, allFines.TotalAmount)
}
