package reservationdetails_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schoollibrary/lendingengine/library/features/query/reservationdetails"
	"github.com/schoollibrary/lendingengine/library/shared/core"
	"github.com/schoollibrary/lendingengine/testutil/teststore"
)

func Test_QueryHandler_Handle(t *testing.T) {
	// setup
	store := teststore.NewSQLite(t)
	handler := reservationdetails.NewQueryHandler(store)
	ctx := context.Background()
	now := time.Now()

	// arrange
	requested := core.BuildReservationRequested("r-1", "b-1", "m-1", now)
	teststore.Given(t, store,
		requested,
		core.BuildReservationFulfilled(core.Reservation{ID: "r-1", BookID: "b-1", MemberID: "m-1"}, "tx-1", now),
	)

	// act
	reservation, err := handler.Handle(ctx, reservationdetails.BuildQuery("r-1"))
	_, notFoundErr := handler.Handle(ctx, reservationdetails.BuildQuery("r-404"))

	// assert
	require.NoError(t, err)
	assert.Equal(t, core.ReservationStatusFulfilled, reservation.Status)
	assert.Equal(t, "tx-1", reservation.TransactionID)
	assert.True(t, requested.OccurredAt.Equal(reservation.RequestDate))
	assert.ErrorIs(t, notFoundErr, core.ErrNotFound)
}
