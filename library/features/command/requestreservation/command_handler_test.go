package requestreservation_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schoollibrary/lendingengine/library/directory/memdirectory"
	"github.com/schoollibrary/lendingengine/library/features/command/requestreservation"
	"github.com/schoollibrary/lendingengine/library/shared/core"
	"github.com/schoollibrary/lendingengine/testutil/teststore"
)

func Test_CommandHandler_Handle_OnePendingReservationPerMemberAndBook(t *testing.T) {
	// setup
	store := teststore.NewSQLite(t)
	directory := memdirectory.New([]core.Member{student}, nil)
	handler := requestreservation.NewCommandHandler(store, directory)
	ctx := context.Background()
	now := time.Now()

	// arrange
	teststore.Given(t, store, core.BuildBookAddedToCatalog("b-1", "Momo", "Michael Ende", "", "Fantasy", 1, now))

	// act
	_, firstErr := handler.Handle(ctx, requestreservation.BuildCommand("r-1", "b-1", "m-1", now))
	_, secondErr := handler.Handle(ctx, requestreservation.BuildCommand("r-2", "b-1", "m-1", now))

	// assert
	require.NoError(t, firstErr)
	assert.ErrorIs(t, secondErr, core.ErrDuplicate)
	reservations := core.ProjectReservations(teststore.History(t, store))
	assert.Len(t, reservations, 1)
	assert.Equal(t, core.ReservationStatusPending, reservations[0].Status)
}

func Test_CommandHandler_Handle_ReservationIDOfAnotherBookIsConflict(t *testing.T) {
	// setup
	store := teststore.NewSQLite(t)
	directory := memdirectory.New([]core.Member{student}, nil)
	handler := requestreservation.NewCommandHandler(store, directory)
	ctx := context.Background()
	now := time.Now()

	// arrange
	teststore.Given(t, store,
		core.BuildBookAddedToCatalog("b-A", "Momo", "Michael Ende", "", "Fantasy", 1, now),
		core.BuildBookAddedToCatalog("b-B", "Ronja", "Astrid Lindgren", "", "Fantasy", 1, now),
	)
	_, err := handler.Handle(ctx, requestreservation.BuildCommand("r-1", "b-A", student.ID, now))
	require.NoError(t, err)

	// act
	_, err = handler.Handle(ctx, requestreservation.BuildCommand("r-1", "b-B", student.ID, now))

	// assert
	assert.ErrorIs(t, err, core.ErrConflict)
	reservations := core.ProjectReservations(teststore.History(t, store))
	require.Len(t, reservations, 1)
	assert.Equal(t, "b-A", reservations[0].BookID)
}
