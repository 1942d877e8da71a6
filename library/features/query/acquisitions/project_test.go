package acquisitions_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schoollibrary/lendingengine/library/features/query/acquisitions"
	"github.com/schoollibrary/lendingengine/library/shared/core"
	"github.com/schoollibrary/lendingengine/testutil/teststore"
)

func givenRequests(now time.Time) core.DomainEvents {
	return core.DomainEvents{
		core.BuildAcquisitionRequested("a-1", "Momo", "Michael Ende", "class reading", "m-2", now),
		core.BuildAcquisitionRequested("a-2", "Heidi", "Johanna Spyri", "worn out copy", "m-2", now),
		core.BuildAcquisitionRequested("a-3", "Matilda", "Roald Dahl", "", "m-3", now),
		core.BuildAcquisitionApproved("a-1", now),
		core.BuildAcquisitionRejected("a-3", now),
	}
}

func Test_ProjectAcquisitions_FiltersByStatus(t *testing.T) {
	testCases := []struct {
		name     string
		status   core.AcquisitionStatus
		expected []string
	}{
		{name: "all", status: "", expected: []string{"a-1", "a-2", "a-3"}},
		{name: "pending", status: core.AcquisitionStatusPending, expected: []string{"a-2"}},
		{name: "approved", status: core.AcquisitionStatusApproved, expected: []string{"a-1"}},
		{name: "rejected", status: core.AcquisitionStatusRejected, expected: []string{"a-3"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// act
			result := acquisitions.ProjectAcquisitions(givenRequests(time.Now()), acquisitions.BuildQuery(tc.status))

			// assert
			ids := make([]string, 0, result.Count)
			for _, a := range result.Acquisitions {
				ids = append(ids, a.ID)
			}
			assert.Equal(t, tc.expected, ids)
		})
	}
}

func Test_QueryHandler_Handle(t *testing.T) {
	// setup
	store := teststore.NewSQLite(t)
	handler := acquisitions.NewQueryHandler(store)

	// arrange
	teststore.Given(t, store, givenRequests(time.Now())...)

	// act
	result, err := handler.Handle(context.Background(), acquisitions.BuildQuery(core.AcquisitionStatusApproved))

	// assert
	require.NoError(t, err)
	require.Equal(t, 1, result.Count)
	assert.NotNil(t, result.Acquisitions[0].AcquiredDate)
}
