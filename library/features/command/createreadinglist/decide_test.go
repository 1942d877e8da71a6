package createreadinglist_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/schoollibrary/lendingengine/library/features/command/createreadinglist"
	"github.com/schoollibrary/lendingengine/library/shared/core"
)

var section = core.Section{ID: "s-1", ClassTeacherID: "t-1", MemberIDs: []string{"m-1", "m-2"}}

func Test_Decide(t *testing.T) {
	now := time.Now()

	testCases := []struct {
		description string
		history     core.DomainEvents
		teacherID   string
		section     core.Section
		expectedErr error
		idempotent  bool
	}{
		{description: "class teacher", history: core.DomainEvents{}, teacherID: "t-1", section: section},
		{description: "other teacher", history: core.DomainEvents{}, teacherID: "t-2", section: section, expectedErr: core.ErrForbidden},
		{description: "student of the section", history: core.DomainEvents{}, teacherID: "m-1", section: section, expectedErr: core.ErrForbidden},
		{description: "unknown section", history: core.DomainEvents{}, teacherID: "t-1", section: core.Section{}, expectedErr: core.ErrNotFound},
		{
			description: "list exists",
			history:     core.DomainEvents{core.BuildReadingListCreated("l-1", "Summer", "t-1", "s-1", now.Add(-time.Hour))},
			teacherID:   "t-1",
			section:     section,
			idempotent:  true,
		},
		{
			description: "list id taken by another list",
			history:     core.DomainEvents{core.BuildReadingListCreated("l-1", "Winter", "t-1", "s-1", now.Add(-time.Hour))},
			teacherID:   "t-1",
			section:     section,
			expectedErr: core.ErrConflict,
		},
		{
			description: "list id taken by a list of another section",
			history:     core.DomainEvents{core.BuildReadingListCreated("l-1", "Summer", "t-1", "s-2", now.Add(-time.Hour))},
			teacherID:   "t-1",
			section:     section,
			expectedErr: core.ErrConflict,
		},
		{
			description: "list was deleted",
			history: core.DomainEvents{
				core.BuildReadingListCreated("l-1", "Summer", "t-1", "s-1", now.Add(-time.Hour)),
				core.BuildReadingListDeleted("l-1", "t-1", now.Add(-time.Minute)),
			},
			teacherID:   "t-1",
			section:     section,
			expectedErr: core.ErrConflict,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			// act
			result := createreadinglist.Decide(
				tc.history, createreadinglist.BuildCommand("l-1", "Summer", tc.teacherID, "s-1", now), tc.section)

			// assert
			switch {
			case tc.expectedErr != nil:
				assert.ErrorIs(t, result.HasError(), tc.expectedErr)
			case tc.idempotent:
				assert.False(t, result.HasEventsToAppend())
			default:
				assert.NoError(t, result.HasError())
				created, ok := result.Events[0].(core.ReadingListCreated)
				assert.True(t, ok)
				assert.Equal(t, "s-1", created.SectionID)
				assert.Equal(t, "t-1", created.TeacherID)
			}
		})
	}
}
