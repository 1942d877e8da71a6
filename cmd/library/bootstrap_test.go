package main

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schoollibrary/lendingengine/library/engine"
	"github.com/schoollibrary/lendingengine/library/shared/shell/config"
)

const seedJSON = `{
	"members": [{"ID": "t-1", "Role": "Teacher", "Name": "Ms. Larsson"}],
	"sections": [{"ID": "s-1", "ClassTeacherID": "t-1", "MemberIDs": ["m-1"]}]
}`

func Test_OpenEngine_WithDirectoryFileAndTelemetry(t *testing.T) {
	// arrange
	dir := t.TempDir()
	seedFile := filepath.Join(dir, "directory.json")
	require.NoError(t, os.WriteFile(seedFile, []byte(seedJSON), 0o600))

	cfg := config.Config{
		Store:                         config.StoreSQLite,
		SQLitePath:                    filepath.Join(dir, "library.db"),
		EventsTableName:               config.MigratedEventsTableName,
		DirectoryFile:                 seedFile,
		Observability:                 true,
		FinePerDayUnits:               5,
		StudentLoanDays:               14,
		TeacherLoanDays:               28,
		ReservationFollowupWindowDays: 14,
		FeeDueDays:                    14,
		RetryMaxAttempts:              3,
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	// act
	e, closeEngine, err := openEngine(t.Context(), cfg, logger)
	require.NoError(t, err)
	t.Cleanup(closeEngine)

	list, createErr := e.CreateReadingList(t.Context(), engine.NewReadingList{
		ListID: "l-1", Name: "Autumn", TeacherID: "t-1", SectionID: "s-1",
	})

	// assert
	require.NoError(t, createErr)
	assert.Equal(t, "Autumn", list.Name)
}

func Test_OpenDirectory_WithoutConfigurationKnowsNobody(t *testing.T) {
	// arrange
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	// act
	dir, closeDir, err := openDirectory(t.Context(), config.Config{}, logger)
	require.NoError(t, err)
	defer closeDir()

	member, lookupErr := dir.Member(t.Context(), "t-1")

	// assert
	require.NoError(t, lookupErr)
	assert.False(t, member.IsKnown())
}
