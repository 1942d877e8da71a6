package createreadinglist

import (
	"time"

	"github.com/schoollibrary/lendingengine/library/shared/core"
)

const (
	commandType = "CreateReadingList"
)

// Command represents the intent of a teacher to start a reading list for a section.
type Command struct {
	ListID     core.ListIDString
	Name       string
	TeacherID  core.MemberIDString
	SectionID  core.SectionIDString
	OccurredAt core.OccurredAt
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(
	listID core.ListIDString,
	name string,
	teacherID core.MemberIDString,
	sectionID core.SectionIDString,
	occurredAt time.Time,
) Command {

	return Command{
		ListID:     listID,
		Name:       name,
		TeacherID:  teacherID,
		SectionID:  sectionID,
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}
