package submitacquisition

import (
	"time"

	"github.com/schoollibrary/lendingengine/library/shared/core"
)

const (
	commandType = "SubmitAcquisition"
)

// Command represents a member asking the library to buy a title.
type Command struct {
	AcquisitionID core.AcquisitionIDString
	Title         string
	Author        string
	Reason        string
	RequesterID   core.MemberIDString
	OccurredAt    core.OccurredAt
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(
	acquisitionID core.AcquisitionIDString,
	title string,
	author string,
	reason string,
	requesterID core.MemberIDString,
	occurredAt time.Time,
) Command {

	return Command{
		AcquisitionID: acquisitionID,
		Title:         title,
		Author:        author,
		Reason:        reason,
		RequesterID:   requesterID,
		OccurredAt:    core.ToOccurredAt(occurredAt),
	}
}
