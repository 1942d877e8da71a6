package decideacquisition

import (
	"time"

	"github.com/schoollibrary/lendingengine/library/shared/core"
)

const (
	commandType = "DecideAcquisition"
)

// Command represents the decision on a purchase request.
type Command struct {
	AcquisitionID core.AcquisitionIDString
	Approve       bool
	OccurredAt    core.OccurredAt
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(acquisitionID core.AcquisitionIDString, approve bool, occurredAt time.Time) Command {
	return Command{
		AcquisitionID: acquisitionID,
		Approve:       approve,
		OccurredAt:    core.ToOccurredAt(occurredAt),
	}
}
