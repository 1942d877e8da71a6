package returnbook

import (
	"time"

	"github.com/schoollibrary/lendingengine/library/shared/core"
)

const (
	commandType = "ReturnBook"
)

// Command represents the return of the copy of TransactionID at OccurredAt.
// FeeID identifies the fine in case the return is overdue.
type Command struct {
	TransactionID core.TransactionIDString
	FeeID         core.FeeIDString
	OccurredAt    core.OccurredAt
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(transactionID core.TransactionIDString, feeID core.FeeIDString, asOf time.Time) Command {
	return Command{
		TransactionID: transactionID,
		FeeID:         feeID,
		OccurredAt:    core.ToOccurredAt(asOf),
	}
}
