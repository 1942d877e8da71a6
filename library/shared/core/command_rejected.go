package core

import (
	"time"
)

// CommandRejectedEventType is the event type identifier.
const CommandRejectedEventType = "CommandRejected"

// CommandRejected records a command that broke a business rule. It changes no state.
//
// It carries EntityID, not BookID or ListID, so it stays outside the consistency boundaries
// of the entity it refers to.
type CommandRejected struct {
	Operation   string
	EntityID    string
	ErrorKind   string
	FailureInfo string
	OccurredAt  OccurredAt
}

// BuildCommandRejected creates a new CommandRejected event from the domain error err.
func BuildCommandRejected(operation string, entityID string, err error, occurredAt time.Time) CommandRejected {
	return CommandRejected{
		Operation:   operation,
		EntityID:    entityID,
		ErrorKind:   ErrorKindName(err),
		FailureInfo: err.Error(),
		OccurredAt:  ToOccurredAt(occurredAt),
	}
}

func (e CommandRejected) EventType() EventTypeString { return CommandRejectedEventType }
func (e CommandRejected) HasOccurredAt() time.Time   { return e.OccurredAt }
func (e CommandRejected) IsErrorEvent() bool         { return true }

// RejectDecision wraps a domain error into an ErrorDecision with its CommandRejected audit event.
func RejectDecision(operation string, entityID string, err error, occurredAt time.Time) DecisionResult {
	return ErrorDecision(BuildCommandRejected(operation, entityID, err, occurredAt), err)
}
