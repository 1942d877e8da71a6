package decideacquisition

import (
	"github.com/schoollibrary/lendingengine/eventstore"
	"github.com/schoollibrary/lendingengine/library/shared/core"
)

// Decide implements the business logic of deciding on a purchase request.
//
// Business Rules:
//
//	GIVEN: A Pending acquisition with AcquisitionID
//	WHEN: DecideAcquisition command is received
//	THEN: AcquisitionApproved or AcquisitionRejected event is generated
//	ERROR: NotFound if the acquisition does not exist
//	ERROR: InvalidState if the acquisition was decided before
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	acquisition := core.ProjectAcquisition(history, command.AcquisitionID)

	if !acquisition.Exists() {
		return core.RejectDecision(
			commandType,
			command.AcquisitionID,
			core.NewDomainError(core.ErrNotFound, core.EntityAcquisition, command.AcquisitionID, "acquisition does not exist"),
			command.OccurredAt,
		)
	}

	next := core.AcquisitionStatusRejected
	if command.Approve {
		next = core.AcquisitionStatusApproved
	}

	if !acquisition.Status.CanTransitionTo(next) {
		return core.RejectDecision(
			commandType,
			command.AcquisitionID,
			core.NewDomainError(core.ErrInvalidState, core.EntityAcquisition, command.AcquisitionID,
				"cannot move to "+string(next)).WithStatus(string(acquisition.Status)),
			command.OccurredAt,
		)
	}

	if command.Approve {
		return core.SuccessDecision(core.BuildAcquisitionApproved(command.AcquisitionID, command.OccurredAt))
	}

	return core.SuccessDecision(core.BuildAcquisitionRejected(command.AcquisitionID, command.OccurredAt))
}

// BuildEventFilter creates the filter for querying all events
// related to the specified acquisition which are relevant for this feature/use-case.
func BuildEventFilter(acquisitionID core.AcquisitionIDString) eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(
			core.AcquisitionRequestedEventType,
			core.AcquisitionApprovedEventType,
			core.AcquisitionRejectedEventType,
		).
		AndAnyPredicateOf(eventstore.P("AcquisitionID", acquisitionID)).
		Finalize()
}
