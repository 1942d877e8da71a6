package submitacquisition

import (
	"github.com/schoollibrary/lendingengine/eventstore"
	"github.com/schoollibrary/lendingengine/library/shared/core"
)

// Decide implements the business logic of a purchase request.
// requester is the directory entry of command.RequesterID, the zero Member if it is unknown.
//
// Business Rules:
//
//	GIVEN: A known requester
//	WHEN: SubmitAcquisition command is received
//	THEN: AcquisitionRequested event is generated
//	ERROR: NotFound if the requester is unknown
//	ERROR: Conflict if AcquisitionID is taken by a request with other details
//	IDEMPOTENCY: If the same acquisition with AcquisitionID exists, no event generated (no-op)
func Decide(history core.DomainEvents, command Command, requester core.Member) core.DecisionResult {
	if existing := core.ProjectAcquisition(history, command.AcquisitionID); existing.Exists() {
		if existing.Title == command.Title &&
			existing.Author == command.Author &&
			existing.Reason == command.Reason &&
			existing.RequesterID == command.RequesterID {
			return core.IdempotentDecision()
		}

		return core.RejectDecision(
			commandType,
			command.AcquisitionID,
			core.NewDomainError(core.ErrConflict, core.EntityAcquisition, command.AcquisitionID,
				"acquisition id is already used by a request of "+existing.RequesterID+" for "+existing.Title),
			command.OccurredAt,
		)
	}

	if !requester.IsKnown() {
		return core.RejectDecision(
			commandType,
			command.AcquisitionID,
			core.NewDomainError(core.ErrNotFound, core.EntityMember, command.RequesterID, "requester is not in the directory"),
			command.OccurredAt,
		)
	}

	return core.SuccessDecision(
		core.BuildAcquisitionRequested(
			command.AcquisitionID,
			command.Title,
			command.Author,
			command.Reason,
			command.RequesterID,
			command.OccurredAt,
		),
	)
}

// BuildEventFilter creates the filter for querying all events
// related to the specified acquisition which are relevant for this feature/use-case.
func BuildEventFilter(acquisitionID core.AcquisitionIDString) eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(core.AcquisitionRequestedEventType).
		AndAnyPredicateOf(eventstore.P("AcquisitionID", acquisitionID)).
		Finalize()
}
