package acquisitiondetails

import (
	"github.com/schoollibrary/lendingengine/eventstore"
	"github.com/schoollibrary/lendingengine/library/shared/core"
)

// ProjectAcquisitionDetails returns the purchase request of the query, or a NotFound error.
func ProjectAcquisitionDetails(history core.DomainEvents, query Query) (core.Acquisition, error) {
	acquisition := core.ProjectAcquisition(history, query.AcquisitionID)

	if !acquisition.Exists() {
		return core.Acquisition{}, core.NewDomainError(
			core.ErrNotFound, core.EntityAcquisition, query.AcquisitionID, "acquisition does not exist")
	}

	return acquisition, nil
}

// BuildEventFilter creates the filter for querying the events of the specified purchase request.
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
