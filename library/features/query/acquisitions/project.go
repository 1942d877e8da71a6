package acquisitions

import (
	"github.com/schoollibrary/lendingengine/eventstore"
	"github.com/schoollibrary/lendingengine/library/shared/core"
)

// ProjectAcquisitions replays all purchase requests.
//
// Query Logic:
//
//	INCLUDES: every submitted request whose current status equals query.Status, or all when it is empty
func ProjectAcquisitions(history core.DomainEvents, query Query) Acquisitions {
	index := make(map[core.AcquisitionIDString]int)
	all := make([]core.Acquisition, 0)

	for _, event := range history {
		switch e := event.(type) {
		case core.AcquisitionRequested:
			index[e.AcquisitionID] = len(all)
			a := core.Acquisition{}
			a.Apply(e)
			all = append(all, a)

		case core.AcquisitionApproved:
			if i, ok := index[e.AcquisitionID]; ok {
				all[i].Apply(e)
			}

		case core.AcquisitionRejected:
			if i, ok := index[e.AcquisitionID]; ok {
				all[i].Apply(e)
			}
		}
	}

	selected := make([]core.Acquisition, 0, len(all))
	for _, a := range all {
		if query.Status == "" || a.Status == query.Status {
			selected = append(selected, a)
		}
	}

	return Acquisitions{
		Acquisitions: selected,
		Count:        len(selected),
	}
}

// BuildEventFilter creates the filter for querying all acquisition events.
func BuildEventFilter() eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(
			core.AcquisitionRequestedEventType,
			core.AcquisitionApprovedEventType,
			core.AcquisitionRejectedEventType,
		).
		Finalize()
}
