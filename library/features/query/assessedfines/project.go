package assessedfines

import (
	"github.com/schoollibrary/lendingengine/eventstore"
	"github.com/schoollibrary/lendingengine/library/shared/core"
)

// ProjectAssessedFines collects the fees of all FineAssessed events that match the query.
func ProjectAssessedFines(history core.DomainEvents, query Query) AssessedFines {
	result := AssessedFines{Fees: make([]core.Fee, 0)}

	for _, event := range history {
		e, ok := event.(core.FineAssessed)
		if !ok || (query.MemberID != "" && e.MemberID != query.MemberID) {
			continue
		}

		result.Fees = append(result.Fees, core.FeeFrom(e))
		result.TotalAmount += e.Amount
	}

	result.Count = len(result.Fees)

	return result
}

// BuildEventFilter creates the filter for querying fines. An empty memberID matches the fines of everyone.
func BuildEventFilter(memberID core.MemberIDString) eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(core.FineAssessedEventType).
		AndAnyPredicateOf(eventstore.P("MemberID", memberID)).
		Finalize()
}
