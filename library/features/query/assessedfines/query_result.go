package assessedfines

import (
	"github.com/schoollibrary/lendingengine/library/shared/core"
)

// AssessedFines represents the query result, fees in assessment order.
type AssessedFines struct {
	Fees        []core.Fee
	Count       int
	TotalAmount int
}
