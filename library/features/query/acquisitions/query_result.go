package acquisitions

import (
	"github.com/schoollibrary/lendingengine/library/shared/core"
)

// Acquisitions represents the query result, requests in submission order.
type Acquisitions struct {
	Acquisitions []core.Acquisition
	Count        int
}
