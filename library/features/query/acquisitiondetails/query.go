package acquisitiondetails

import (
	"github.com/schoollibrary/lendingengine/library/shared/core"
)

const (
	queryType = "AcquisitionDetails"
)

// Query represents the intent to read one purchase request.
type Query struct {
	AcquisitionID core.AcquisitionIDString
}

// BuildQuery creates a new Query with the provided acquisition ID.
func BuildQuery(acquisitionID core.AcquisitionIDString) Query {
	return Query{
		AcquisitionID: acquisitionID,
	}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}
