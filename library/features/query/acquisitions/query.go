package acquisitions

import (
	"github.com/schoollibrary/lendingengine/library/shared/core"
)

const (
	queryType = "Acquisitions"
)

// Query represents the intent to list purchase requests. An empty Status lists all of them.
type Query struct {
	Status core.AcquisitionStatus
}

// BuildQuery creates a new Query with the provided status.
func BuildQuery(status core.AcquisitionStatus) Query {
	return Query{
		Status: status,
	}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}
