package assessedfines

import (
	"github.com/schoollibrary/lendingengine/library/shared/core"
)

const (
	queryType = "AssessedFines"
)

// Query represents the intent to read assessed fines. An empty MemberID selects the fines of all members.
type Query struct {
	MemberID core.MemberIDString
}

// BuildQuery creates a new Query with the provided member ID.
func BuildQuery(memberID core.MemberIDString) Query {
	return Query{
		MemberID: memberID,
	}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}
