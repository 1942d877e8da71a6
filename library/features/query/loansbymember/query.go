package loansbymember

import (
	"time"

	"github.com/schoollibrary/lendingengine/library/shared/core"
)

const (
	queryType = "LoansByMember"
)

// Query represents the intent to read the open loans of a member as of a point in time.
type Query struct {
	MemberID core.MemberIDString
	AsOf     time.Time
}

// BuildQuery creates a new Query with the provided parameters.
func BuildQuery(memberID core.MemberIDString, asOf time.Time) Query {
	return Query{
		MemberID: memberID,
		AsOf:     asOf,
	}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}
