package readinglist

import (
	"github.com/schoollibrary/lendingengine/library/shared/core"
)

const (
	queryType = "ViewReadingList"
)

// Query represents the intent of a member to view a reading list.
type Query struct {
	ListID     core.ListIDString
	ByMemberID core.MemberIDString
}

// BuildQuery creates a new Query with the provided parameters.
func BuildQuery(listID core.ListIDString, byMemberID core.MemberIDString) Query {
	return Query{
		ListID:     listID,
		ByMemberID: byMemberID,
	}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}
