package pendingreservations

import (
	"time"

	"github.com/schoollibrary/lendingengine/library/shared/core"
)

const (
	queryType = "PendingReservations"
)

// Query represents the intent to read the pending reservations of a book as of a point in time.
type Query struct {
	BookID core.BookIDString
	AsOf   time.Time
}

// BuildQuery creates a new Query with the provided parameters.
func BuildQuery(bookID core.BookIDString, asOf time.Time) Query {
	return Query{
		BookID: bookID,
		AsOf:   asOf,
	}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}
