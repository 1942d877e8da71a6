package reservationdetails

import (
	"github.com/schoollibrary/lendingengine/library/shared/core"
)

const (
	queryType = "ReservationDetails"
)

// Query represents the intent to read one reservation.
type Query struct {
	ReservationID core.ReservationIDString
}

// BuildQuery creates a new Query with the provided reservation ID.
func BuildQuery(reservationID core.ReservationIDString) Query {
	return Query{
		ReservationID: reservationID,
	}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}
