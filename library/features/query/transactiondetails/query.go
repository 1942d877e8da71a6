package transactiondetails

import (
	"github.com/schoollibrary/lendingengine/library/shared/core"
)

const (
	queryType = "TransactionDetails"
)

// Query represents the intent to read one transaction.
type Query struct {
	TransactionID core.TransactionIDString
}

// BuildQuery creates a new Query with the provided transaction ID.
func BuildQuery(transactionID core.TransactionIDString) Query {
	return Query{
		TransactionID: transactionID,
	}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}
