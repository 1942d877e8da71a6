package transactiondetails

import (
	"github.com/schoollibrary/lendingengine/eventstore"
	"github.com/schoollibrary/lendingengine/library/shared/core"
)

// ProjectTransactionDetails returns the transaction of the query and its fine, or a NotFound error.
func ProjectTransactionDetails(history core.DomainEvents, query Query) (TransactionDetails, error) {
	transaction := core.ProjectTransaction(history, query.TransactionID)

	if !transaction.Exists() {
		return TransactionDetails{}, core.NewDomainError(
			core.ErrNotFound, core.EntityTransaction, query.TransactionID, "transaction does not exist")
	}

	details := TransactionDetails{Transaction: transaction}

	for _, event := range history {
		if e, ok := event.(core.FineAssessed); ok && e.TransactionID == query.TransactionID {
			fee := core.FeeFrom(e)
			details.Fee = &fee
		}
	}

	return details, nil
}

// BuildEventFilter creates the filter for querying the lending events of the specified transaction.
func BuildEventFilter(transactionID core.TransactionIDString) eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(
			core.BookIssuedEventType,
			core.BookReturnedEventType,
			core.FineAssessedEventType,
		).
		AndAnyPredicateOf(eventstore.P("TransactionID", transactionID)).
		Finalize()
}
