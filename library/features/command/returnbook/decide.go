package returnbook

import (
	"time"

	"github.com/schoollibrary/lendingengine/eventstore"
	"github.com/schoollibrary/lendingengine/library/shared/core"
)

// Decide implements the business logic of returning an issued copy.
//
// Business Rules:
//
//	GIVEN: An Issued transaction with TransactionID
//	WHEN: ReturnBook command is received
//	THEN: BookReturned and BookAvailabilityAdjusted(+1) events are generated together,
//	      plus FineAssessed if the return is overdue
//	ERROR: NotFound if the transaction does not exist
//	ERROR: InvalidState if the transaction is not Issued
//	ERROR: OutOfRange if the return date lies before the issue date
func Decide(history core.DomainEvents, command Command, policy core.LoanPolicy) core.DecisionResult {
	transaction := core.ProjectTransaction(history, command.TransactionID)

	if !transaction.Exists() {
		return reject(command, core.NewDomainError(
			core.ErrNotFound, core.EntityTransaction, command.TransactionID, "transaction does not exist"))
	}

	if !transaction.Status.CanTransitionTo(core.TransactionStatusReturned) {
		return reject(command, core.NewDomainError(
			core.ErrInvalidState, core.EntityTransaction, command.TransactionID,
			"only issued transactions can be returned").WithStatus(string(transaction.Status)))
	}

	if command.OccurredAt.Before(transaction.IssueDate) {
		return reject(command, core.NewDomainError(
			core.ErrOutOfRange, core.EntityTransaction, command.TransactionID,
			"return date "+command.OccurredAt.Format(time.DateOnly)+" is before the issue date"))
	}

	adjusted, err := core.AdjustAvailability(
		core.ProjectBook(history, transaction.BookID), 1, core.AdjustmentReturn, command.OccurredAt)
	if err != nil {
		return reject(command, err)
	}

	overdueDays := core.ComputeOverdueDays(transaction.DueDate, command.OccurredAt)
	returned := core.BuildBookReturned(transaction, overdueDays, command.OccurredAt)

	fine := policy.FineFor(overdueDays)
	if fine == 0 {
		return core.SuccessDecision(returned, adjusted)
	}

	return core.SuccessDecision(
		returned,
		adjusted,
		core.BuildFineAssessed(command.FeeID, transaction, fine, policy.FeeDueDate(command.OccurredAt), command.OccurredAt),
	)
}

func reject(command Command, err error) core.DecisionResult {
	return core.RejectDecision(commandType, command.TransactionID, err, command.OccurredAt)
}

// BuildEventFilter creates the filter for querying all events
// related to the specified transaction and its book which are relevant for this feature/use-case.
// bookID is empty while the transaction is unknown, then only the transaction is selected.
func BuildEventFilter(transactionID core.TransactionIDString, bookID core.BookIDString) eventstore.Filter {
	transactionOnly := eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(
			core.BookIssuedEventType,
			core.BookReturnedEventType,
		).
		AndAnyPredicateOf(eventstore.P("TransactionID", transactionID))

	if bookID == "" {
		return transactionOnly.Finalize()
	}

	return transactionOnly.
		OrMatching().
		AnyEventTypeOf(
			core.BookAddedToCatalogEventType,
			core.BookAvailabilityAdjustedEventType,
			core.BookRemovedFromCatalogEventType,
		).
		AndAnyPredicateOf(eventstore.P("BookID", bookID)).
		Finalize()
}

// BuildTransactionFilter selects the events of one transaction, used to find its book.
func BuildTransactionFilter(transactionID core.TransactionIDString) eventstore.Filter {
	return BuildEventFilter(transactionID, "")
}
