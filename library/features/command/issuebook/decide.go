package issuebook

import (
	"github.com/schoollibrary/lendingengine/eventstore"
	"github.com/schoollibrary/lendingengine/library/shared/core"
)

// Decide implements the business logic to determine whether a copy can be issued to a member.
// member is the directory entry of command.MemberID, the zero Member if it is unknown.
//
// Business Rules:
//
//	GIVEN: A catalogued book with BookID and a known member with MemberID
//	WHEN: IssueBook command is received
//	THEN: BookAvailabilityAdjusted(-1) and BookIssued events are generated together
//	ERROR: NotFound if the member is unknown or the book is not catalogued
//	ERROR: OutOfRange if DueDateOverride lies on a day before the issue day
//	ERROR: Unavailable if no copy is available
//	ERROR: Conflict if TransactionID is taken by a loan of another book or member, or by a fulfilled reservation
//	IDEMPOTENCY: If the same loan with TransactionID exists, no event generated (no-op)
func Decide(history core.DomainEvents, command Command, member core.Member, policy core.LoanPolicy) core.DecisionResult {
	if existing := core.ProjectTransaction(history, command.TransactionID); existing.Exists() {
		if existing.BookID == command.BookID && existing.MemberID == command.MemberID && existing.ReservationID == "" {
			return core.IdempotentDecision()
		}

		return reject(command, core.NewDomainError(
			core.ErrConflict, core.EntityTransaction, command.TransactionID,
			"transaction id is already used for book "+existing.BookID+" and member "+existing.MemberID))
	}

	if !member.IsKnown() {
		return reject(command, core.NewDomainError(
			core.ErrNotFound, core.EntityMember, command.MemberID, "member is not in the directory"))
	}

	book := core.ProjectBook(history, command.BookID)
	if !book.IsCatalogued() {
		return reject(command, core.NewDomainError(
			core.ErrNotFound, core.EntityBook, command.BookID, "book is not in the catalog"))
	}

	dueDate := policy.DueDate(command.OccurredAt, member.Role)
	if command.DueDateOverride != nil {
		if core.IsBeforeDay(*command.DueDateOverride, command.OccurredAt) {
			return reject(command, core.NewDomainError(
				core.ErrOutOfRange, core.EntityTransaction, command.TransactionID,
				"due date override "+command.DueDateOverride.Format("2006-01-02")+" is before the issue date"))
		}

		dueDate = *command.DueDateOverride
	}

	if book.AvailableCopies == 0 {
		return reject(command, core.NewDomainError(
			core.ErrUnavailable, core.EntityBook, command.BookID, "no copy left to issue"))
	}

	adjusted, err := core.AdjustAvailability(book, -1, core.AdjustmentIssue, command.OccurredAt)
	if err != nil {
		return reject(command, err)
	}

	return core.SuccessDecision(
		adjusted,
		core.BuildBookIssued(command.TransactionID, command.BookID, member, dueDate, "", command.OccurredAt),
	)
}

func reject(command Command, err error) core.DecisionResult {
	return core.RejectDecision(commandType, command.TransactionID, err, command.OccurredAt)
}

// BuildEventFilter creates the filter for querying all events
// related to the specified book which are relevant for this feature/use-case,
// plus any earlier loan with transactionID, whatever book it was for.
func BuildEventFilter(bookID core.BookIDString, transactionID core.TransactionIDString) eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(
			core.BookAddedToCatalogEventType,
			core.BookAvailabilityAdjustedEventType,
			core.BookRemovedFromCatalogEventType,
			core.BookIssuedEventType,
		).
		AndAnyPredicateOf(eventstore.P("BookID", bookID)).
		OrMatching().
		AnyEventTypeOf(core.BookIssuedEventType).
		AndAnyPredicateOf(eventstore.P("TransactionID", transactionID)).
		Finalize()
}
