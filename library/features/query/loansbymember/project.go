package loansbymember

import (
	"github.com/schoollibrary/lendingengine/eventstore"
	"github.com/schoollibrary/lendingengine/library/shared/core"
)

// ProjectMemberLoans lists the open loans of a member.
//
// Query Logic:
//
//	INCLUDES: transactions of the member with status Issued, in issue order
//	EXCLUDES: returned transactions
//	COMPUTES: overdue days per loan at query.AsOf
func ProjectMemberLoans(history core.DomainEvents, query Query) MemberLoans {
	loans := make([]OpenLoan, 0)
	overdue := 0

	for _, t := range core.ProjectTransactions(history) {
		if t.MemberID != query.MemberID || t.Status != core.TransactionStatusIssued {
			continue
		}

		days := core.ComputeOverdueDays(t.DueDate, query.AsOf)
		if days > 0 {
			overdue++
		}

		loans = append(loans, OpenLoan{Transaction: t, DaysOverdue: days})
	}

	return MemberLoans{
		MemberID: query.MemberID,
		Loans:    loans,
		Count:    len(loans),
		Overdue:  overdue,
	}
}

// BuildEventFilter creates the filter for querying the lending events of the specified member.
func BuildEventFilter(memberID core.MemberIDString) eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(
			core.BookIssuedEventType,
			core.BookReturnedEventType,
		).
		AndAnyPredicateOf(eventstore.P("MemberID", memberID)).
		Finalize()
}
