package loansbymember

import (
	"github.com/schoollibrary/lendingengine/library/shared/core"
)

// OpenLoan is an issued transaction with the overdue days it would be charged for if returned at the query's AsOf.
type OpenLoan struct {
	core.Transaction
	DaysOverdue int
}

// MemberLoans represents the query result.
type MemberLoans struct {
	MemberID core.MemberIDString
	Loans    []OpenLoan
	Count    int
	Overdue  int
}
