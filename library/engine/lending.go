package engine

import (
	"context"
	"errors"
	"time"

	"github.com/schoollibrary/lendingengine/library/features/command/issuebook"
	"github.com/schoollibrary/lendingengine/library/features/command/returnbook"
	"github.com/schoollibrary/lendingengine/library/features/query/assessedfines"
	"github.com/schoollibrary/lendingengine/library/features/query/loansbymember"
	"github.com/schoollibrary/lendingengine/library/features/query/transactiondetails"
	"github.com/schoollibrary/lendingengine/library/shared/core"
	"github.com/schoollibrary/lendingengine/library/shared/shell"
)

const (
	logMsgFeeDeliveryFailed = "fee delivery failed, resync fees to deliver it again"
	logMsgFeesResynced      = "fees resynced"
	logAttrFeeID            = "fee_id"
	logAttrTransactionID    = "transaction_id"
	logAttrDelivered        = "delivered"
	logAttrFailed           = "failed"
)

// Loan describes a copy to issue. TransactionID is generated when empty,
// DueDateOverride replaces the due date derived from the member's role.
type Loan struct {
	TransactionID   core.TransactionIDString
	BookID          core.BookIDString
	MemberID        core.MemberIDString
	DueDateOverride *time.Time
}

// Return is the outcome of a return. Fee is nil unless the copy came back overdue.
type Return struct {
	Transaction core.Transaction
	Fee         *core.Fee
}

// IssueBook lends a copy to a member.
func (e *Engine) IssueBook(ctx context.Context, loan Loan) (core.Transaction, error) {
	transactionID := e.idOr(loan.TransactionID)

	command := issuebook.BuildCommand(transactionID, loan.BookID, loan.MemberID, loan.DueDateOverride, e.now())
	if _, err := e.issueBook.Handle(ctx, command); err != nil {
		return core.Transaction{}, err
	}

	details, err := e.Transaction(ctx, transactionID)
	if err != nil {
		return core.Transaction{}, err
	}

	return details.Transaction, nil
}

// ReturnBook closes a loan as of asOf, the zero time meaning now.
// An overdue return assesses a fine, which is delivered to the fee sink once the return is committed.
// A failed delivery does not fail the return.
func (e *Engine) ReturnBook(ctx context.Context, transactionID core.TransactionIDString, asOf time.Time) (Return, error) {
	result, err := e.returnBook.Handle(ctx, returnbook.BuildCommand(transactionID, e.newID(), e.asOfOr(asOf)))
	if err != nil {
		return Return{}, err
	}

	if fee, ok := returnbook.AssessedFee(result); ok {
		e.deliverFee(ctx, fee)
	}

	details, err := e.Transaction(ctx, transactionID)
	if err != nil {
		return Return{}, err
	}

	return Return{
		Transaction: details.Transaction,
		Fee:         details.Fee,
	}, nil
}

// ResyncFees delivers every assessed fine to the fee sink again and reports how many were delivered.
func (e *Engine) ResyncFees(ctx context.Context) (int, error) {
	fines, err := e.AssessedFines(ctx, "")
	if err != nil {
		return 0, err
	}

	delivered := 0
	errs := make([]error, 0)

	for _, fee := range fines.Fees {
		if err = e.fees.DeliverFee(ctx, fee); err != nil {
			errs = append(errs, err)
			continue
		}

		delivered++
	}

	shell.LogInfo(ctx, e.observability.Logger, e.observability.ContextualLogger, logMsgFeesResynced,
		logAttrDelivered, delivered,
		logAttrFailed, len(errs),
	)

	return delivered, errors.Join(errs...)
}

// Transaction returns the loan with transactionID together with the fine assessed on its return, if any.
func (e *Engine) Transaction(
	ctx context.Context,
	transactionID core.TransactionIDString,
) (transactiondetails.TransactionDetails, error) {

	return e.transactionDetails.Handle(ctx, transactiondetails.BuildQuery(transactionID))
}

// LoansByMember lists the copies a member holds right now.
func (e *Engine) LoansByMember(ctx context.Context, memberID core.MemberIDString) (loansbymember.MemberLoans, error) {
	return e.loansByMember.Handle(ctx, loansbymember.BuildQuery(memberID, e.now()))
}

// AssessedFines lists the fines of a member, or of everyone for an empty memberID.
func (e *Engine) AssessedFines(ctx context.Context, memberID core.MemberIDString) (assessedfines.AssessedFines, error) {
	return e.assessedFines.Handle(ctx, assessedfines.BuildQuery(memberID))
}

func (e *Engine) deliverFee(ctx context.Context, fee core.Fee) {
	if err := e.fees.DeliverFee(ctx, fee); err != nil {
		shell.LogWarn(ctx, e.observability.Logger, e.observability.ContextualLogger, logMsgFeeDeliveryFailed,
			logAttrFeeID, fee.ID,
			logAttrTransactionID, fee.TransactionID,
			shell.LogAttrError, err.Error(),
		)
	}
}
