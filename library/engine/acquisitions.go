package engine

import (
	"context"

	"github.com/schoollibrary/lendingengine/library/features/command/decideacquisition"
	"github.com/schoollibrary/lendingengine/library/features/command/submitacquisition"
	"github.com/schoollibrary/lendingengine/library/features/query/acquisitiondetails"
	"github.com/schoollibrary/lendingengine/library/features/query/acquisitions"
	"github.com/schoollibrary/lendingengine/library/shared/core"
)

// NewAcquisition describes a purchase request. AcquisitionID is generated when empty.
type NewAcquisition struct {
	AcquisitionID core.AcquisitionIDString
	Title         string
	Author        string
	Reason        string
	RequesterID   core.MemberIDString
}

// SubmitAcquisition files a pending purchase request.
func (e *Engine) SubmitAcquisition(ctx context.Context, request NewAcquisition) (core.Acquisition, error) {
	acquisitionID := e.idOr(request.AcquisitionID)

	command := submitacquisition.BuildCommand(
		acquisitionID, request.Title, request.Author, request.Reason, request.RequesterID, e.now())
	if _, err := e.submitAcquisition.Handle(ctx, command); err != nil {
		return core.Acquisition{}, err
	}

	return e.Acquisition(ctx, acquisitionID)
}

// DecideAcquisition approves or rejects a pending purchase request. Approval does not catalog a book.
func (e *Engine) DecideAcquisition(
	ctx context.Context,
	acquisitionID core.AcquisitionIDString,
	approve bool,
) (core.Acquisition, error) {

	if _, err := e.decideAcquisition.Handle(ctx, decideacquisition.BuildCommand(acquisitionID, approve, e.now())); err != nil {
		return core.Acquisition{}, err
	}

	return e.Acquisition(ctx, acquisitionID)
}

func (e *Engine) Acquisition(ctx context.Context, acquisitionID core.AcquisitionIDString) (core.Acquisition, error) {
	return e.acquisitionDetails.Handle(ctx, acquisitiondetails.BuildQuery(acquisitionID))
}

// Acquisitions lists purchase requests with the given status, or all for the empty status.
func (e *Engine) Acquisitions(ctx context.Context, status core.AcquisitionStatus) (acquisitions.Acquisitions, error) {
	return e.acquisitions.Handle(ctx, acquisitions.BuildQuery(status))
}
