package shell

import (
	"context"

	"github.com/schoollibrary/lendingengine/eventstore"
	"github.com/schoollibrary/lendingengine/library/shared/core"
)

// DecideFunc is the pure decision of a command over the history its filter selected.
type DecideFunc func(history core.DomainEvents) core.DecisionResult

// QueryDecideAppend runs one attempt of a command: it reads the stream selected by filter with strong consistency,
// decides, and appends the resulting events guarded by the max sequence number it read.
//
// For a rejected decision the audit events are appended and the domain error is returned.
// Wrap it in RetryWithExponentialBackoff, a concurrency conflict means the decision has to be made again.
func QueryDecideAppend(
	ctx context.Context,
	store EventStore,
	filter eventstore.Filter,
	decide DecideFunc,
) (core.DecisionResult, error) {

	ctx = eventstore.WithStrongConsistency(ctx)

	history, maxSequenceNumber, err := QueryDomainEvents(ctx, store, filter)
	if err != nil {
		return core.DecisionResult{}, err
	}

	result := decide(history)

	if !result.HasEventsToAppend() {
		return result, nil
	}

	if err = AppendEvents(ctx, store, filter, maxSequenceNumber, result.Events); err != nil {
		return result, err
	}

	return result, result.HasError()
}

// HandlerResultFrom maps the final attempt of a command to its HandlerResult.
func HandlerResultFrom(retryMetrics RetryMetrics, result core.DecisionResult, err error) HandlerResult {
	switch {
	case err != nil && core.ErrorKindName(err) != "" && result.HasError() != nil:
		return NewErrorResult(retryMetrics, result.Events)
	case err != nil:
		return NewErrorResult(retryMetrics, nil)
	case !result.HasEventsToAppend():
		return NewIdempotentResult(retryMetrics)
	default:
		return NewSuccessResult(retryMetrics, result.Events)
	}
}

// MemberDirectory looks up members. An unknown member is returned as the zero core.Member, not as an error.
type MemberDirectory interface {
	Member(ctx context.Context, memberID core.MemberIDString) (core.Member, error)
}

// SectionDirectory looks up course sections. An unknown section is returned as the zero core.Section.
type SectionDirectory interface {
	Section(ctx context.Context, sectionID core.SectionIDString) (core.Section, error)
}

// FeeSink receives assessed fines. Deliveries are idempotent on the fee id.
type FeeSink interface {
	DeliverFee(ctx context.Context, fee core.Fee) error
}
