package returnbook

import (
	"context"

	"github.com/schoollibrary/lendingengine/library/shared/core"
	"github.com/schoollibrary/lendingengine/library/shared/shell"
)

// CommandHandler orchestrates Lookup -> Query -> Decide -> Append with retry on concurrency conflicts.
// External wrappers handle all observability concerns.
type CommandHandler struct {
	eventStore   shell.EventStore
	policy       core.LoanPolicy
	retryOptions []shell.RetryOption
}

// Option configures a CommandHandler.
type Option func(*CommandHandler)

// WithRetryOptions sets a custom retry configuration for the handler.
func WithRetryOptions(opts ...shell.RetryOption) Option {
	return func(h *CommandHandler) {
		h.retryOptions = opts
	}
}

// NewCommandHandler creates a new CommandHandler with optional configuration.
func NewCommandHandler(eventStore shell.EventStore, policy core.LoanPolicy, opts ...Option) CommandHandler {
	handler := CommandHandler{
		eventStore: eventStore,
		policy:     policy,
	}

	for _, opt := range opts {
		opt(&handler)
	}

	return handler
}

// Handle executes the command with retry logic.
// On success the FineAssessed event, if any, is part of the returned HandlerResult.
func (h CommandHandler) Handle(ctx context.Context, command Command) (shell.HandlerResult, error) {
	var result core.DecisionResult

	retryMetrics, err := shell.RetryWithExponentialBackoff(ctx, func(retryCtx context.Context) error {
		transactionEvents, _, lookupErr := shell.QueryDomainEvents(
			retryCtx, h.eventStore, BuildTransactionFilter(command.TransactionID))
		if lookupErr != nil {
			return lookupErr
		}

		bookID := core.ProjectTransaction(transactionEvents, command.TransactionID).BookID

		var execErr error
		result, execErr = shell.QueryDecideAppend(
			retryCtx,
			h.eventStore,
			BuildEventFilter(command.TransactionID, bookID),
			func(history core.DomainEvents) core.DecisionResult {
				return Decide(history, command, h.policy)
			},
		)

		return execErr
	}, h.retryOptions...)

	return shell.HandlerResultFrom(retryMetrics, result, err), err
}

// AssessedFee returns the fee a successful return assessed.
func AssessedFee(result shell.HandlerResult) (core.Fee, bool) {
	for _, event := range result.Events {
		if fine, ok := event.(core.FineAssessed); ok {
			return core.FeeFrom(fine), true
		}
	}

	return core.Fee{}, false
}
