package createreadinglist

import (
	"context"

	"github.com/schoollibrary/lendingengine/library/shared/core"
	"github.com/schoollibrary/lendingengine/library/shared/shell"
)

// CommandHandler orchestrates Lookup -> Query -> Decide -> Append with retry on concurrency conflicts.
// External wrappers handle all observability concerns.
type CommandHandler struct {
	eventStore   shell.EventStore
	sections     shell.SectionDirectory
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
func NewCommandHandler(eventStore shell.EventStore, sections shell.SectionDirectory, opts ...Option) CommandHandler {
	handler := CommandHandler{
		eventStore: eventStore,
		sections:   sections,
	}

	for _, opt := range opts {
		opt(&handler)
	}

	return handler
}

// Handle executes the command with retry logic.
// Returns HandlerResult containing business outcomes and execution metadata for observability.
func (h CommandHandler) Handle(ctx context.Context, command Command) (shell.HandlerResult, error) {
	var result core.DecisionResult

	retryMetrics, err := shell.RetryWithExponentialBackoff(ctx, func(retryCtx context.Context) error {
		section, lookupErr := h.sections.Section(retryCtx, command.SectionID)
		if lookupErr != nil {
			return lookupErr
		}

		var execErr error
		result, execErr = shell.QueryDecideAppend(
			retryCtx,
			h.eventStore,
			BuildEventFilter(command.ListID),
			func(history core.DomainEvents) core.DecisionResult {
				return Decide(history, command, section)
			},
		)

		return execErr
	}, h.retryOptions...)

	return shell.HandlerResultFrom(retryMetrics, result, err), err
}
