package fulfillreservation

import (
	"context"

	"github.com/schoollibrary/lendingengine/library/shared/core"
	"github.com/schoollibrary/lendingengine/library/shared/shell"
)

// CommandHandler orchestrates Lookup -> Query -> Decide -> Append with retry on concurrency conflicts.
// External wrappers handle all observability concerns.
type CommandHandler struct {
	eventStore   shell.EventStore
	members      shell.MemberDirectory
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
func NewCommandHandler(
	eventStore shell.EventStore,
	members shell.MemberDirectory,
	policy core.LoanPolicy,
	opts ...Option,
) CommandHandler {

	handler := CommandHandler{
		eventStore: eventStore,
		members:    members,
		policy:     policy,
	}

	for _, opt := range opts {
		opt(&handler)
	}

	return handler
}

// Handle executes the command with retry logic.
// The reservation is read first to find its book, the decision then runs on the book-scoped stream,
// so that it competes with every other command that changes the book's available copies.
func (h CommandHandler) Handle(ctx context.Context, command Command) (shell.HandlerResult, error) {
	var result core.DecisionResult

	retryMetrics, err := shell.RetryWithExponentialBackoff(ctx, func(retryCtx context.Context) error {
		reservationEvents, _, lookupErr := shell.QueryDomainEvents(
			retryCtx, h.eventStore, BuildReservationFilter(command.ReservationID))
		if lookupErr != nil {
			return lookupErr
		}

		reservation := core.ProjectReservation(reservationEvents, command.ReservationID)

		requester := core.Member{}
		if reservation.Exists() {
			if requester, lookupErr = h.members.Member(retryCtx, reservation.MemberID); lookupErr != nil {
				return lookupErr
			}
		}

		var execErr error
		result, execErr = shell.QueryDecideAppend(
			retryCtx,
			h.eventStore,
			BuildEventFilter(command.ReservationID, reservation.BookID, command.TransactionID),
			func(history core.DomainEvents) core.DecisionResult {
				return Decide(history, command, requester, h.policy)
			},
		)

		return execErr
	}, h.retryOptions...)

	return shell.HandlerResultFrom(retryMetrics, result, err), err
}
