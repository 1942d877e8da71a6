package shell

import (
	"time"

	"github.com/schoollibrary/lendingengine/library/shared/core"
)

// HandlerResult represents the outcome of a command handler execution.
type HandlerResult struct {
	// Idempotent is true if the command needed no state change.
	Idempotent bool

	// RetryAttempts is the total number of attempts made, 1 without retries.
	RetryAttempts int

	// TotalRetryDelay only counts the time spent waiting between attempts.
	TotalRetryDelay time.Duration

	// LastErrorType is one of "none", "concurrency_conflict", "context_canceled",
	// "context_deadline_exceeded" or "other".
	LastErrorType string

	RetriesExhausted bool

	// Events are the events the final attempt appended, including the CommandRejected audit event of a rejection.
	Events core.DomainEvents
}

// NewSuccessResult creates a HandlerResult for a command that changed state.
func NewSuccessResult(retryMetrics RetryMetrics, events core.DomainEvents) HandlerResult {
	result := resultFrom(retryMetrics)
	result.Events = events

	return result
}

// NewIdempotentResult creates a HandlerResult for a command that needed no state change.
func NewIdempotentResult(retryMetrics RetryMetrics) HandlerResult {
	result := resultFrom(retryMetrics)
	result.Idempotent = true

	return result
}

// NewErrorResult creates a HandlerResult for a failed or rejected command.
// events holds the audit events if the rejection was recorded.
func NewErrorResult(retryMetrics RetryMetrics, events core.DomainEvents) HandlerResult {
	result := resultFrom(retryMetrics)
	result.Events = events

	return result
}

func resultFrom(retryMetrics RetryMetrics) HandlerResult {
	return HandlerResult{
		RetryAttempts:    retryMetrics.Attempts,
		TotalRetryDelay:  retryMetrics.TotalDelay,
		LastErrorType:    retryMetrics.LastErrorType,
		RetriesExhausted: retryMetrics.RetriesExhausted,
	}
}
