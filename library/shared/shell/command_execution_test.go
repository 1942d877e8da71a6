package shell_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schoollibrary/lendingengine/eventstore"
	"github.com/schoollibrary/lendingengine/library/shared/core"
	"github.com/schoollibrary/lendingengine/library/shared/shell"
)

func Test_QueryDecideAppend_AppendsSuccessfulDecision(t *testing.T) {
	// setup
	store := newSQLiteStore(t)
	ctx := context.Background()
	filter := eventstore.BuildEventFilter().Matching().AnyPredicateOf(eventstore.P("AcquisitionID", "a-1")).Finalize()
	now := time.Now()

	// act
	result, err := shell.QueryDecideAppend(ctx, store, filter, func(history core.DomainEvents) core.DecisionResult {
		if len(history) > 0 {
			return core.IdempotentDecision()
		}
		return core.SuccessDecision(core.BuildAcquisitionRequested("a-1", "Dune", "Frank Herbert", "book club", "m-1", now))
	})
	require.NoError(t, err)
	again, err := shell.QueryDecideAppend(ctx, store, filter, func(history core.DomainEvents) core.DecisionResult {
		if len(history) > 0 {
			return core.IdempotentDecision()
		}
		return core.SuccessDecision(core.BuildAcquisitionRequested("a-1", "Dune", "Frank Herbert", "book club", "m-1", now))
	})
	require.NoError(t, err)

	// assert
	assert.Len(t, result.Events, 1)
	assert.False(t, again.HasEventsToAppend())

	history, _, err := shell.QueryDomainEvents(ctx, store, filter)
	require.NoError(t, err)
	assert.Len(t, history, 1)
}

func Test_QueryDecideAppend_RecordsRejection(t *testing.T) {
	// setup
	store := newSQLiteStore(t)
	ctx := context.Background()
	filter := eventstore.BuildEventFilter().Matching().AnyPredicateOf(eventstore.P("AcquisitionID", "a-404")).Finalize()
	rejection := core.NewDomainError(core.ErrNotFound, core.EntityAcquisition, "a-404", "")

	// act
	result, err := shell.QueryDecideAppend(ctx, store, filter, func(_ core.DomainEvents) core.DecisionResult {
		return core.RejectDecision("DecideAcquisition", "a-404", rejection, time.Now())
	})

	// assert
	assert.ErrorIs(t, err, core.ErrNotFound)

	audit, _, queryErr := shell.QueryDomainEvents(ctx, store,
		eventstore.BuildEventFilter().Matching().AnyEventTypeOf(core.CommandRejectedEventType).Finalize())
	require.NoError(t, queryErr)
	assert.Len(t, audit, 1)

	handlerResult := shell.HandlerResultFrom(shell.RetryMetrics{Attempts: 1}, result, err)
	assert.False(t, handlerResult.Idempotent)
	assert.Len(t, handlerResult.Events, 1)
}

func Test_HandlerResultFrom(t *testing.T) {
	now := time.Now()
	metrics := shell.RetryMetrics{Attempts: 2, LastErrorType: "none"}
	success := core.SuccessDecision(core.BuildAcquisitionRejected("a-1", now))

	idempotent := shell.HandlerResultFrom(metrics, core.IdempotentDecision(), nil)
	succeeded := shell.HandlerResultFrom(metrics, success, nil)
	failed := shell.HandlerResultFrom(metrics, success, errors.New("connection reset"))

	assert.True(t, idempotent.Idempotent)
	assert.Equal(t, 2, idempotent.RetryAttempts)
	assert.Len(t, succeeded.Events, 1)
	assert.Empty(t, failed.Events)
}
