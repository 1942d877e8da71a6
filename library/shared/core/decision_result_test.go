package core_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/schoollibrary/lendingengine/library/shared/core"
)

func Test_DecisionResult(t *testing.T) {
	now := time.Now()
	event := core.BuildReservationRequested("r-1", "b-1", "m-1", now)
	err := core.NewDomainError(core.ErrForbidden, core.EntityReservation, "r-1", "")

	idempotent := core.IdempotentDecision()
	success := core.SuccessDecision(event, core.BuildBookRemovedFromCatalog("b-1", "", now))
	rejected := core.RejectDecision("cancelReservation", "r-1", err, now)

	assert.False(t, idempotent.HasEventsToAppend())
	assert.NoError(t, idempotent.HasError())

	assert.True(t, success.HasEventsToAppend())
	assert.Len(t, success.Events, 2)
	assert.NoError(t, success.HasError())

	assert.True(t, rejected.HasEventsToAppend())
	assert.ErrorIs(t, rejected.HasError(), core.ErrForbidden)
	if assert.Len(t, rejected.Events, 1) {
		audit, ok := rejected.Events[0].(core.CommandRejected)
		assert.True(t, ok)
		assert.True(t, audit.IsErrorEvent())
		assert.Equal(t, "Forbidden", audit.ErrorKind)
		assert.Equal(t, "r-1", audit.EntityID)
	}
}
