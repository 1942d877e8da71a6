package shell_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schoollibrary/lendingengine/eventstore"
	"github.com/schoollibrary/lendingengine/library/shared/core"
	"github.com/schoollibrary/lendingengine/library/shared/shell"
)

func Test_StorableEventFrom_And_DomainEventFrom_KeepTheEvent(t *testing.T) {
	// arrange
	now := time.Date(2026, 3, 2, 9, 30, 0, 123456789, time.UTC)
	member := core.Member{ID: "m-1", Role: core.RoleTeacher, Name: "Ms. Novak"}
	issued := core.BuildBookIssued("tx-1", "b-1", member, now.AddDate(0, 0, 28), "r-1", now)
	metadata := shell.EventMetadataChain(context.Background(), 1)[0]

	// act
	storableEvent, err := shell.StorableEventFrom(issued, metadata)
	require.NoError(t, err)
	domainEvent, err := shell.DomainEventFrom(storableEvent)
	require.NoError(t, err)
	restoredMetadata, err := shell.EventMetadataFrom(storableEvent)
	require.NoError(t, err)

	// assert
	assert.Equal(t, core.BookIssuedEventType, storableEvent.EventType)
	assert.Contains(t, string(storableEvent.PayloadJSON), `"BookID":"b-1"`)
	assert.Equal(t, issued, domainEvent)
	assert.Equal(t, metadata, restoredMetadata)
}

func Test_DomainEventFrom_UnknownEventType(t *testing.T) {
	// arrange
	storableEvent, err := eventstore.BuildStorableEventWithEmptyMetadata("BookShelved", time.Now(), []byte(`{}`))
	require.NoError(t, err)

	// act
	_, err = shell.DomainEventFrom(storableEvent)

	// assert
	assert.ErrorIs(t, err, shell.ErrMappingToDomainEventFailed)
	assert.ErrorIs(t, err, shell.ErrMappingToDomainEventUnknownEventType)
}

func Test_DomainEventFrom_BrokenPayload(t *testing.T) {
	// arrange
	storableEvent := eventstore.StorableEvent{
		EventType:   core.BookReturnedEventType,
		PayloadJSON: []byte(`{"OverdueDays":"three"}`),
	}

	// act
	_, err := shell.DomainEventFrom(storableEvent)

	// assert
	assert.ErrorIs(t, err, shell.ErrMappingToDomainEventFailed)
}

func Test_EventMetadataChain(t *testing.T) {
	// arrange
	ctx := shell.WithCorrelationID(context.Background(), "req-42")

	// act
	chain := shell.EventMetadataChain(ctx, 3)

	// assert
	require.Len(t, chain, 3)
	assert.Equal(t, "req-42", chain[0].CausationID)
	for i, metadata := range chain {
		assert.Equal(t, "req-42", metadata.CorrelationID)
		assert.NotEmpty(t, metadata.MessageID)
		if i > 0 {
			assert.Equal(t, chain[i-1].MessageID, metadata.CausationID)
		}
	}
}

func Test_EventMetadataChain_WithoutCorrelationID(t *testing.T) {
	// act
	chain := shell.EventMetadataChain(context.Background(), 2)

	// assert
	assert.NotEmpty(t, chain[0].CorrelationID)
	assert.Equal(t, chain[0].CorrelationID, chain[1].CorrelationID)
	assert.Equal(t, "", shell.CorrelationIDFrom(context.Background()))
}
