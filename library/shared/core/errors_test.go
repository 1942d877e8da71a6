package core_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/schoollibrary/lendingengine/library/shared/core"
)

func Test_DomainError_MatchesItsKind(t *testing.T) {
	// arrange
	err := core.NewDomainError(core.ErrInvalidState, core.EntityTransaction, "tx-1", "already returned").
		WithStatus(string(core.TransactionStatusReturned))

	// act
	wrapped := fmt.Errorf("return book: %w", err)

	// assert
	assert.ErrorIs(t, wrapped, core.ErrInvalidState)
	assert.NotErrorIs(t, wrapped, core.ErrNotFound)
	assert.Equal(t, "transaction tx-1 (status Returned): invalid state: already returned", err.Error())

	var domainErr *core.DomainError
	assert.True(t, errors.As(wrapped, &domainErr))
	assert.Equal(t, "tx-1", domainErr.EntityID)
}

func Test_ErrDuplicate_IsAConflict(t *testing.T) {
	// arrange
	err := core.NewDomainError(core.ErrDuplicate, core.EntityReservation, "r-1", "")

	// act & assert
	assert.ErrorIs(t, err, core.ErrDuplicate)
	assert.ErrorIs(t, err, core.ErrConflict)
	assert.Equal(t, "Duplicate", core.ErrorKindName(err))
	assert.Equal(t, "Conflict", core.ErrorKindName(core.ErrConflict))
	assert.Equal(t, "", core.ErrorKindName(errors.New("disk full")))
}
