package core

import (
	"errors"
	"fmt"
	"strings"
)

// Error kinds of the lending engine. Match them with errors.Is.
var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidState = errors.New("invalid state")
	ErrUnavailable  = errors.New("unavailable")
	ErrOutOfRange   = errors.New("out of range")
	ErrForbidden    = errors.New("forbidden")
	ErrConflict     = errors.New("conflict")

	// ErrDuplicate is a Conflict, errors.Is(err, ErrConflict) holds for it.
	ErrDuplicate = fmt.Errorf("%w: duplicate", ErrConflict)
)

// Entity names used in DomainError.
const (
	EntityBook        = "book"
	EntityMember      = "member"
	EntitySection     = "section"
	EntityTransaction = "transaction"
	EntityReservation = "reservation"
	EntityReadingList = "reading list"
	EntityAcquisition = "acquisition"
)

// DomainError carries the kind of a rejected command plus the entity it was rejected for.
type DomainError struct {
	Kind     error
	Entity   string
	EntityID string
	Status   string
	Reason   string
}

// NewDomainError builds a DomainError of the given kind.
func NewDomainError(kind error, entity string, entityID string, reason string) *DomainError {
	return &DomainError{
		Kind:     kind,
		Entity:   entity,
		EntityID: entityID,
		Reason:   reason,
	}
}

// WithStatus returns a copy of e that also reports the current status of the entity.
func (e *DomainError) WithStatus(status string) *DomainError {
	c := *e
	c.Status = status

	return &c
}

func (e *DomainError) Error() string {
	var b strings.Builder

	b.WriteString(e.Entity)
	if e.EntityID != "" {
		b.WriteString(" ")
		b.WriteString(e.EntityID)
	}

	if e.Status != "" {
		b.WriteString(" (status ")
		b.WriteString(e.Status)
		b.WriteString(")")
	}

	b.WriteString(": ")
	b.WriteString(e.Kind.Error())

	if e.Reason != "" {
		b.WriteString(": ")
		b.WriteString(e.Reason)
	}

	return b.String()
}

func (e *DomainError) Unwrap() error {
	return e.Kind
}

// ErrorKindName returns the name of the error kind err belongs to, or "" for infrastructure errors.
func ErrorKindName(err error) string {
	switch {
	case errors.Is(err, ErrDuplicate):
		return "Duplicate"
	case errors.Is(err, ErrConflict):
		return "Conflict"
	case errors.Is(err, ErrNotFound):
		return "NotFound"
	case errors.Is(err, ErrInvalidState):
		return "InvalidState"
	case errors.Is(err, ErrUnavailable):
		return "Unavailable"
	case errors.Is(err, ErrOutOfRange):
		return "OutOfRange"
	case errors.Is(err, ErrForbidden):
		return "Forbidden"
	default:
		return ""
	}
}
