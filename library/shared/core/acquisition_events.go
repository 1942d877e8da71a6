package core

import (
	"time"
)

const (
	AcquisitionRequestedEventType = "AcquisitionRequested"
	AcquisitionApprovedEventType  = "AcquisitionApproved"
	AcquisitionRejectedEventType  = "AcquisitionRejected"
)

// AcquisitionRequested represents a purchase request for a title the library does not own.
type AcquisitionRequested struct {
	AcquisitionID AcquisitionIDString
	Title         string
	Author        string
	Reason        string
	RequesterID   MemberIDString
	RequestDate   time.Time
	OccurredAt    OccurredAt
}

// BuildAcquisitionRequested creates a new AcquisitionRequested event, the request date is the time of occurrence.
func BuildAcquisitionRequested(
	acquisitionID AcquisitionIDString,
	title string,
	author string,
	reason string,
	requesterID MemberIDString,
	occurredAt time.Time,
) AcquisitionRequested {

	at := ToOccurredAt(occurredAt)

	return AcquisitionRequested{
		AcquisitionID: acquisitionID,
		Title:         title,
		Author:        author,
		Reason:        reason,
		RequesterID:   requesterID,
		RequestDate:   at,
		OccurredAt:    at,
	}
}

func (e AcquisitionRequested) EventType() EventTypeString { return AcquisitionRequestedEventType }
func (e AcquisitionRequested) HasOccurredAt() time.Time   { return e.OccurredAt }
func (e AcquisitionRequested) IsErrorEvent() bool         { return false }

// AcquisitionApproved represents the approval of a purchase request. It does not add a book to the catalog.
type AcquisitionApproved struct {
	AcquisitionID AcquisitionIDString
	AcquiredDate  time.Time
	OccurredAt    OccurredAt
}

// BuildAcquisitionApproved creates a new AcquisitionApproved event, the acquired date is the time of occurrence.
func BuildAcquisitionApproved(acquisitionID AcquisitionIDString, occurredAt time.Time) AcquisitionApproved {
	at := ToOccurredAt(occurredAt)

	return AcquisitionApproved{
		AcquisitionID: acquisitionID,
		AcquiredDate:  at,
		OccurredAt:    at,
	}
}

func (e AcquisitionApproved) EventType() EventTypeString { return AcquisitionApprovedEventType }
func (e AcquisitionApproved) HasOccurredAt() time.Time   { return e.OccurredAt }
func (e AcquisitionApproved) IsErrorEvent() bool         { return false }

// AcquisitionRejected represents the rejection of a purchase request.
type AcquisitionRejected struct {
	AcquisitionID AcquisitionIDString
	OccurredAt    OccurredAt
}

// BuildAcquisitionRejected creates a new AcquisitionRejected event.
func BuildAcquisitionRejected(acquisitionID AcquisitionIDString, occurredAt time.Time) AcquisitionRejected {
	return AcquisitionRejected{
		AcquisitionID: acquisitionID,
		OccurredAt:    ToOccurredAt(occurredAt),
	}
}

func (e AcquisitionRejected) EventType() EventTypeString { return AcquisitionRejectedEventType }
func (e AcquisitionRejected) HasOccurredAt() time.Time   { return e.OccurredAt }
func (e AcquisitionRejected) IsErrorEvent() bool         { return false }
