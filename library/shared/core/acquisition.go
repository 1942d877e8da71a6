package core

import (
	"time"
)

// Acquisition is the read model of a purchase request.
type Acquisition struct {
	ID           AcquisitionIDString
	Title        string
	Author       string
	Reason       string
	RequesterID  MemberIDString
	RequestDate  time.Time
	Status       AcquisitionStatus
	AcquiredDate *time.Time
}

func (a Acquisition) Exists() bool {
	return a.ID != ""
}

// Apply folds one event into the acquisition. Events of other acquisitions are ignored.
func (a *Acquisition) Apply(event DomainEvent) {
	switch e := event.(type) {
	case AcquisitionRequested:
		if a.ID == "" || a.ID == e.AcquisitionID {
			*a = Acquisition{
				ID:          e.AcquisitionID,
				Title:       e.Title,
				Author:      e.Author,
				Reason:      e.Reason,
				RequesterID: e.RequesterID,
				RequestDate: e.RequestDate,
				Status:      AcquisitionStatusPending,
			}
		}

	case AcquisitionApproved:
		if e.AcquisitionID == a.ID {
			acquiredDate := e.AcquiredDate
			a.Status = AcquisitionStatusApproved
			a.AcquiredDate = &acquiredDate
		}

	case AcquisitionRejected:
		if e.AcquisitionID == a.ID {
			a.Status = AcquisitionStatusRejected
		}
	}
}

// ProjectAcquisition replays history into the Acquisition with the given id.
func ProjectAcquisition(history DomainEvents, acquisitionID AcquisitionIDString) Acquisition {
	a := Acquisition{}

	for _, event := range history {
		if requested, ok := event.(AcquisitionRequested); ok && requested.AcquisitionID != acquisitionID {
			continue
		}

		a.Apply(event)
	}

	return a
}
