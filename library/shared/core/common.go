package core

import (
	"time"
)

type BookIDString = string
type MemberIDString = string
type TransactionIDString = string
type ReservationIDString = string
type FeeIDString = string
type ListIDString = string
type SectionIDString = string
type AcquisitionIDString = string
type ISBNString = string

// EventTypeString is the type identifier of a DomainEvent, as stored in the event store.
type EventTypeString = string

// OccurredAt represents when an event occurred.
type OccurredAt = time.Time

// ToOccurredAt converts a time to OccurredAt with UTC normalization and microsecond precision,
// which is what both storage engines can round-trip.
func ToOccurredAt(t time.Time) OccurredAt {
	return t.UTC().Truncate(time.Microsecond)
}

// MemberRole is the role a member has in the school, it decides the loan period.
type MemberRole string

const (
	RoleStudent MemberRole = "Student"
	RoleTeacher MemberRole = "Teacher"
	RoleStaff   MemberRole = "Staff"
)

// Member is an entry of the external member directory.
type Member struct {
	ID   MemberIDString
	Role MemberRole
	Name string
}

// IsKnown reports whether the directory returned a member.
func (m Member) IsKnown() bool {
	return m.ID != ""
}

// Section is a course section of the external section directory.
type Section struct {
	ID             SectionIDString
	ClassTeacherID MemberIDString
	MemberIDs      []MemberIDString
}

func (s Section) IsKnown() bool {
	return s.ID != ""
}

// HasMember reports whether memberID is the class teacher or one of the section's members.
func (s Section) HasMember(memberID MemberIDString) bool {
	if memberID == "" {
		return false
	}

	if s.ClassTeacherID == memberID {
		return true
	}

	for _, id := range s.MemberIDs {
		if id == memberID {
			return true
		}
	}

	return false
}
