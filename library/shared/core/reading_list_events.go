package core

import (
	"time"
)

const (
	ReadingListCreatedEventType     = "ReadingListCreated"
	BookAddedToReadingListEventType = "BookAddedToReadingList"
	ReadingListDeletedEventType     = "ReadingListDeleted"
)

// ReadingListCreated represents when a class teacher starts a reading list for their section.
type ReadingListCreated struct {
	ListID     ListIDString
	Name       string
	TeacherID  MemberIDString
	SectionID  SectionIDString
	OccurredAt OccurredAt
}

// BuildReadingListCreated creates a new ReadingListCreated event.
func BuildReadingListCreated(
	listID ListIDString,
	name string,
	teacherID MemberIDString,
	sectionID SectionIDString,
	occurredAt time.Time,
) ReadingListCreated {

	return ReadingListCreated{
		ListID:     listID,
		Name:       name,
		TeacherID:  teacherID,
		SectionID:  sectionID,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

func (e ReadingListCreated) EventType() EventTypeString { return ReadingListCreatedEventType }
func (e ReadingListCreated) HasOccurredAt() time.Time   { return e.OccurredAt }
func (e ReadingListCreated) IsErrorEvent() bool         { return false }

// BookAddedToReadingList represents when the owner appends a book to a reading list.
type BookAddedToReadingList struct {
	ListID     ListIDString
	BookID     BookIDString
	TeacherID  MemberIDString
	OccurredAt OccurredAt
}

// BuildBookAddedToReadingList creates a new BookAddedToReadingList event.
func BuildBookAddedToReadingList(
	listID ListIDString,
	bookID BookIDString,
	teacherID MemberIDString,
	occurredAt time.Time,
) BookAddedToReadingList {

	return BookAddedToReadingList{
		ListID:     listID,
		BookID:     bookID,
		TeacherID:  teacherID,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

func (e BookAddedToReadingList) EventType() EventTypeString { return BookAddedToReadingListEventType }
func (e BookAddedToReadingList) HasOccurredAt() time.Time   { return e.OccurredAt }
func (e BookAddedToReadingList) IsErrorEvent() bool         { return false }

// ReadingListDeleted represents when the owner deletes a reading list.
type ReadingListDeleted struct {
	ListID     ListIDString
	TeacherID  MemberIDString
	OccurredAt OccurredAt
}

// BuildReadingListDeleted creates a new ReadingListDeleted event.
func BuildReadingListDeleted(listID ListIDString, teacherID MemberIDString, occurredAt time.Time) ReadingListDeleted {
	return ReadingListDeleted{
		ListID:     listID,
		TeacherID:  teacherID,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

func (e ReadingListDeleted) EventType() EventTypeString { return ReadingListDeletedEventType }
func (e ReadingListDeleted) HasOccurredAt() time.Time   { return e.OccurredAt }
func (e ReadingListDeleted) IsErrorEvent() bool         { return false }
