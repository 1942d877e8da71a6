package core

import (
	"slices"
)

// ReadingList is the read model of a teacher curated list of books for one section.
type ReadingList struct {
	ID        ListIDString
	Name      string
	TeacherID MemberIDString
	SectionID SectionIDString
	BookIDs   []BookIDString
	Deleted   bool
}

// IsActive reports whether the list was created and not deleted since.
func (l ReadingList) IsActive() bool {
	return l.ID != "" && !l.Deleted
}

func (l ReadingList) Contains(bookID BookIDString) bool {
	return slices.Contains(l.BookIDs, bookID)
}

// ProjectReadingList replays history into the ReadingList with the given id.
func ProjectReadingList(history DomainEvents, listID ListIDString) ReadingList {
	l := ReadingList{}

	for _, event := range history {
		switch e := event.(type) {
		case ReadingListCreated:
			if e.ListID == listID {
				l = ReadingList{
					ID:        e.ListID,
					Name:      e.Name,
					TeacherID: e.TeacherID,
					SectionID: e.SectionID,
					BookIDs:   []BookIDString{},
				}
			}

		case BookAddedToReadingList:
			if e.ListID == listID && l.ID != "" && !l.Contains(e.BookID) {
				l.BookIDs = append(l.BookIDs, e.BookID)
			}

		case ReadingListDeleted:
			if e.ListID == listID {
				l.Deleted = true
			}
		}
	}

	return l
}
