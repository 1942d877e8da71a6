package core

import (
	"fmt"
	"time"
)

// Book is the catalog read model of a title and its copies.
type Book struct {
	ID              BookIDString
	Title           string
	Author          string
	ISBN            ISBNString
	Genre           string
	TotalCopies     int
	AvailableCopies int
	Removed         bool
}

// IsCatalogued reports whether the book was added and not removed since.
func (b Book) IsCatalogued() bool {
	return b.ID != "" && !b.Removed
}

// OutstandingCopies is the number of copies currently out on loan.
func (b Book) OutstandingCopies() int {
	return b.TotalCopies - b.AvailableCopies
}

// Apply folds one event into the book. Events of other books are ignored.
func (b *Book) Apply(event DomainEvent) {
	switch e := event.(type) {
	case BookAddedToCatalog:
		if b.ID != "" && b.ID != e.BookID {
			return
		}

		*b = Book{
			ID:              e.BookID,
			Title:           e.Title,
			Author:          e.Author,
			ISBN:            e.ISBN,
			Genre:           e.Genre,
			TotalCopies:     e.TotalCopies,
			AvailableCopies: e.TotalCopies,
		}

	case BookAvailabilityAdjusted:
		if e.BookID == b.ID {
			b.AvailableCopies += e.Delta
		}

	case BookRemovedFromCatalog:
		if e.BookID == b.ID {
			b.Removed = true
		}
	}
}

// ProjectBook replays history into the Book with the given id.
// The zero Book is returned if the history does not contain it.
func ProjectBook(history DomainEvents, bookID BookIDString) Book {
	b := Book{}

	for _, event := range history {
		if added, ok := event.(BookAddedToCatalog); ok && added.BookID != bookID {
			continue
		}

		b.Apply(event)
	}

	return b
}

// AdjustAvailability is the only way to change the available copies of a book.
// delta must be +1 or -1 and the result must stay within 0..TotalCopies, otherwise it fails with ErrOutOfRange.
func AdjustAvailability(book Book, delta int, reason string, occurredAt time.Time) (BookAvailabilityAdjusted, error) {
	if !book.IsCatalogued() {
		return BookAvailabilityAdjusted{}, NewDomainError(ErrNotFound, EntityBook, book.ID, "book is not in the catalog")
	}

	if delta != 1 && delta != -1 {
		return BookAvailabilityAdjusted{}, NewDomainError(
			ErrOutOfRange, EntityBook, book.ID, fmt.Sprintf("delta must be +1 or -1, got %d", delta))
	}

	next := book.AvailableCopies + delta
	if next < 0 || next > book.TotalCopies {
		return BookAvailabilityAdjusted{}, NewDomainError(
			ErrOutOfRange, EntityBook, book.ID,
			fmt.Sprintf("available copies would be %d of %d", next, book.TotalCopies))
	}

	return BookAvailabilityAdjusted{
		BookID:     book.ID,
		Delta:      delta,
		Reason:     reason,
		OccurredAt: ToOccurredAt(occurredAt),
	}, nil
}
