package core

import (
	"time"
)

const (
	BookAddedToCatalogEventType       = "BookAddedToCatalog"
	BookAvailabilityAdjustedEventType = "BookAvailabilityAdjusted"
	BookRemovedFromCatalogEventType   = "BookRemovedFromCatalog"
)

// BookAddedToCatalog represents when a title is catalogued with its stock of copies.
type BookAddedToCatalog struct {
	BookID      BookIDString
	Title       string
	Author      string
	ISBN        ISBNString
	Genre       string
	TotalCopies int
	OccurredAt  OccurredAt
}

// BuildBookAddedToCatalog creates a new BookAddedToCatalog event.
func BuildBookAddedToCatalog(
	bookID BookIDString,
	title string,
	author string,
	isbn ISBNString,
	genre string,
	totalCopies int,
	occurredAt time.Time,
) BookAddedToCatalog {

	return BookAddedToCatalog{
		BookID:      bookID,
		Title:       title,
		Author:      author,
		ISBN:        isbn,
		Genre:       genre,
		TotalCopies: totalCopies,
		OccurredAt:  ToOccurredAt(occurredAt),
	}
}

func (e BookAddedToCatalog) EventType() EventTypeString { return BookAddedToCatalogEventType }
func (e BookAddedToCatalog) HasOccurredAt() time.Time   { return e.OccurredAt }
func (e BookAddedToCatalog) IsErrorEvent() bool         { return false }

// Reasons for availability adjustments.
const (
	AdjustmentManual  = "manual"
	AdjustmentIssue   = "issue"
	AdjustmentReturn  = "return"
	AdjustmentFulfill = "fulfill"
)

// BookAvailabilityAdjusted represents a change of the available copies of a book by Delta.
// It is only ever built by AdjustAvailability.
type BookAvailabilityAdjusted struct {
	BookID     BookIDString
	Delta      int
	Reason     string
	OccurredAt OccurredAt
}

func (e BookAvailabilityAdjusted) EventType() EventTypeString {
	return BookAvailabilityAdjustedEventType
}
func (e BookAvailabilityAdjusted) HasOccurredAt() time.Time { return e.OccurredAt }
func (e BookAvailabilityAdjusted) IsErrorEvent() bool       { return false }

// BookRemovedFromCatalog represents when a book is taken out of the catalog.
// It carries the ISBN so that the number is free to be used again.
type BookRemovedFromCatalog struct {
	BookID     BookIDString
	ISBN       ISBNString
	OccurredAt OccurredAt
}

// BuildBookRemovedFromCatalog creates a new BookRemovedFromCatalog event.
func BuildBookRemovedFromCatalog(bookID BookIDString, isbn ISBNString, occurredAt time.Time) BookRemovedFromCatalog {
	return BookRemovedFromCatalog{
		BookID:     bookID,
		ISBN:       isbn,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

func (e BookRemovedFromCatalog) EventType() EventTypeString { return BookRemovedFromCatalogEventType }
func (e BookRemovedFromCatalog) HasOccurredAt() time.Time   { return e.OccurredAt }
func (e BookRemovedFromCatalog) IsErrorEvent() bool         { return false }
