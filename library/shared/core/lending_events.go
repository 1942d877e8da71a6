package core

import (
	"time"
)

const (
	BookIssuedEventType   = "BookIssued"
	BookReturnedEventType = "BookReturned"
	FineAssessedEventType = "FineAssessed"
)

// BookIssued represents when a copy of a book is loaned to a member, opening a Transaction.
// ReservationID is set when the loan fulfills a reservation.
type BookIssued struct {
	TransactionID TransactionIDString
	BookID        BookIDString
	MemberID      MemberIDString
	MemberRole    MemberRole
	IssueDate     time.Time
	DueDate       time.Time
	ReservationID ReservationIDString
	OccurredAt    OccurredAt
}

// BuildBookIssued creates a new BookIssued event, the issue date is the time of occurrence.
func BuildBookIssued(
	transactionID TransactionIDString,
	bookID BookIDString,
	member Member,
	dueDate time.Time,
	reservationID ReservationIDString,
	occurredAt time.Time,
) BookIssued {

	at := ToOccurredAt(occurredAt)

	return BookIssued{
		TransactionID: transactionID,
		BookID:        bookID,
		MemberID:      member.ID,
		MemberRole:    member.Role,
		IssueDate:     at,
		DueDate:       ToOccurredAt(dueDate),
		ReservationID: reservationID,
		OccurredAt:    at,
	}
}

func (e BookIssued) EventType() EventTypeString { return BookIssuedEventType }
func (e BookIssued) HasOccurredAt() time.Time   { return e.OccurredAt }
func (e BookIssued) IsErrorEvent() bool         { return false }

// BookReturned represents when an issued copy comes back, closing the Transaction.
type BookReturned struct {
	TransactionID TransactionIDString
	BookID        BookIDString
	MemberID      MemberIDString
	ReturnDate    time.Time
	OverdueDays   int
	OccurredAt    OccurredAt
}

// BuildBookReturned creates a new BookReturned event, the return date is the time of occurrence.
func BuildBookReturned(transaction Transaction, overdueDays int, occurredAt time.Time) BookReturned {
	at := ToOccurredAt(occurredAt)

	return BookReturned{
		TransactionID: transaction.ID,
		BookID:        transaction.BookID,
		MemberID:      transaction.MemberID,
		ReturnDate:    at,
		OverdueDays:   overdueDays,
		OccurredAt:    at,
	}
}

func (e BookReturned) EventType() EventTypeString { return BookReturnedEventType }
func (e BookReturned) HasOccurredAt() time.Time   { return e.OccurredAt }
func (e BookReturned) IsErrorEvent() bool         { return false }

// FineAssessed represents the overdue fine of a returned Transaction.
type FineAssessed struct {
	FeeID         FeeIDString
	TransactionID TransactionIDString
	BookID        BookIDString
	MemberID      MemberIDString
	FeeType       string
	Amount        int
	Status        string
	DueDate       time.Time
	OccurredAt    OccurredAt
}

// BuildFineAssessed creates a new unpaid FineAssessed event.
func BuildFineAssessed(
	feeID FeeIDString,
	transaction Transaction,
	amount int,
	dueDate time.Time,
	occurredAt time.Time,
) FineAssessed {

	return FineAssessed{
		FeeID:         feeID,
		TransactionID: transaction.ID,
		BookID:        transaction.BookID,
		MemberID:      transaction.MemberID,
		FeeType:       FeeTypeLibraryFine,
		Amount:        amount,
		Status:        FeeStatusUnpaid,
		DueDate:       ToOccurredAt(dueDate),
		OccurredAt:    ToOccurredAt(occurredAt),
	}
}

func (e FineAssessed) EventType() EventTypeString { return FineAssessedEventType }
func (e FineAssessed) HasOccurredAt() time.Time   { return e.OccurredAt }
func (e FineAssessed) IsErrorEvent() bool         { return false }
