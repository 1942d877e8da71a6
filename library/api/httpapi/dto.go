package httpapi

import (
	"time"

	"github.com/schoollibrary/lendingengine/library/shared/core"
)

type AddBookRequest struct {
	BookID      string `json:"book_id"`
	Title       string `json:"title" binding:"required"`
	Author      string `json:"author" binding:"required"`
	ISBN        string `json:"isbn"`
	Genre       string `json:"genre"`
	TotalCopies int    `json:"total_copies"`
}

type AdjustAvailabilityRequest struct {
	Delta int `json:"delta" binding:"required"`
}

type RequestReservationRequest struct {
	ReservationID string `json:"reservation_id"`
	BookID        string `json:"book_id" binding:"required"`
	MemberID      string `json:"member_id" binding:"required"`
}

type CancelReservationRequest struct {
	MemberID string `json:"member_id" binding:"required"`
}

type FulfillReservationRequest struct {
	TransactionID string `json:"transaction_id"`
}

type IssueBookRequest struct {
	TransactionID string     `json:"transaction_id"`
	BookID        string     `json:"book_id" binding:"required"`
	MemberID      string     `json:"member_id" binding:"required"`
	DueDate       *time.Time `json:"due_date"`
}

// ReturnBookRequest defaults AsOf to the time of the request.
type ReturnBookRequest struct {
	AsOf *time.Time `json:"as_of"`
}

type CreateReadingListRequest struct {
	ListID    string `json:"list_id"`
	Name      string `json:"name" binding:"required"`
	TeacherID string `json:"teacher_id" binding:"required"`
	SectionID string `json:"section_id" binding:"required"`
}

type AddBookToReadingListRequest struct {
	BookID    string `json:"book_id" binding:"required"`
	TeacherID string `json:"teacher_id" binding:"required"`
}

type SubmitAcquisitionRequest struct {
	AcquisitionID string `json:"acquisition_id"`
	Title         string `json:"title" binding:"required"`
	Author        string `json:"author" binding:"required"`
	Reason        string `json:"reason"`
	RequesterID   string `json:"requester_id" binding:"required"`
}

type DecideAcquisitionRequest struct {
	Approve *bool `json:"approve" binding:"required"`
}

type BookResponse struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Author          string `json:"author"`
	ISBN            string `json:"isbn,omitempty"`
	Genre           string `json:"genre,omitempty"`
	TotalCopies     int    `json:"total_copies"`
	AvailableCopies int    `json:"available_copies"`
}

type CatalogResponse struct {
	Books []BookResponse `json:"books"`
	Count int            `json:"count"`
}

type ReservationResponse struct {
	ID            string    `json:"id"`
	BookID        string    `json:"book_id"`
	MemberID      string    `json:"member_id"`
	RequestDate   time.Time `json:"request_date"`
	Status        string    `json:"status"`
	TransactionID string    `json:"transaction_id,omitempty"`
	FollowUpDue   *bool     `json:"follow_up_due,omitempty"`
}

type ReservationQueueResponse struct {
	BookID       string                `json:"book_id"`
	Reservations []ReservationResponse `json:"reservations"`
	Count        int                   `json:"count"`
}

type TransactionResponse struct {
	ID            string       `json:"id"`
	BookID        string       `json:"book_id"`
	MemberID      string       `json:"member_id"`
	MemberRole    string       `json:"member_role"`
	IssueDate     time.Time    `json:"issue_date"`
	DueDate       time.Time    `json:"due_date"`
	ReturnDate    *time.Time   `json:"return_date,omitempty"`
	Status        string       `json:"status"`
	ReservationID string       `json:"reservation_id,omitempty"`
	OverdueDays   int          `json:"overdue_days"`
	DaysOverdue   *int         `json:"days_overdue,omitempty"`
	Fee           *FeeResponse `json:"fee,omitempty"`
}

type LoansResponse struct {
	MemberID string                `json:"member_id"`
	Loans    []TransactionResponse `json:"loans"`
	Count    int                   `json:"count"`
	Overdue  int                   `json:"overdue"`
}

type FeeResponse struct {
	ID            string    `json:"id"`
	TransactionID string    `json:"transaction_id"`
	BookID        string    `json:"book_id"`
	MemberID      string    `json:"member_id"`
	FeeType       string    `json:"fee_type"`
	Amount        int       `json:"amount"`
	Status        string    `json:"status"`
	DueDate       time.Time `json:"due_date"`
}

type FinesResponse struct {
	Fees        []FeeResponse `json:"fees"`
	Count       int           `json:"count"`
	TotalAmount int           `json:"total_amount"`
}

type ResyncResponse struct {
	Delivered int `json:"delivered"`
}

type ReadingListResponse struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	TeacherID string   `json:"teacher_id"`
	SectionID string   `json:"section_id"`
	BookIDs   []string `json:"book_ids"`
}

type AcquisitionResponse struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Author       string     `json:"author"`
	Reason       string     `json:"reason,omitempty"`
	RequesterID  string     `json:"requester_id"`
	RequestDate  time.Time  `json:"request_date"`
	Status       string     `json:"status"`
	AcquiredDate *time.Time `json:"acquired_date,omitempty"`
}

type AcquisitionsResponse struct {
	Acquisitions []AcquisitionResponse `json:"acquisitions"`
	Count        int                   `json:"count"`
}

func bookResponse(b core.Book) BookResponse {
	return BookResponse{
		ID:              b.ID,
		Title:           b.Title,
		Author:          b.Author,
		ISBN:            b.ISBN,
		Genre:           b.Genre,
		TotalCopies:     b.TotalCopies,
		AvailableCopies: b.AvailableCopies,
	}
}

func reservationResponse(r core.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:            r.ID,
		BookID:        r.BookID,
		MemberID:      r.MemberID,
		RequestDate:   r.RequestDate,
		Status:        string(r.Status),
		TransactionID: r.TransactionID,
	}
}

func transactionResponse(t core.Transaction, fee *core.Fee) TransactionResponse {
	response := TransactionResponse{
		ID:            t.ID,
		BookID:        t.BookID,
		MemberID:      t.MemberID,
		MemberRole:    string(t.MemberRole),
		IssueDate:     t.IssueDate,
		DueDate:       t.DueDate,
		ReturnDate:    t.ReturnDate,
		Status:        string(t.Status),
		ReservationID: t.ReservationID,
		OverdueDays:   t.OverdueDays,
	}

	if fee != nil {
		f := feeResponse(*fee)
		response.Fee = &f
	}

	return response
}

func feeResponse(f core.Fee) FeeResponse {
	return FeeResponse{
		ID:            f.ID,
		TransactionID: f.TransactionID,
		BookID:        f.BookID,
		MemberID:      f.MemberID,
		FeeType:       f.FeeType,
		Amount:        f.Amount,
		Status:        f.Status,
		DueDate:       f.DueDate,
	}
}

func readingListResponse(l core.ReadingList) ReadingListResponse {
	bookIDs := make([]string, 0, len(l.BookIDs))
	bookIDs = append(bookIDs, l.BookIDs...)

	return ReadingListResponse{
		ID:        l.ID,
		Name:      l.Name,
		TeacherID: l.TeacherID,
		SectionID: l.SectionID,
		BookIDs:   bookIDs,
	}
}

func acquisitionResponse(a core.Acquisition) AcquisitionResponse {
	return AcquisitionResponse{
		ID:           a.ID,
		Title:        a.Title,
		Author:       a.Author,
		Reason:       a.Reason,
		RequesterID:  a.RequesterID,
		RequestDate:  a.RequestDate,
		Status:       string(a.Status),
		AcquiredDate: a.AcquiredDate,
	}
}
