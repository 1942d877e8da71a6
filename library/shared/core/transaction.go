package core

import (
	"time"
)

// Transaction is the read model of one loan.
type Transaction struct {
	ID            TransactionIDString
	BookID        BookIDString
	MemberID      MemberIDString
	MemberRole    MemberRole
	IssueDate     time.Time
	DueDate       time.Time
	ReturnDate    *time.Time
	Status        TransactionStatus
	ReservationID ReservationIDString
	OverdueDays   int
}

func (t Transaction) Exists() bool {
	return t.ID != ""
}

// ProjectTransaction replays history into the Transaction with the given id.
func ProjectTransaction(history DomainEvents, transactionID TransactionIDString) Transaction {
	t := Transaction{}

	for _, event := range history {
		switch e := event.(type) {
		case BookIssued:
			if e.TransactionID == transactionID {
				t = transactionFrom(e)
			}

		case BookReturned:
			if e.TransactionID == transactionID && t.Exists() {
				t.returned(e)
			}
		}
	}

	return t
}

// ProjectTransactions replays history into all Transactions it contains, in issue order.
func ProjectTransactions(history DomainEvents) []Transaction {
	index := make(map[TransactionIDString]int)
	transactions := make([]Transaction, 0)

	for _, event := range history {
		switch e := event.(type) {
		case BookIssued:
			index[e.TransactionID] = len(transactions)
			transactions = append(transactions, transactionFrom(e))

		case BookReturned:
			if i, ok := index[e.TransactionID]; ok {
				transactions[i].returned(e)
			}
		}
	}

	return transactions
}

func transactionFrom(e BookIssued) Transaction {
	return Transaction{
		ID:            e.TransactionID,
		BookID:        e.BookID,
		MemberID:      e.MemberID,
		MemberRole:    e.MemberRole,
		IssueDate:     e.IssueDate,
		DueDate:       e.DueDate,
		Status:        TransactionStatusIssued,
		ReservationID: e.ReservationID,
	}
}

func (t *Transaction) returned(e BookReturned) {
	returnDate := e.ReturnDate
	t.ReturnDate = &returnDate
	t.Status = TransactionStatusReturned
	t.OverdueDays = e.OverdueDays
}

// Fee is the read model of an assessed fine, as handed to the billing sink.
type Fee struct {
	ID            FeeIDString
	TransactionID TransactionIDString
	BookID        BookIDString
	MemberID      MemberIDString
	FeeType       string
	Amount        int
	Status        string
	DueDate       time.Time
}

// FeeFrom maps a FineAssessed event to its Fee.
func FeeFrom(e FineAssessed) Fee {
	return Fee{
		ID:            e.FeeID,
		TransactionID: e.TransactionID,
		BookID:        e.BookID,
		MemberID:      e.MemberID,
		FeeType:       e.FeeType,
		Amount:        e.Amount,
		Status:        e.Status,
		DueDate:       e.DueDate,
	}
}
