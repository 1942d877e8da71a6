package engine_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schoollibrary/lendingengine/library/billing"
	"github.com/schoollibrary/lendingengine/library/directory/memdirectory"
	"github.com/schoollibrary/lendingengine/library/engine"
	"github.com/schoollibrary/lendingengine/library/shared/core"
	"github.com/schoollibrary/lendingengine/library/shared/shell"
	"github.com/schoollibrary/lendingengine/testutil/teststore"
)

var (
	student      = core.Member{ID: "m-1", Role: core.RoleStudent, Name: "Pippi"}
	classTeacher = core.Member{ID: "t-1", Role: core.RoleTeacher, Name: "Mr. Nilsson"}
	otherTeacher = core.Member{ID: "t-2", Role: core.RoleTeacher, Name: "Ms. Prysselius"}
	section      = core.Section{ID: "s-1", ClassTeacherID: classTeacher.ID, MemberIDs: []core.MemberIDString{student.ID}}
)

type clock struct {
	now time.Time
}

func (c *clock) Now() time.Time {
	return c.now
}

func (c *clock) advanceDays(days int) {
	c.now = c.now.AddDate(0, 0, days)
}

func sequentialIDs() func() string {
	n := 0

	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

type flakySink struct {
	mu       sync.Mutex
	failing  bool
	recorder *billing.Recorder
}

func (s *flakySink) DeliverFee(ctx context.Context, fee core.Fee) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failing {
		return errors.New("billing ledger unreachable")
	}

	return s.recorder.DeliverFee(ctx, fee)
}

func newEngine(t *testing.T, fees shell.FeeSink, c *clock, opts ...engine.Option) *engine.Engine {
	t.Helper()

	deps := engine.Dependencies{
		EventStore: teststore.NewSQLite(t),
		Members:    memdirectory.New([]core.Member{student, classTeacher, otherTeacher}, nil),
		Sections:   memdirectory.New(nil, []core.Section{section}),
		Fees:       fees,
	}

	opts = append(opts, engine.WithClock(c.Now), engine.WithIDGenerator(sequentialIDs()))

	e, err := engine.New(deps, opts...)
	require.NoError(t, err)

	return e
}

func Test_New_RequiresCollaborators(t *testing.T) {
	// act
	_, noStoreErr := engine.New(engine.Dependencies{})
	_, noDirectoryErr := engine.New(engine.Dependencies{EventStore: teststore.NewSQLite(t)})

	// assert
	assert.ErrorIs(t, noStoreErr, engine.ErrMissingEventStore)
	assert.ErrorIs(t, noDirectoryErr, engine.ErrMissingDirectory)
}

func Test_Engine_LendingAndReservationLifecycle(t *testing.T) {
	// setup
	recorder := billing.NewRecorder()
	c := &clock{now: time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC)}
	e := newEngine(t, recorder, c)
	ctx := context.Background()

	// arrange
	book, err := e.AddBook(ctx, engine.NewBook{BookID: "b-1", Title: "Momo", Author: "Michael Ende", TotalCopies: 1})
	require.NoError(t, err)
	require.Equal(t, 1, book.AvailableCopies)

	loan, err := e.IssueBook(ctx, engine.Loan{TransactionID: "tx-1", BookID: "b-1", MemberID: student.ID})
	require.NoError(t, err)
	assert.True(t, c.now.AddDate(0, 0, 14).Equal(loan.DueDate))

	_, err = e.IssueBook(ctx, engine.Loan{BookID: "b-1", MemberID: classTeacher.ID})
	require.ErrorIs(t, err, core.ErrUnavailable)

	reservation, err := e.RequestReservation(ctx, engine.NewReservation{
		ReservationID: "r-1", BookID: "b-1", MemberID: classTeacher.ID,
	})
	require.NoError(t, err)
	require.Equal(t, core.ReservationStatusPending, reservation.Status)

	_, err = e.FulfillReservation(ctx, "r-1", "")
	require.ErrorIs(t, err, core.ErrUnavailable)

	// act
	c.advanceDays(17)
	returned, returnErr := e.ReturnBook(ctx, "tx-1", time.Time{})
	fulfilled, fulfillErr := e.FulfillReservation(ctx, "r-1", "tx-2")
	again, againErr := e.FulfillReservation(ctx, "r-1", "tx-2")
	_, otherErr := e.FulfillReservation(ctx, "r-1", "tx-3")

	// assert
	require.NoError(t, returnErr)
	assert.Equal(t, core.TransactionStatusReturned, returned.Transaction.Status)
	assert.Equal(t, 3, returned.Transaction.OverdueDays)
	require.NotNil(t, returned.Fee)
	assert.Equal(t, 15, returned.Fee.Amount)
	assert.True(t, c.now.AddDate(0, 0, 14).Equal(returned.Fee.DueDate))
	require.Len(t, recorder.Fees(), 1)
	assert.Equal(t, returned.Fee.ID, recorder.Fees()[0].ID)

	require.NoError(t, fulfillErr)
	assert.Equal(t, classTeacher.ID, fulfilled.MemberID)
	assert.Equal(t, "r-1", fulfilled.ReservationID)
	assert.True(t, c.now.AddDate(0, 0, 28).Equal(fulfilled.DueDate))
	require.NoError(t, againErr)
	assert.Equal(t, "tx-2", again.ID)
	assert.ErrorIs(t, otherErr, core.ErrInvalidState)

	current, err := e.Book(ctx, "b-1")
	require.NoError(t, err)
	assert.Equal(t, 0, current.AvailableCopies)

	queue, err := e.PendingReservations(ctx, "b-1")
	require.NoError(t, err)
	assert.Equal(t, 0, queue.Count)

	loans, err := e.LoansByMember(ctx, classTeacher.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, loans.Count)

	assert.ErrorIs(t, e.RemoveBook(ctx, "b-1"), core.ErrConflict)
}

func Test_Engine_ReturnBook_SurvivesFailedFeeDelivery(t *testing.T) {
	// setup
	sink := &flakySink{failing: true, recorder: billing.NewRecorder()}
	logs := &bytes.Buffer{}
	c := &clock{now: time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC)}
	e := newEngine(t, sink, c, engine.WithLogger(slog.New(slog.NewTextHandler(logs, nil))))
	ctx := context.Background()

	// arrange
	_, err := e.AddBook(ctx, engine.NewBook{BookID: "b-1", Title: "Momo", Author: "Michael Ende", TotalCopies: 1})
	require.NoError(t, err)
	_, err = e.IssueBook(ctx, engine.Loan{TransactionID: "tx-1", BookID: "b-1", MemberID: student.ID})
	require.NoError(t, err)

	// act
	returned, returnErr := e.ReturnBook(ctx, "tx-1", c.now.AddDate(0, 0, 15))

	// assert
	require.NoError(t, returnErr)
	require.NotNil(t, returned.Fee)
	assert.Equal(t, 5, returned.Fee.Amount)
	assert.Empty(t, sink.recorder.Fees())
	assert.Contains(t, logs.String(), "fee delivery failed")

	book, err := e.Book(ctx, "b-1")
	require.NoError(t, err)
	assert.Equal(t, 1, book.AvailableCopies)

	// act
	sink.mu.Lock()
	sink.failing = false
	sink.mu.Unlock()
	delivered, resyncErr := e.ResyncFees(ctx)

	// assert
	require.NoError(t, resyncErr)
	assert.Equal(t, 1, delivered)
	require.Len(t, sink.recorder.Fees(), 1)
	assert.Equal(t, returned.Fee.ID, sink.recorder.Fees()[0].ID)
}

func Test_Engine_ReadingLists(t *testing.T) {
	// setup
	c := &clock{now: time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC)}
	e := newEngine(t, nil, c)
	ctx := context.Background()

	// arrange
	_, err := e.AddBook(ctx, engine.NewBook{BookID: "b-1", Title: "Momo", Author: "Michael Ende", TotalCopies: 1})
	require.NoError(t, err)

	// act
	_, forbiddenErr := e.CreateReadingList(ctx, engine.NewReadingList{
		ListID: "l-1", Name: "Summer", TeacherID: otherTeacher.ID, SectionID: section.ID,
	})
	created, createErr := e.CreateReadingList(ctx, engine.NewReadingList{
		ListID: "l-1", Name: "Summer", TeacherID: classTeacher.ID, SectionID: section.ID,
	})
	withBook, addErr := e.AddBookToReadingList(ctx, "l-1", "b-1", classTeacher.ID)
	_, duplicateErr := e.AddBookToReadingList(ctx, "l-1", "b-1", classTeacher.ID)
	viewed, viewErr := e.ViewReadingList(ctx, "l-1", student.ID)
	_, outsiderErr := e.ViewReadingList(ctx, "l-1", otherTeacher.ID)
	deleteErr := e.DeleteReadingList(ctx, "l-1", classTeacher.ID)
	_, deletedErr := e.ViewReadingList(ctx, "l-1", classTeacher.ID)

	// assert
	assert.ErrorIs(t, forbiddenErr, core.ErrForbidden)
	require.NoError(t, createErr)
	assert.Empty(t, created.BookIDs)
	require.NoError(t, addErr)
	assert.Equal(t, []core.BookIDString{"b-1"}, withBook.BookIDs)
	assert.ErrorIs(t, duplicateErr, core.ErrDuplicate)
	require.NoError(t, viewErr)
	assert.Equal(t, "Summer", viewed.Name)
	assert.ErrorIs(t, outsiderErr, core.ErrForbidden)
	require.NoError(t, deleteErr)
	assert.ErrorIs(t, deletedErr, core.ErrNotFound)
}

func Test_Engine_Acquisitions(t *testing.T) {
	// setup
	c := &clock{now: time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC)}
	e := newEngine(t, nil, c)
	ctx := context.Background()

	// act
	submitted, submitErr := e.SubmitAcquisition(ctx, engine.NewAcquisition{
		Title: "Ronja", Author: "Astrid Lindgren", Reason: "class reading", RequesterID: classTeacher.ID,
	})
	approved, approveErr := e.DecideAcquisition(ctx, submitted.ID, true)
	_, decidedAgainErr := e.DecideAcquisition(ctx, submitted.ID, false)
	pending, pendingErr := e.Acquisitions(ctx, core.AcquisitionStatusPending)
	catalog, catalogErr := e.Catalog(ctx)

	// assert
	require.NoError(t, submitErr)
	assert.Equal(t, "id-1", submitted.ID)
	assert.Equal(t, core.AcquisitionStatusPending, submitted.Status)
	require.NoError(t, approveErr)
	assert.Equal(t, core.AcquisitionStatusApproved, approved.Status)
	require.NotNil(t, approved.AcquiredDate)
	assert.ErrorIs(t, decidedAgainErr, core.ErrInvalidState)
	require.NoError(t, pendingErr)
	assert.Equal(t, 0, pending.Count)
	require.NoError(t, catalogErr)
	assert.Equal(t, 0, catalog.Count)
}
