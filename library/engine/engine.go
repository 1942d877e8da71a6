package engine

import (
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/schoollibrary/lendingengine/library/billing"
	"github.com/schoollibrary/lendingengine/library/features/command/addbook"
	"github.com/schoollibrary/lendingengine/library/features/command/addbooktoreadinglist"
	"github.com/schoollibrary/lendingengine/library/features/command/adjustavailability"
	"github.com/schoollibrary/lendingengine/library/features/command/cancelreservation"
	"github.com/schoollibrary/lendingengine/library/features/command/createreadinglist"
	"github.com/schoollibrary/lendingengine/library/features/command/decideacquisition"
	"github.com/schoollibrary/lendingengine/library/features/command/deletereadinglist"
	"github.com/schoollibrary/lendingengine/library/features/command/fulfillreservation"
	"github.com/schoollibrary/lendingengine/library/features/command/issuebook"
	"github.com/schoollibrary/lendingengine/library/features/command/removebook"
	"github.com/schoollibrary/lendingengine/library/features/command/requestreservation"
	"github.com/schoollibrary/lendingengine/library/features/command/returnbook"
	"github.com/schoollibrary/lendingengine/library/features/command/submitacquisition"
	"github.com/schoollibrary/lendingengine/library/features/query/acquisitiondetails"
	"github.com/schoollibrary/lendingengine/library/features/query/acquisitions"
	"github.com/schoollibrary/lendingengine/library/features/query/assessedfines"
	"github.com/schoollibrary/lendingengine/library/features/query/bookdetails"
	"github.com/schoollibrary/lendingengine/library/features/query/catalogbooks"
	"github.com/schoollibrary/lendingengine/library/features/query/loansbymember"
	"github.com/schoollibrary/lendingengine/library/features/query/pendingreservations"
	"github.com/schoollibrary/lendingengine/library/features/query/readinglist"
	"github.com/schoollibrary/lendingengine/library/features/query/reservationdetails"
	"github.com/schoollibrary/lendingengine/library/features/query/transactiondetails"
	"github.com/schoollibrary/lendingengine/library/shared/core"
	"github.com/schoollibrary/lendingengine/library/shared/shell"
)

var (
	ErrMissingEventStore = errors.New("engine needs an event store")
	ErrMissingDirectory  = errors.New("engine needs a member and a section directory")
)

// Dependencies are the collaborators of the Engine.
// A nil Fees sink records fees in memory, a zero Policy means core.DefaultLoanPolicy.
type Dependencies struct {
	EventStore   shell.EventStore
	Members      shell.MemberDirectory
	Sections     shell.SectionDirectory
	Fees         shell.FeeSink
	Policy       core.LoanPolicy
	RetryOptions []shell.RetryOption
}

// Observability holds the optional collectors every handler is wrapped with.
type Observability struct {
	Logger           shell.Logger
	ContextualLogger shell.ContextualLogger
	Metrics          shell.MetricsCollector
	Tracing          shell.TracingCollector
}

// Option configures the Engine.
type Option func(*Engine)

// WithObservability wraps every handler with the given collectors.
func WithObservability(observability Observability) Option {
	return func(e *Engine) {
		e.observability = observability
	}
}

// WithLogger sets the plain logger, a nil logger is ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.observability.Logger = logger
		}
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// WithIDGenerator replaces the random UUID generator used for ids the caller did not supply.
func WithIDGenerator(newID func() string) Option {
	return func(e *Engine) {
		e.newID = newID
	}
}

// Engine is the lending and reservation engine of the school library.
type Engine struct {
	fees          shell.FeeSink
	now           func() time.Time
	newID         func() string
	observability Observability

	addBook              shell.CoreCommandHandler[addbook.Command]
	adjustAvailability   shell.CoreCommandHandler[adjustavailability.Command]
	removeBook           shell.CoreCommandHandler[removebook.Command]
	requestReservation   shell.CoreCommandHandler[requestreservation.Command]
	cancelReservation    shell.CoreCommandHandler[cancelreservation.Command]
	fulfillReservation   shell.CoreCommandHandler[fulfillreservation.Command]
	issueBook            shell.CoreCommandHandler[issuebook.Command]
	returnBook           shell.CoreCommandHandler[returnbook.Command]
	createReadingList    shell.CoreCommandHandler[createreadinglist.Command]
	addBookToReadingList shell.CoreCommandHandler[addbooktoreadinglist.Command]
	deleteReadingList    shell.CoreCommandHandler[deletereadinglist.Command]
	submitAcquisition    shell.CoreCommandHandler[submitacquisition.Command]
	decideAcquisition    shell.CoreCommandHandler[decideacquisition.Command]

	bookDetails         shell.CoreQueryHandler[bookdetails.Query, core.Book]
	catalogBooks        shell.CoreQueryHandler[catalogbooks.Query, catalogbooks.CatalogBooks]
	reservationDetails  shell.CoreQueryHandler[reservationdetails.Query, core.Reservation]
	pendingReservations shell.CoreQueryHandler[pendingreservations.Query, pendingreservations.PendingReservations]
	transactionDetails  shell.CoreQueryHandler[transactiondetails.Query, transactiondetails.TransactionDetails]
	loansByMember       shell.CoreQueryHandler[loansbymember.Query, loansbymember.MemberLoans]
	assessedFines       shell.CoreQueryHandler[assessedfines.Query, assessedfines.AssessedFines]
	viewReadingList     shell.CoreQueryHandler[readinglist.Query, core.ReadingList]
	acquisitionDetails  shell.CoreQueryHandler[acquisitiondetails.Query, core.Acquisition]
	acquisitions        shell.CoreQueryHandler[acquisitions.Query, acquisitions.Acquisitions]
}

// New creates all handlers and wraps them with the configured observability.
func New(deps Dependencies, opts ...Option) (*Engine, error) {
	if deps.EventStore == nil {
		return nil, ErrMissingEventStore
	}

	if deps.Members == nil || deps.Sections == nil {
		return nil, ErrMissingDirectory
	}

	if deps.Fees == nil {
		deps.Fees = billing.NewRecorder()
	}

	if deps.Policy == (core.LoanPolicy{}) {
		deps.Policy = core.DefaultLoanPolicy()
	}

	e := &Engine{
		fees:  deps.Fees,
		now:   time.Now,
		newID: uuid.NewString,
	}

	for _, opt := range opts {
		opt(e)
	}

	store := deps.EventStore
	retry := deps.RetryOptions
	obs := e.observability
	errs := make([]error, 0)

	e.addBook = wrapCommand[addbook.Command](obs, &errs,
		addbook.NewCommandHandler(store, addbook.WithRetryOptions(retry...)))
	e.adjustAvailability = wrapCommand[adjustavailability.Command](obs, &errs,
		adjustavailability.NewCommandHandler(store, adjustavailability.WithRetryOptions(retry...)))
	e.removeBook = wrapCommand[removebook.Command](obs, &errs,
		removebook.NewCommandHandler(store, removebook.WithRetryOptions(retry...)))
	e.requestReservation = wrapCommand[requestreservation.Command](obs, &errs,
		requestreservation.NewCommandHandler(store, deps.Members, requestreservation.WithRetryOptions(retry...)))
	e.cancelReservation = wrapCommand[cancelreservation.Command](obs, &errs,
		cancelreservation.NewCommandHandler(store, cancelreservation.WithRetryOptions(retry...)))
	e.fulfillReservation = wrapCommand[fulfillreservation.Command](obs, &errs,
		fulfillreservation.NewCommandHandler(store, deps.Members, deps.Policy, fulfillreservation.WithRetryOptions(retry...)))
	e.issueBook = wrapCommand[issuebook.Command](obs, &errs,
		issuebook.NewCommandHandler(store, deps.Members, deps.Policy, issuebook.WithRetryOptions(retry...)))
	e.returnBook = wrapCommand[returnbook.Command](obs, &errs,
		returnbook.NewCommandHandler(store, deps.Policy, returnbook.WithRetryOptions(retry...)))
	e.createReadingList = wrapCommand[createreadinglist.Command](obs, &errs,
		createreadinglist.NewCommandHandler(store, deps.Sections, createreadinglist.WithRetryOptions(retry...)))
	e.addBookToReadingList = wrapCommand[addbooktoreadinglist.Command](obs, &errs,
		addbooktoreadinglist.NewCommandHandler(store, addbooktoreadinglist.WithRetryOptions(retry...)))
	e.deleteReadingList = wrapCommand[deletereadinglist.Command](obs, &errs,
		deletereadinglist.NewCommandHandler(store, deletereadinglist.WithRetryOptions(retry...)))
	e.submitAcquisition = wrapCommand[submitacquisition.Command](obs, &errs,
		submitacquisition.NewCommandHandler(store, deps.Members, submitacquisition.WithRetryOptions(retry...)))
	e.decideAcquisition = wrapCommand[decideacquisition.Command](obs, &errs,
		decideacquisition.NewCommandHandler(store, decideacquisition.WithRetryOptions(retry...)))

	e.bookDetails = wrapQuery[bookdetails.Query, core.Book](obs, &errs,
		bookdetails.NewQueryHandler(store))
	e.catalogBooks = wrapQuery[catalogbooks.Query, catalogbooks.CatalogBooks](obs, &errs,
		catalogbooks.NewQueryHandler(store))
	e.reservationDetails = wrapQuery[reservationdetails.Query, core.Reservation](obs, &errs,
		reservationdetails.NewQueryHandler(store))
	e.pendingReservations = wrapQuery[pendingreservations.Query, pendingreservations.PendingReservations](obs, &errs,
		pendingreservations.NewQueryHandler(store, deps.Policy))
	e.transactionDetails = wrapQuery[transactiondetails.Query, transactiondetails.TransactionDetails](obs, &errs,
		transactiondetails.NewQueryHandler(store))
	e.loansByMember = wrapQuery[loansbymember.Query, loansbymember.MemberLoans](obs, &errs,
		loansbymember.NewQueryHandler(store))
	e.assessedFines = wrapQuery[assessedfines.Query, assessedfines.AssessedFines](obs, &errs,
		assessedfines.NewQueryHandler(store))
	e.viewReadingList = wrapQuery[readinglist.Query, core.ReadingList](obs, &errs,
		readinglist.NewQueryHandler(store, deps.Sections))
	e.acquisitionDetails = wrapQuery[acquisitiondetails.Query, core.Acquisition](obs, &errs,
		acquisitiondetails.NewQueryHandler(store))
	e.acquisitions = wrapQuery[acquisitions.Query, acquisitions.Acquisitions](obs, &errs,
		acquisitions.NewQueryHandler(store))

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	return e, nil
}

func (e *Engine) idOr(id string) string {
	if id != "" {
		return id
	}

	return e.newID()
}

func (e *Engine) asOfOr(asOf time.Time) time.Time {
	if asOf.IsZero() {
		return e.now()
	}

	return asOf
}
