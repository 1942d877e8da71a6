package engine

import (
	"context"

	"github.com/schoollibrary/lendingengine/library/features/command/addbook"
	"github.com/schoollibrary/lendingengine/library/features/command/adjustavailability"
	"github.com/schoollibrary/lendingengine/library/features/command/removebook"
	"github.com/schoollibrary/lendingengine/library/features/query/bookdetails"
	"github.com/schoollibrary/lendingengine/library/features/query/catalogbooks"
	"github.com/schoollibrary/lendingengine/library/shared/core"
)

// NewBook describes a title to catalog. BookID is generated when empty.
type NewBook struct {
	BookID      core.BookIDString
	Title       string
	Author      string
	ISBN        core.ISBNString
	Genre       string
	TotalCopies int
}

// AddBook catalogs a title with all of its copies available.
func (e *Engine) AddBook(ctx context.Context, book NewBook) (core.Book, error) {
	bookID := e.idOr(book.BookID)

	command := addbook.BuildCommand(bookID, book.Title, book.Author, book.ISBN, book.Genre, book.TotalCopies, e.now())
	if _, err := e.addBook.Handle(ctx, command); err != nil {
		return core.Book{}, err
	}

	return e.Book(ctx, bookID)
}

// AdjustAvailability moves the available copies of a book by +1 or -1.
func (e *Engine) AdjustAvailability(ctx context.Context, bookID core.BookIDString, delta int) (core.Book, error) {
	if _, err := e.adjustAvailability.Handle(ctx, adjustavailability.BuildCommand(bookID, delta, e.now())); err != nil {
		return core.Book{}, err
	}

	return e.Book(ctx, bookID)
}

// RemoveBook takes a book out of the catalog, unless copies are on loan or reserved.
func (e *Engine) RemoveBook(ctx context.Context, bookID core.BookIDString) error {
	_, err := e.removeBook.Handle(ctx, removebook.BuildCommand(bookID, e.now()))

	return err
}

func (e *Engine) Book(ctx context.Context, bookID core.BookIDString) (core.Book, error) {
	return e.bookDetails.Handle(ctx, bookdetails.BuildQuery(bookID))
}

func (e *Engine) Catalog(ctx context.Context) (catalogbooks.CatalogBooks, error) {
	return e.catalogBooks.Handle(ctx, catalogbooks.BuildQuery())
}
