package addbook

import (
	"time"

	"github.com/schoollibrary/lendingengine/library/shared/core"
)

const (
	commandType = "AddBook"
)

// Command represents the intent to add a title with its stock of copies to the catalog.
type Command struct {
	BookID      core.BookIDString
	Title       string
	Author      string
	ISBN        core.ISBNString
	Genre       string
	TotalCopies int
	OccurredAt  core.OccurredAt
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(
	bookID core.BookIDString,
	title string,
	author string,
	isbn core.ISBNString,
	genre string,
	totalCopies int,
	occurredAt time.Time,
) Command {

	return Command{
		BookID:      bookID,
		Title:       title,
		Author:      author,
		ISBN:        isbn,
		Genre:       genre,
		TotalCopies: totalCopies,
		OccurredAt:  core.ToOccurredAt(occurredAt),
	}
}
