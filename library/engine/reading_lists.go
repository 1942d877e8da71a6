package engine

import (
	"context"

	"github.com/schoollibrary/lendingengine/library/features/command/addbooktoreadinglist"
	"github.com/schoollibrary/lendingengine/library/features/command/createreadinglist"
	"github.com/schoollibrary/lendingengine/library/features/command/deletereadinglist"
	"github.com/schoollibrary/lendingengine/library/features/query/readinglist"
	"github.com/schoollibrary/lendingengine/library/shared/core"
)

// NewReadingList describes a list a class teacher curates for a section. ListID is generated when empty.
type NewReadingList struct {
	ListID    core.ListIDString
	Name      string
	TeacherID core.MemberIDString
	SectionID core.SectionIDString
}

func (e *Engine) CreateReadingList(ctx context.Context, list NewReadingList) (core.ReadingList, error) {
	listID := e.idOr(list.ListID)

	command := createreadinglist.BuildCommand(listID, list.Name, list.TeacherID, list.SectionID, e.now())
	if _, err := e.createReadingList.Handle(ctx, command); err != nil {
		return core.ReadingList{}, err
	}

	return e.ViewReadingList(ctx, listID, list.TeacherID)
}

// AddBookToReadingList appends a catalogued book to a list owned by byTeacherID.
func (e *Engine) AddBookToReadingList(
	ctx context.Context,
	listID core.ListIDString,
	bookID core.BookIDString,
	byTeacherID core.MemberIDString,
) (core.ReadingList, error) {

	command := addbooktoreadinglist.BuildCommand(listID, bookID, byTeacherID, e.now())
	if _, err := e.addBookToReadingList.Handle(ctx, command); err != nil {
		return core.ReadingList{}, err
	}

	return e.ViewReadingList(ctx, listID, byTeacherID)
}

func (e *Engine) DeleteReadingList(ctx context.Context, listID core.ListIDString, byTeacherID core.MemberIDString) error {
	_, err := e.deleteReadingList.Handle(ctx, deletereadinglist.BuildCommand(listID, byTeacherID, e.now()))

	return err
}

// ViewReadingList returns the list if byMemberID owns it or belongs to its section.
func (e *Engine) ViewReadingList(
	ctx context.Context,
	listID core.ListIDString,
	byMemberID core.MemberIDString,
) (core.ReadingList, error) {

	return e.viewReadingList.Handle(ctx, readinglist.BuildQuery(listID, byMemberID))
}
