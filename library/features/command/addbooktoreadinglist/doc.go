// Package addbooktoreadinglist implements appending a book to a reading list.
//
// Only the owner of the list may add books. The list keeps insertion order and holds every book once.
package addbooktoreadinglist
