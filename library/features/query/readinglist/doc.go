// Package readinglist implements viewing a reading list.
//
// The owner and the members of the list's section may view it, everyone else is Forbidden.
package readinglist
