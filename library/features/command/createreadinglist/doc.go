// Package createreadinglist implements the Create Reading List use case.
// Only the class teacher of a section may start a reading list for it.
package createreadinglist
