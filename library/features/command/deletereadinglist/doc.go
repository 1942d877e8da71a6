// Package deletereadinglist implements the owner-only deletion of a reading list.
package deletereadinglist
