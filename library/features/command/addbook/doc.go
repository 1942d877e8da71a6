// Package addbook implements the Add Book use case of the catalog.
//
// A book starts with all of its copies available. An ISBN can only be used by one catalogued book at a time.
package addbook
