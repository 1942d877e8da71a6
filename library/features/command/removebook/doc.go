// Package removebook implements the Remove Book use case of the catalog.
//
// A book can only leave the catalog when no copy is out on loan and nobody waits for it.
package removebook
