// Package catalogbooks implements the listing of all catalogued books.
package catalogbooks
