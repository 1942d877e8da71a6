// Package bookdetails implements the lookup of one catalogued book with its current availability.
package bookdetails
