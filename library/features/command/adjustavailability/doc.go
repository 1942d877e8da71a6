// Package adjustavailability implements the manual correction of a book's available copies by one.
package adjustavailability
