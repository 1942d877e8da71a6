// Package requestreservation implements the Request Reservation use case of the reservation queue.
//
// A member may queue up for any catalogued book, also while copies are available,
// but can hold only one pending reservation per book.
package requestreservation
