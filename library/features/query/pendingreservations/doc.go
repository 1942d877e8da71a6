// Package pendingreservations implements the reservation queue of one book.
//
// Reservations are listed in request order. Which one gets fulfilled is up to the caller,
// so the queue only flags reservations that waited longer than the follow-up window.
package pendingreservations
