// Package reservationdetails implements the lookup of one reservation.
package reservationdetails
