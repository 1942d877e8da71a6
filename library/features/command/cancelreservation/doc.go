// Package cancelreservation implements the Cancel Reservation use case. Only the requester may cancel.
package cancelreservation
