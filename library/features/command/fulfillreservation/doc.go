// Package fulfillreservation implements the Fulfill Reservation use case.
//
// Fulfillment turns a pending reservation into a loan in one atomic append: one available copy less,
// the reservation Fulfilled, and an Issued transaction with the requester's loan period.
// The caller chooses which pending reservation to fulfill.
package fulfillreservation
