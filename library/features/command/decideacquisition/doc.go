// Package decideacquisition implements approving or rejecting a pending purchase request.
//
// Approval only records the acquired date. Adding the title to the catalog is a separate administrative action.
package decideacquisition
