// Package issuebook implements the Issue Book use case of the lending ledger.
//
// Issuing decrements the available copies and opens an Issued transaction in one atomic append.
// Two members racing for the last copy both decide on the same book stream, so exactly one append wins
// and the loser re-decides into Unavailable.
package issuebook
