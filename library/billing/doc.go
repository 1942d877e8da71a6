// Package billing holds the fee sinks that hand assessed fines to the school's billing ledger.
//
// Every sink is idempotent on the fee id, a fee may be delivered more than once.
package billing
