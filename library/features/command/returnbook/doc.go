// Package returnbook implements the Return Book use case of the lending ledger.
//
// The return, the released copy and the overdue fine are appended as one unit, so a failure cannot leave the
// book unavailable or drop the fine. Handing the fine to the billing sink happens after the append.
package returnbook
