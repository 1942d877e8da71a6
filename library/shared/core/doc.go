// Package core is the functional core of the school library: domain events, the read models projected
// from them, status transition tables, the loan policy and the error kinds of the lending engine.
//
// Nothing in here performs I/O. Decide functions in the feature slices combine these pieces into
// business decisions, the shell packages take care of persistence.
package core
