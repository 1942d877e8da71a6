// Package shell is the imperative shell around the functional core of the school library.
//
// It maps domain events to storable events and back, stamps event metadata, retries commands
// that lost an optimistic concurrency race, and defines the logging, metrics and tracing
// interfaces the handlers report to.
package shell
