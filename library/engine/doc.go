// Package engine bundles the command and query handlers of the lending engine behind one API.
//
// Every handler is wrapped for logging, metrics and tracing. Operations that create an entity
// accept a caller supplied id, so a retried request stays idempotent, and generate one otherwise.
// Commands answer with the entity read back from the event store.
//
// Fines are handed to the FeeSink after the return is committed. A failed delivery is logged and
// the fine stays in the event store, ResyncFees delivers all fines again.
package engine
