// Package observable wraps core command and query handlers with logging, metrics and tracing.
//
// The wrappers are applied at wiring time:
//
//	coreHandler := issuebook.NewCommandHandler(eventStore, directory, policy, clock)
//	handler, err := observable.NewCommandWrapper(
//		coreHandler,
//		observable.WithCommandMetrics[issuebook.Command](metricsCollector),
//		observable.WithCommandTracing[issuebook.Command](tracingCollector),
//		observable.WithCommandContextualLogging[issuebook.Command](contextualLogger),
//	)
//
// Handlers used without a wrapper stay fully functional, which keeps their tests free of observability.
package observable
