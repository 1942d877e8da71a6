package engine

import (
	"github.com/schoollibrary/lendingengine/library/shared/shell"
	"github.com/schoollibrary/lendingengine/library/shared/shell/observable"
)

func wrapCommand[C shell.Command](
	obs Observability,
	errs *[]error,
	handler shell.CoreCommandHandler[C],
) shell.CoreCommandHandler[C] {

	wrapper, err := observable.NewCommandWrapper(
		handler,
		observable.WithCommandLogging[C](obs.Logger),
		observable.WithCommandContextualLogging[C](obs.ContextualLogger),
		observable.WithCommandMetrics[C](obs.Metrics),
		observable.WithCommandTracing[C](obs.Tracing),
	)
	if err != nil {
		*errs = append(*errs, err)
		return handler
	}

	return wrapper
}

func wrapQuery[Q shell.Query, R any](
	obs Observability,
	errs *[]error,
	handler shell.CoreQueryHandler[Q, R],
) shell.CoreQueryHandler[Q, R] {

	wrapper, err := observable.NewQueryWrapper(
		handler,
		observable.WithQueryLogging[Q, R](obs.Logger),
		observable.WithQueryContextualLogging[Q, R](obs.ContextualLogger),
		observable.WithQueryMetrics[Q, R](obs.Metrics),
		observable.WithQueryTracing[Q, R](obs.Tracing),
	)
	if err != nil {
		*errs = append(*errs, err)
		return handler
	}

	return wrapper
}
