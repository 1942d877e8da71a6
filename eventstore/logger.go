package eventstore

// Logger receives SQL at Debug, operations at Info, cleanup problems at Warn and failures at Error.
// *slog.Logger satisfies it.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}
