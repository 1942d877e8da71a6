package config

import (
	"io"
	"log/slog"
	"strings"
)

const LogFormatJSON = "json"

// NewLogger builds the slog logger described by LogLevel and LogFormat. Unknown levels fall back to info.
func (c Config) NewLogger(w io.Writer) *slog.Logger {
	options := &slog.HandlerOptions{Level: parseLevel(c.LogLevel)}

	if strings.EqualFold(c.LogFormat, LogFormatJSON) {
		return slog.New(slog.NewJSONHandler(w, options))
	}

	return slog.New(slog.NewTextHandler(w, options))
}

func parseLevel(level string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo
	}

	return l
}
