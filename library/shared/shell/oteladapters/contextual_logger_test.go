package oteladapters_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/log/noop"

	"github.com/schoollibrary/lendingengine/library/shared/shell"
	"github.com/schoollibrary/lendingengine/library/shared/shell/oteladapters"
)

func Test_SlogBridgeLogger_WritesAllLevelsWithCorrelationID(t *testing.T) {
	// arrange
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	logger := oteladapters.NewSlogBridgeLoggerWithHandler(handler)
	ctx := shell.WithCorrelationID(context.Background(), "req-9")

	// act
	logger.DebugContext(ctx, "debug message")
	logger.InfoContext(ctx, "info message", "book_id", "b-1")
	logger.WarnContext(ctx, "warn message")
	logger.ErrorContext(context.Background(), "error message")

	// assert
	output := buf.String()
	assert.Contains(t, output, "level=DEBUG msg=\"debug message\" correlation_id=req-9")
	assert.Contains(t, output, "msg=\"info message\" book_id=b-1 correlation_id=req-9")
	assert.Contains(t, output, "level=WARN")
	assert.Contains(t, output, "level=ERROR msg=\"error message\"\n")
}

func Test_SlogBridgeLogger_GlobalProvider(t *testing.T) {
	logger := oteladapters.NewSlogBridgeLogger("lendingengine")

	assert.NotPanics(t, func() {
		logger.InfoContext(context.Background(), "message without a configured provider")
	})
}

func Test_OTelLogger_HandlesOddArguments(t *testing.T) {
	logger := oteladapters.NewOTelLogger(noop.NewLoggerProvider().Logger("test"))
	ctx := shell.WithCorrelationID(context.Background(), "req-1")

	assert.NotPanics(t, func() {
		logger.DebugContext(ctx, "debug", "key")
		logger.InfoContext(ctx, "info", "count", 3, 42, "non-string key")
		logger.WarnContext(ctx, "warn", "ok", true)
		logger.ErrorContext(ctx, "error")
	})
}
