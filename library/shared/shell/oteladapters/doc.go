// Package oteladapters implements the logging, metrics and tracing interfaces of package shell with OpenTelemetry.
//
// SlogBridgeLogger sends slog records through the otelslog bridge, so trace and span ids are attached automatically.
// OTelLogger emits directly to an OpenTelemetry log.Logger.
package oteladapters
