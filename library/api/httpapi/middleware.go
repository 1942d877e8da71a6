package httpapi

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/schoollibrary/lendingengine/library/shared/shell"
)

const (
	HeaderRequestID    = "X-Request-ID"
	requestIDMaxLength = 64

	logMsgRequestCompleted = "http request completed"
	logMsgRequestRejected  = "http request rejected"
	logMsgRequestFailed    = "http request failed"
)

// RequestID takes the X-Request-ID header, or a new UUID, as the correlation id of the request.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(HeaderRequestID)
		if requestID == "" || len(requestID) > requestIDMaxLength {
			requestID = uuid.NewString()
		}

		c.Request = c.Request.WithContext(shell.WithCorrelationID(c.Request.Context(), requestID))
		c.Header(HeaderRequestID, requestID)

		c.Next()
	}
}

// RequestLogger logs one record per request, the level follows the status code.
func RequestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := c.Writer.Status()
		attrs := []any{
			slog.Int("status", status),
			slog.String("method", c.Request.Method),
			slog.String("path", c.FullPath()),
			slog.Float64(shell.LogAttrDurationMS, shell.ToMilliseconds(time.Since(start))),
			slog.String("correlation_id", shell.CorrelationIDFrom(c.Request.Context())),
		}

		if len(c.Errors) > 0 {
			attrs = append(attrs, slog.String(shell.LogAttrError, c.Errors.String()))
		}

		switch {
		case status >= 500:
			logger.ErrorContext(c.Request.Context(), logMsgRequestFailed, attrs...)
		case status >= 400:
			logger.WarnContext(c.Request.Context(), logMsgRequestRejected, attrs...)
		default:
			logger.InfoContext(c.Request.Context(), logMsgRequestCompleted, attrs...)
		}
	}
}
