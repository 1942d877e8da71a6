package billing

import (
	"context"
	"log/slog"

	"github.com/schoollibrary/lendingengine/library/shared/core"
	"github.com/schoollibrary/lendingengine/library/shared/shell"
)

const (
	logMsgFeeDelivered = "fee delivered to billing"
)

// LogSink writes every fee as a structured log record and forwards it to the next sink, if any.
type LogSink struct {
	logger *slog.Logger
	next   shell.FeeSink
}

// NewLogSink creates a LogSink. next may be nil.
func NewLogSink(logger *slog.Logger, next shell.FeeSink) *LogSink {
	return &LogSink{
		logger: logger,
		next:   next,
	}
}

func (s *LogSink) DeliverFee(ctx context.Context, fee core.Fee) error {
	if s.next != nil {
		if err := s.next.DeliverFee(ctx, fee); err != nil {
			return err
		}
	}

	s.logger.InfoContext(ctx, logMsgFeeDelivered,
		slog.String("fee_id", fee.ID),
		slog.String("transaction_id", fee.TransactionID),
		slog.String("member_id", fee.MemberID),
		slog.String("fee_type", fee.FeeType),
		slog.Int("amount", fee.Amount),
		slog.String("status", fee.Status),
		slog.Time("due_date", fee.DueDate),
	)

	return nil
}
