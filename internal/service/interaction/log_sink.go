package interaction

import (
	"context"
	"log/slog"

	"github.com/Domenick1991/kiosk/internal/domain"
)

// LogSink stands in for the analytics backend when no broker is configured.
type LogSink struct {
	logger *slog.Logger
}

func NewLogSink(logger *slog.Logger) *LogSink {
	return &LogSink{logger: logger}
}

func (s *LogSink) Publish(_ context.Context, event domain.InteractionEvent) error {
	s.logger.Info("interaction",
		"type", event.Type,
		"session_id", event.SessionID,
		"device_id", event.DeviceID,
		"destination_id", event.DestinationID,
		"degraded", event.Degraded,
	)
	return nil
}
