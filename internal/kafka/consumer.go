package kafka

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/Domenick1991/kiosk/internal/domain"
	"github.com/segmentio/kafka-go"
)

type InteractionHandler func(ctx context.Context, event domain.InteractionEvent) error

type Consumer struct {
	reader *kafka.Reader
	logger *slog.Logger
}

func NewConsumer(brokers []string, groupID, topic string, logger *slog.Logger) *Consumer {
	return &Consumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers:           brokers,
			GroupID:           groupID,
			Topic:             topic,
			HeartbeatInterval: 3 * time.Second,
			SessionTimeout:    30 * time.Second,
		}),
		logger: logger,
	}
}

func (c *Consumer) Close() error {
	if c == nil || c.reader == nil {
		return nil
	}
	return c.reader.Close()
}

// Consume hands every decodable event to handler and commits it afterwards,
// so a crash between the two redelivers the event. Undecodable messages are
// logged and committed.
func (c *Consumer) Consume(ctx context.Context, handler InteractionHandler) error {
	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			return err
		}

		if event, ok := decodeInteraction(msg.Value); ok {
			if err := handler(ctx, event); err != nil {
				return err
			}
		} else {
			c.logger.Warn("skipping undecodable interaction", "offset", msg.Offset, "partition", msg.Partition)
		}

		if err := c.reader.CommitMessages(ctx, msg); err != nil {
			return err
		}
	}
}

func decodeInteraction(data []byte) (domain.InteractionEvent, bool) {
	var event domain.InteractionEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return domain.InteractionEvent{}, false
	}
	if event.Type == "" {
		return domain.InteractionEvent{}, false
	}
	return event, true
}
