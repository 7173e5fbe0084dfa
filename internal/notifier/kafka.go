package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/agrilink/market-service/internal/config"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

type event struct {
	UserID  uuid.UUID      `json:"user_id"`
	Event   string         `json:"event"`
	Payload map[string]any `json:"payload,omitempty"`
	SentAt  time.Time      `json:"sent_at"`
}

// KafkaNotifier publishes user-facing events to a Kafka topic. Delivery is
// best effort: failures are logged and never propagated to the caller.
type KafkaNotifier struct {
	logger *slog.Logger
	writer *kafka.Writer
}

func NewKafkaNotifier(logger *slog.Logger, cfg config.Kafka) *KafkaNotifier {
	return &KafkaNotifier{
		logger: logger.With(slog.String("component", "notifier")),
		writer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Topic:        cfg.Topic,
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: cfg.BatchTimeout,
		},
	}
}

func (n *KafkaNotifier) Notify(ctx context.Context, userID uuid.UUID, name string, payload map[string]any) {
	msg, err := json.Marshal(event{
		UserID:  userID,
		Event:   name,
		Payload: payload,
		SentAt:  time.Now().UTC(),
	})
	if err != nil {
		n.logger.Error("failed to marshal notification", slog.Any("error", err))
		return
	}

	err = n.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(userID.String()),
		Value: msg,
	})
	if err != nil {
		n.logger.Error("failed to publish notification",
			slog.String("event", name), slog.Any("error", err))
	}
}

func (n *KafkaNotifier) Close() error {
	if err := n.writer.Close(); err != nil {
		return fmt.Errorf("close kafka writer: %w", err)
	}
	return nil
}
