package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-kafka/v2/pkg/kafka"
	"github.com/ThreeDotsLabs/watermill/message"
)

// ActivityPublisher publishes learning activity events.
type ActivityPublisher interface {
	PublishActivityEvent(ctx context.Context, event *ActivityEvent) error
	Close() error
}

// KafkaActivityPublisher implements ActivityPublisher using Watermill with Kafka.
type KafkaActivityPublisher struct {
	publisher message.Publisher
	logger    *slog.Logger
	topicName string
}

// PublisherConfig holds configuration for the activity publisher.
type PublisherConfig struct {
	KafkaBrokers []string
	TopicName    string
	Logger       *slog.Logger
}

// NewKafkaActivityPublisher creates a Kafka-backed publisher.
func NewKafkaActivityPublisher(config PublisherConfig) (*KafkaActivityPublisher, error) {
	logger := watermill.NewSlogLogger(config.Logger)

	publisherConfig := kafka.PublisherConfig{
		Brokers:   config.KafkaBrokers,
		Marshaler: kafka.DefaultMarshaler{},
	}

	publisher, err := kafka.NewPublisher(publisherConfig, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka publisher: %w", err)
	}

	return &KafkaActivityPublisher{
		publisher: publisher,
		logger:    config.Logger,
		topicName: config.TopicName,
	}, nil
}

// PublishActivityEvent publishes one activity event to Kafka.
func (p *KafkaActivityPublisher) PublishActivityEvent(ctx context.Context, event *ActivityEvent) error {
	eventBytes, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal activity event: %w", err)
	}

	msg := message.NewMessage(event.ID, eventBytes)
	msg.Metadata.Set("event_type", string(event.Type))
	msg.Metadata.Set("source", event.Source)
	msg.Metadata.Set("version", event.Version)
	msg.Metadata.Set("user_id", event.UserID)
	msg.Metadata.Set("timestamp", event.Timestamp.Format("2006-01-02T15:04:05Z07:00"))

	if err := p.publisher.Publish(p.topicName, msg); err != nil {
		p.logger.Error("Failed to publish activity event",
			"event_id", event.ID,
			"event_type", event.Type,
			"error", err)
		return fmt.Errorf("failed to publish activity event: %w", err)
	}

	p.logger.Info("Published activity event",
		"event_id", event.ID,
		"event_type", event.Type,
		"topic", p.topicName)

	return nil
}

// Close closes the publisher and releases resources.
func (p *KafkaActivityPublisher) Close() error {
	return p.publisher.Close()
}

// MockActivityPublisher is an in-memory implementation for tests and for
// running without a broker.
type MockActivityPublisher struct {
	Events []ActivityEvent
	Logger *slog.Logger
}

func NewMockActivityPublisher(logger *slog.Logger) *MockActivityPublisher {
	return &MockActivityPublisher{
		Events: make([]ActivityEvent, 0),
		Logger: logger,
	}
}

func (m *MockActivityPublisher) PublishActivityEvent(ctx context.Context, event *ActivityEvent) error {
	m.Events = append(m.Events, *event)
	if m.Logger != nil {
		m.Logger.Info("Mock: Published activity event",
			"event_id", event.ID,
			"event_type", event.Type)
	}
	return nil
}

func (m *MockActivityPublisher) Close() error {
	return nil
}
