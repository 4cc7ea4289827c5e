package config

import (
	"log/slog"
	"strings"

	"github.com/nederlandse-workbook/learning-service/internal/events"
)

// EventConfig holds configuration for activity event publishing.
type EventConfig struct {
	Enabled       bool
	Publisher     string // kafka or mock
	KafkaBrokers  string
	ActivityTopic string
}

// GetKafkaBrokers returns Kafka brokers as a slice.
func (c *EventConfig) GetKafkaBrokers() []string {
	return strings.Split(c.KafkaBrokers, ",")
}

// CreateActivityPublisher creates a publisher based on configuration.
func (c *EventConfig) CreateActivityPublisher(logger *slog.Logger) (events.ActivityPublisher, error) {
	if !c.Enabled {
		logger.Info("Event publishing disabled, using mock publisher")
		return events.NewMockActivityPublisher(logger), nil
	}

	switch c.Publisher {
	case "kafka":
		logger.Info("Creating Kafka activity publisher",
			"brokers", c.KafkaBrokers,
			"topic", c.ActivityTopic)

		return events.NewKafkaActivityPublisher(events.PublisherConfig{
			KafkaBrokers: c.GetKafkaBrokers(),
			TopicName:    c.ActivityTopic,
			Logger:       logger,
		})
	case "mock":
		logger.Info("Using mock activity publisher")
		return events.NewMockActivityPublisher(logger), nil
	default:
		logger.Warn("Unknown event publisher type, falling back to mock", "publisher", c.Publisher)
		return events.NewMockActivityPublisher(logger), nil
	}
}
