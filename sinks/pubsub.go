package sinks

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/pubsub"
	"go.uber.org/zap"

	"github.com/JakeFAU/unwrapprint"
)

// Publisher abstracts the message send so tests can run without a broker.
type Publisher interface {
	Publish(ctx context.Context, data []byte) error
}

// Topic adapts a Pub/Sub topic to Publisher, blocking until the server
// acknowledges each message.
func Topic(topic *pubsub.Topic) Publisher {
	return topicPublisher{topic: topic}
}

type topicPublisher struct {
	topic *pubsub.Topic
}

func (t topicPublisher) Publish(ctx context.Context, data []byte) error {
	res := t.topic.Publish(ctx, &pubsub.Message{Data: data})
	if _, err := res.Get(ctx); err != nil {
		return fmt.Errorf("publish diagnostic: %w", err)
	}
	return nil
}

// PubSubConfig adjusts the Pub/Sub printer.
type PubSubConfig struct {
	// PublishTimeout bounds each publish; zero means 10s.
	PublishTimeout time.Duration
	// Logger receives publish failures; nil discards them.
	Logger *zap.Logger
}

// PubSub returns a printer that publishes each diagnostic line as one
// message to pub. A publish that fails is logged and dropped. A nil pub
// discards.
func PubSub(pub Publisher, cfg PubSubConfig) unwrapprint.Printer {
	if pub == nil {
		return func(string) {}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	timeout := cfg.PublishTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return func(text string) {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		if err := pub.Publish(ctx, []byte(text)); err != nil {
			logger.Warn("publish diagnostic failed", zap.Error(err))
		}
	}
}
