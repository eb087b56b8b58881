package broker

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	brokerRepository "mediashelf/internal/domain/repository/broker"
)

// Publisher appends content-change events to the configured stream.
// Consumers (site frontends, cache invalidators) read it independently.
type Publisher struct {
	client  *Client
	timeout time.Duration
}

func NewPublisher(client *Client, cfg PublisherConfig) *Publisher {
	return &Publisher{
		client:  client,
		timeout: time.Duration(cfg.Timeout) * time.Millisecond,
	}
}

func (p *Publisher) Publish(ctx context.Context, event brokerRepository.Event) error {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	return p.client.redis.XAdd(ctx, &redis.XAddArgs{
		Stream: p.client.stream,
		Values: map[string]any{
			"kind":   event.Kind,
			"action": event.Action,
			"id":     event.ID,
		},
	}).Err()
}
