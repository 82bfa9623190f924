package feed

import (
	"context"
	"sync"

	"github.com/redis/go-redis/v9"
)

// RedisFeed relays signals through redis pub/sub so every instance's websocket clients see them.
type RedisFeed struct {
	client redis.UniversalClient
}

func NewRedisFeed(client redis.UniversalClient) *RedisFeed {
	return &RedisFeed{client: client}
}

func (f *RedisFeed) Publish(ctx context.Context, restaurantID, date string) error {
	return f.client.Publish(ctx, Topic(restaurantID, date), date).Err()
}

func (f *RedisFeed) Subscribe(ctx context.Context, restaurantID, date string) (<-chan struct{}, func(), error) {
	pubsub := f.client.Subscribe(ctx, Topic(restaurantID, date))
	// Wait for the subscription confirmation so no publish after return is missed.
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, nil, err
	}

	out := make(chan struct{}, 1)
	go func() {
		defer close(out)
		for range pubsub.Channel() {
			notify(out)
		}
	}()

	var once sync.Once
	cancel := func() {
		once.Do(func() { _ = pubsub.Close() })
	}
	return out, cancel, nil
}
