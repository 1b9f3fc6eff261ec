package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/skolyn/backend/internal/model"
)

// DefaultChannel is the pub/sub channel demo requests are published on.
const DefaultChannel = "demo_requests"

// Publisher is the subset of *redis.Client used by RedisNotifier.
type Publisher interface {
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
}

// RedisNotifier publishes demo requests as JSON on a Redis channel.
// Subscribers that are not connected at publish time never see the message.
type RedisNotifier struct {
	pub     Publisher
	channel string
}

// NewRedisNotifier creates a RedisNotifier publishing on channel.
func NewRedisNotifier(pub Publisher, channel string) *RedisNotifier {
	if channel == "" {
		channel = DefaultChannel
	}
	return &RedisNotifier{pub: pub, channel: channel}
}

// NewRedisClient parses a redis:// URL and verifies the connection.
func NewRedisClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

func (n *RedisNotifier) NotifyDemoRequest(ctx context.Context, req *model.DemoRequest) error {
	data, err := json.Marshal(req)
	if err != nil {
		return err
	}
	if err := n.pub.Publish(ctx, n.channel, data).Err(); err != nil {
		return fmt.Errorf("publish demo request: %w", err)
	}
	return nil
}
