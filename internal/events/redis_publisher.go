package events

import (
	"context"
	"fmt"

	rediscommon "github.com/pablotanner/RocketRealtor/internal/common/redis"

	"go.uber.org/zap"
)

const defaultStreamMaxLen = 10000

// RedisStreamPublisher appends events to a Redis stream
type RedisStreamPublisher struct {
	client *rediscommon.Client
	stream string
	maxLen int64
	logger *zap.Logger
}

func NewRedisStreamPublisher(client *rediscommon.Client, stream string, logger *zap.Logger) *RedisStreamPublisher {
	return &RedisStreamPublisher{client: client, stream: stream, maxLen: defaultStreamMaxLen, logger: logger}
}

func (p *RedisStreamPublisher) Publish(ctx context.Context, e Event) error {
	id, err := rediscommon.PublishToStream(ctx, p.client, p.stream, p.maxLen, map[string]interface{}{
		"type":        e.Type,
		"realtor_id":  e.RealtorID,
		"entity_id":   e.EntityID,
		"occurred_at": e.OccurredAt.Unix(),
		"payload":     e.Payload,
	})
	if err != nil {
		return fmt.Errorf("publish %s to stream %s: %w", e.Type, p.stream, err)
	}
	p.logger.Debug("event published",
		zap.String("stream", p.stream),
		zap.String("id", id),
		zap.String("type", e.Type),
	)
	return nil
}

// Close is a no-op; the Redis client is shared and closed by its owner
func (p *RedisStreamPublisher) Close() error { return nil }
