package events

import (
	"fmt"

	"github.com/pablotanner/RocketRealtor/internal/common/mqtt"
	rediscommon "github.com/pablotanner/RocketRealtor/internal/common/redis"
	"github.com/pablotanner/RocketRealtor/internal/config"

	"go.uber.org/zap"
)

// NewPublisher builds the publisher selected by EVENTS_BACKEND.
// redisClient may be nil unless the backend is "redis".
func NewPublisher(cfg *config.Config, redisClient *rediscommon.Client, logger *zap.Logger) (Publisher, error) {
	switch cfg.Events.Backend {
	case "", "none":
		return NopPublisher{}, nil
	case "redis":
		if redisClient == nil {
			return nil, fmt.Errorf("events backend redis requires REDIS_ENABLED")
		}
		return NewRedisStreamPublisher(redisClient, cfg.Events.Stream, logger), nil
	case "mqtt":
		client, err := mqtt.NewClient(&cfg.MQTT)
		if err != nil {
			return nil, err
		}
		return NewMQTTPublisher(client, cfg.MQTT.TopicPrefix, cfg.MQTT.QoS), nil
	default:
		return nil, fmt.Errorf("unknown events backend %q", cfg.Events.Backend)
	}
}
