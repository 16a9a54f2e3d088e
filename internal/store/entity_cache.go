package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Entity cached collection type
type Entity string

const (
	EntityTenants    Entity = "tenants"
	EntityLeases     Entity = "leases"
	EntityUnits      Entity = "units"
	EntityProperties Entity = "properties"
)

const keyPrefix = "cache:"

// Cache read-through response cache keyed per realtor. Invalidation is coarse:
// a mutation drops every cached variant of the affected entity types for all realtors.
type Cache interface {
	// Load decodes the cached value into dest; ok is false on a miss
	Load(ctx context.Context, entity Entity, realtorID uint, variant string, dest any) (ok bool, err error)
	Save(ctx context.Context, entity Entity, realtorID uint, variant string, value any) error
	Invalidate(ctx context.Context, entities ...Entity) error
}

// Key builds cache:<entity>:<realtorId>:<variant>
func Key(entity Entity, realtorID uint, variant string) string {
	if variant == "" {
		variant = "all"
	}
	return fmt.Sprintf("%s%s:%d:%s", keyPrefix, entity, realtorID, variant)
}

// EntityCache Cache on top of a KV
type EntityCache struct {
	kv     KV
	ttl    time.Duration
	logger *zap.Logger
}

func NewEntityCache(kv KV, ttl time.Duration, logger *zap.Logger) *EntityCache {
	return &EntityCache{kv: kv, ttl: ttl, logger: logger}
}

func (c *EntityCache) Load(ctx context.Context, entity Entity, realtorID uint, variant string, dest any) (bool, error) {
	raw, err := c.kv.Get(ctx, Key(entity, realtorID, variant))
	if err != nil {
		if errors.Is(err, ErrMiss) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		return false, fmt.Errorf("decode cached %s: %w", entity, err)
	}
	return true, nil
}

func (c *EntityCache) Save(ctx context.Context, entity Entity, realtorID uint, variant string, value any) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.kv.Set(ctx, Key(entity, realtorID, variant), string(b), c.ttl)
}

func (c *EntityCache) Invalidate(ctx context.Context, entities ...Entity) error {
	for _, e := range entities {
		keys, err := c.kv.ScanKeys(ctx, keyPrefix+string(e)+":*")
		if err != nil {
			return fmt.Errorf("scan %s keys: %w", e, err)
		}
		if err := c.kv.Del(ctx, keys...); err != nil {
			return fmt.Errorf("delete %s keys: %w", e, err)
		}
		c.logger.Debug("cache invalidated", zap.String("entity", string(e)), zap.Int("keys", len(keys)))
	}
	return nil
}

// NopCache is used when Redis is disabled
type NopCache struct{}

func (NopCache) Load(context.Context, Entity, uint, string, any) (bool, error) { return false, nil }
func (NopCache) Save(context.Context, Entity, uint, string, any) error         { return nil }
func (NopCache) Invalidate(context.Context, ...Entity) error                   { return nil }
