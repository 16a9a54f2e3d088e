package service

import (
	"context"
	"errors"

	"github.com/pablotanner/RocketRealtor/internal/domain"
	"github.com/pablotanner/RocketRealtor/internal/events"
	"github.com/pablotanner/RocketRealtor/internal/metrics"
	"github.com/pablotanner/RocketRealtor/internal/store"

	"go.uber.org/zap"
)

// Support collaborators shared by every service. Cache and event failures are
// logged and never fail the calling operation.
type Support struct {
	Cache   store.Cache
	Events  events.Publisher
	Metrics *metrics.Metrics
	Logger  *zap.Logger
}

func (s Support) withDefaults() Support {
	if s.Cache == nil {
		s.Cache = store.NopCache{}
	}
	if s.Events == nil {
		s.Events = events.NopPublisher{}
	}
	if s.Logger == nil {
		s.Logger = zap.NewNop()
	}
	return s
}

// cached loads entity/variant for realtorID into dest, falling back to load and saving the result
func cached[T any](ctx context.Context, s Support, entity store.Entity, realtorID uint, variant string, load func() (T, error)) (T, error) {
	var out T
	ok, err := s.Cache.Load(ctx, entity, realtorID, variant, &out)
	if err != nil {
		s.Logger.Warn("cache load failed", zap.String("entity", string(entity)), zap.Error(err))
	}
	s.Metrics.RecordCacheLookup(string(entity), ok)
	if ok {
		return out, nil
	}

	out, err = load()
	if err != nil {
		return out, err
	}
	if err := s.Cache.Save(ctx, entity, realtorID, variant, out); err != nil {
		s.Logger.Warn("cache save failed", zap.String("entity", string(entity)), zap.Error(err))
	}
	return out, nil
}

// changed invalidates the given entity caches and publishes e
func (s Support) changed(ctx context.Context, e events.Event, entities ...store.Entity) {
	if err := s.Cache.Invalidate(ctx, entities...); err != nil {
		s.Logger.Warn("cache invalidation failed", zap.String("event", e.Type), zap.Error(err))
	}
	err := s.Events.Publish(ctx, e)
	s.Metrics.RecordEvent(e.Type, err)
	if err != nil {
		s.Logger.Warn("event publish failed", zap.String("event", e.Type), zap.Error(err))
	}
}

// prefixed re-keys validation errors under prefix, e.g. "lease."
func prefixed(err error, prefix string) error {
	var ve domain.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}
	out := make(domain.ValidationErrors, 0, len(ve))
	for _, e := range ve {
		out = append(out, domain.ValidationError{Field: prefix + e.Field, Message: e.Message})
	}
	return out
}
