package main

import (
	"context"
	"fmt"
	"time"

	"github.com/pablotanner/RocketRealtor/internal/common/database"
	"github.com/pablotanner/RocketRealtor/internal/common/logger"
	rediscommon "github.com/pablotanner/RocketRealtor/internal/common/redis"
	"github.com/pablotanner/RocketRealtor/internal/config"
	"github.com/pablotanner/RocketRealtor/internal/events"
	httpapi "github.com/pablotanner/RocketRealtor/internal/http"
	"github.com/pablotanner/RocketRealtor/internal/metrics"
	"github.com/pablotanner/RocketRealtor/internal/repository"
	"github.com/pablotanner/RocketRealtor/internal/service"
	"github.com/pablotanner/RocketRealtor/internal/store"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// app holds the process-wide collaborators shared by every command
type app struct {
	cfg       *config.Config
	logger    *zap.Logger
	db        *gorm.DB
	redis     *redis.Client
	publisher events.Publisher
	metrics   *metrics.Metrics
	repos     *repository.Repositories
}

// newApp opens the database. Redis and the event backend are only connected
// when withSideEffects is set; one-shot commands run without them.
func newApp(withSideEffects bool) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	log, err := logger.NewLogger(cfg.Log.Level, cfg.Log.Format, "rocketrealtor")
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	db, err := database.Open(&cfg.Database, log)
	if err != nil {
		return nil, err
	}
	a := &app{
		cfg:       cfg,
		logger:    log,
		db:        db,
		publisher: events.NopPublisher{},
		repos:     repository.NewGormRepositories(db),
	}
	if !withSideEffects {
		return a, nil
	}

	if cfg.Metrics.Enabled {
		a.metrics = metrics.NewMetrics()
	}
	if cfg.Redis.Enabled {
		a.redis = rediscommon.NewRedisClient(&cfg.Redis)
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := rediscommon.Ping(ctx, a.redis); err != nil {
			a.close()
			return nil, err
		}
	}
	a.publisher, err = events.NewPublisher(cfg, a.redis, log)
	if err != nil {
		a.close()
		return nil, err
	}
	return a, nil
}

func (a *app) cache() store.Cache {
	if a.redis == nil {
		return store.NopCache{}
	}
	return store.NewEntityCache(store.NewRedisKV(a.redis), a.cfg.Cache.TTL, a.logger)
}

func (a *app) services() httpapi.Services {
	support := service.Support{
		Cache:   a.cache(),
		Events:  a.publisher,
		Metrics: a.metrics,
		Logger:  a.logger,
	}
	return httpapi.Services{
		Users:      service.NewUserService(a.repos.Users, a.logger),
		Tenants:    service.NewTenantService(a.repos.Tenants, a.repos.Leases, a.repos.Units, support),
		Leases:     service.NewLeaseService(a.repos.Leases, a.repos.Units, support),
		Units:      service.NewUnitService(a.repos.Units, a.repos.Properties, support),
		Properties: service.NewPropertyService(a.repos.Properties, support),
	}
}

// ping backs /healthz
func (a *app) ping(ctx context.Context) error {
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}
	return database.HealthCheck(ctx, sqlDB)
}

func (a *app) close() {
	if a.publisher != nil {
		if err := a.publisher.Close(); err != nil {
			a.logger.Warn("failed to close event publisher", zap.Error(err))
		}
	}
	if a.redis != nil {
		if err := rediscommon.Close(a.redis); err != nil {
			a.logger.Warn("failed to close redis", zap.Error(err))
		}
	}
	if err := database.Close(a.db); err != nil {
		a.logger.Warn("failed to close database", zap.Error(err))
	}
	_ = a.logger.Sync()
}
