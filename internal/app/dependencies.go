package app

import (
	"context"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/brightcomgroup/storefront/internal/cache"
	"github.com/brightcomgroup/storefront/internal/domain"
	"github.com/brightcomgroup/storefront/internal/messaging/kafka"
	"github.com/brightcomgroup/storefront/internal/storage/memory"
	"github.com/brightcomgroup/storefront/internal/storage/postgres"
)

// dependencies собирает инфраструктуру сервиса: хранилища, продюсер событий и кэш.
type dependencies struct {
	orders   domain.OrderRepository
	taxes    domain.TaxRepository
	store    *postgres.Store // nil при in-memory хранилище
	producer *kafka.Producer // nil, если Kafka не настроен
	taxCache *cache.TaxCache // nil, если Redis не настроен
}

func initDependencies(ctx context.Context, cfg Config, logger *log.Entry) (*dependencies, error) {
	deps := &dependencies{}

	if cfg.DatabaseURL != "" {
		store, err := postgres.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		if err := store.MigrateUp(ctx); err != nil {
			_ = store.Close()
			return nil, fmt.Errorf("apply migrations: %w", err)
		}
		deps.store = store
		deps.orders = postgres.NewOrderRepository(store)
		deps.taxes = postgres.NewTaxRepository(store)
		logger.Info("postgres storage initialized")
	} else {
		deps.orders = memory.NewOrderRepository()
		deps.taxes = memory.NewTaxRepository()
		logger.Info("using in-memory storage")
	}

	// Kafka опционален: без брокеров события отмены просто не публикуются.
	if cfg.KafkaBrokers != "" {
		brokers := strings.Split(cfg.KafkaBrokers, ",")
		producer, err := kafka.NewProducer(brokers)
		if err != nil {
			logger.WithError(err).Warn("failed to create kafka producer, continuing without kafka")
		} else {
			deps.producer = producer
			logger.WithField("brokers", brokers).Info("kafka producer initialized")
		}
	}

	if cfg.RedisAddr != "" {
		deps.taxCache = cache.NewTaxCache(cfg.RedisAddr, cache.DefaultTaxTTL)
		logger.WithField("addr", cfg.RedisAddr).Info("redis tax cache initialized")
	}

	return deps, nil
}

func (d *dependencies) Close(logger *log.Entry) {
	if d.producer != nil {
		if err := d.producer.Close(); err != nil {
			logger.WithError(err).Warn("failed to close kafka producer")
		}
	}
	if d.taxCache != nil {
		if err := d.taxCache.Close(); err != nil {
			logger.WithError(err).Warn("failed to close redis client")
		}
	}
	if d.store != nil {
		if err := d.store.Close(); err != nil {
			logger.WithError(err).Warn("failed to close postgres store")
		}
	}
}
