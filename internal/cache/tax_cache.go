package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"

	"github.com/brightcomgroup/storefront/internal/domain"
)

const taxRecordsKey = "storefront:gstdetails:all"

// DefaultTaxTTL — срок жизни кэшированного налогового справочника.
// Справочник меняется редко, поэтому минута — безопасный компромисс.
const DefaultTaxTTL = time.Minute

// TaxCache кэширует налоговый справочник в Redis. Все методы безопасны
// на nil-приёмнике: без Redis кэш просто отключён.
type TaxCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *log.Entry
}

// NewTaxCache создаёт кэш поверх Redis по указанному адресу.
func NewTaxCache(addr string, ttl time.Duration) *TaxCache {
	if ttl <= 0 {
		ttl = DefaultTaxTTL
	}
	return &TaxCache{
		client: redis.NewClient(&redis.Options{Addr: addr}),
		ttl:    ttl,
		logger: log.WithField("component", "tax-cache"),
	}
}

// Get возвращает кэшированный справочник. Второй результат false означает
// промах кэша либо ошибку чтения; ошибка логируется и не пробрасывается.
func (c *TaxCache) Get(ctx context.Context) ([]domain.TaxRecord, bool) {
	if c == nil {
		return nil, false
	}

	payload, err := c.client.Get(ctx, taxRecordsKey).Result()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		c.logger.WithError(err).Warn("failed to read tax records from cache")
		return nil, false
	}

	var records []domain.TaxRecord
	if err := json.Unmarshal([]byte(payload), &records); err != nil {
		c.logger.WithError(err).Warn("failed to decode cached tax records")
		return nil, false
	}
	return records, true
}

// Set сохраняет справочник в кэш. Ошибка записи логируется и не
// пробрасывается: кэш не должен ломать чтение справочника.
func (c *TaxCache) Set(ctx context.Context, records []domain.TaxRecord) {
	if c == nil {
		return
	}

	payload, err := json.Marshal(records)
	if err != nil {
		c.logger.WithError(err).Warn("failed to encode tax records for cache")
		return
	}
	if err := c.client.Set(ctx, taxRecordsKey, payload, c.ttl).Err(); err != nil {
		c.logger.WithError(err).Warn("failed to write tax records to cache")
	}
}

// Close закрывает соединение с Redis.
func (c *TaxCache) Close() error {
	if c == nil {
		return nil
	}
	return c.client.Close()
}
