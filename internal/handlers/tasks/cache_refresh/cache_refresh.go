package cache_refresh

import (
	"context"
	"fmt"
	"time"

	"battery-delivery/pkg/logger"
)

// CacheRefresh периодически перечитывает кэш сервиса целиком. Страхует от потерянных
// уведомлений канала изменений. Первый вызов Do в background.New служит первичной загрузкой.
type CacheRefresh struct {
	log      handlerLogger
	name     string
	service  Service
	interval time.Duration
}

func NewCacheRefresh(log handlerLogger, name string, service Service, interval time.Duration) *CacheRefresh {
	return &CacheRefresh{
		log:      log,
		name:     name,
		service:  service,
		interval: interval,
	}
}

func (c *CacheRefresh) TTL() time.Duration {
	return c.interval
}

func (c *CacheRefresh) Do(ctx context.Context) error {
	timeout := c.interval
	if timeout <= 0 {
		timeout = time.Minute
	}

	ctxWithTimeout, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	started := time.Now()
	err := c.service.Reload(ctxWithTimeout)
	if err != nil {
		return fmt.Errorf("refresh %s cache: %w", c.name, err)
	}

	c.log.With(
		logger.NewField("cache", c.name),
		logger.NewField("duration", time.Since(started)),
	).Info("cache refreshed")

	return nil
}

func (c *CacheRefresh) Info() string {
	return c.name + " cache refresh"
}
