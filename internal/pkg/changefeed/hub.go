package changefeed

import (
	"context"
	"sync"
	"time"

	"battery-delivery/pkg/logger"
)

type subscriber struct {
	name     string
	reloader Reloader
}

// Hub раздает уведомления "таблица изменилась" подписанным кэшам.
// Уведомление не несет данных, подписчик перечитывает таблицу целиком.
type Hub struct {
	log           handlerLogger
	reloadTimeout time.Duration

	mu          sync.RWMutex
	subscribers map[string][]subscriber
}

func NewHub(log handlerLogger, reloadTimeout time.Duration) *Hub {
	return &Hub{
		log:           log.With(logger.NewField("component", "change_feed")),
		reloadTimeout: reloadTimeout,
		subscribers:   make(map[string][]subscriber),
	}
}

func (h *Hub) Subscribe(table, name string, reloader Reloader) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.subscribers[table] = append(h.subscribers[table], subscriber{
		name:     name,
		reloader: reloader,
	})
}

// Publish синхронно перезагружает всех подписчиков таблицы.
// Ошибки перезагрузки логируются и не прерывают остальных подписчиков.
func (h *Hub) Publish(ctx context.Context, table string) {
	h.mu.RLock()
	subs := h.subscribers[table]
	h.mu.RUnlock()

	ChangeEventsTotal.WithLabelValues(table).Inc()

	if len(subs) == 0 {
		h.log.Warn("change for table without subscribers",
			logger.NewField("table", table),
		)
		return
	}

	for _, sub := range subs {
		h.reload(ctx, table, sub)
	}
}

func (h *Hub) reload(ctx context.Context, table string, sub subscriber) {
	ctx, cancel := context.WithTimeout(ctx, h.reloadTimeout)
	defer cancel()

	err := sub.reloader.Reload(ctx)
	if err != nil {
		ReloadsTotal.WithLabelValues(table, sub.name, "error").Inc()
		h.log.Error("cache reload after table change failed",
			logger.NewField("table", table),
			logger.NewField("subscriber", sub.name),
			logger.NewField("error", err),
		)
		return
	}

	ReloadsTotal.WithLabelValues(table, sub.name, "ok").Inc()
	h.log.Info("cache reloaded after table change",
		logger.NewField("table", table),
		logger.NewField("subscriber", sub.name),
	)
}
