package postgres

import (
	"context"
	"fmt"
	"time"

	"battery-delivery/pkg/logger"
	"battery-delivery/pkg/retrier"
	"battery-delivery/pkg/retrier/backoff_adapter"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	listenInitialInterval = time.Second
	listenMaxInterval     = 30 * time.Second
)

type ChangeHandler interface {
	Publish(ctx context.Context, table string)
}

// Listener держит отдельное соединение с LISTEN на канал, в который триггеры
// таблиц пишут имя измененной таблицы, и передает его в ChangeHandler.
// При обрыве соединения переподключается с backoff до отмены контекста.
type Listener struct {
	log     logger.Logger
	pool    *pgxpool.Pool
	channel string
	handler ChangeHandler
	retrier retrier.Retrier
}

func NewListener(log logger.Logger, pool *pgxpool.Pool, channel string, handler ChangeHandler) *Listener {
	return &Listener{
		log: log.With(
			logger.NewField("component", "pg_listener"),
			logger.NewField("channel", channel),
		),
		pool:    pool,
		channel: channel,
		handler: handler,
		retrier: backoff_adapter.New(retrier.Forever(listenInitialInterval, listenMaxInterval)),
	}
}

// Start блокирующий вызов, возвращает nil после отмены контекста.
func (l *Listener) Start(ctx context.Context) error {
	l.log.Info("change listener starting")

	err := l.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		err := l.listen(ctx)
		if err != nil && ctx.Err() == nil {
			l.log.Warn("change listener disconnected, reconnecting",
				logger.NewField("error", err),
			)
		}
		return err
	})
	if ctx.Err() != nil {
		l.log.Info("change listener stopped")
		return nil
	}
	return err
}

func (l *Listener) listen(ctx context.Context) error {
	conn, err := l.pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Release()

	_, err = conn.Exec(ctx, "LISTEN "+pgx.Identifier{l.channel}.Sanitize())
	if err != nil {
		return fmt.Errorf("listen %s: %w", l.channel, err)
	}
	l.log.Info("listening for table changes")

	for {
		notification, err := conn.Conn().WaitForNotification(ctx)
		if err != nil {
			if ctx.Err() != nil {
				// соединение могло остаться с активным LISTEN, в пул его не возвращаем
				conn.Hijack().Close(context.Background()) //nolint:errcheck // закрываем при остановке
				return err
			}
			return fmt.Errorf("wait for notification: %w", err)
		}

		l.handler.Publish(ctx, notification.Payload)
	}
}
