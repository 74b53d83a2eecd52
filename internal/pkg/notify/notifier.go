package notify

import (
	"context"

	"battery-delivery/internal/entities"
	"battery-delivery/pkg/logger"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var NotificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "user_notifications_total",
		Help: "Total number of user-visible notifications by level",
	},
	[]string{"level", "source"},
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

// Notifier пишет пользовательские уведомления в лог с уровнем уведомления.
// source различает сервисы в метриках (deliveries, channels, users).
type Notifier struct {
	log    handlerLogger
	source string
}

func New(log handlerLogger, source string) *Notifier {
	return &Notifier{
		log:    log.With(logger.NewField("source", source)),
		source: source,
	}
}

func (n *Notifier) Notify(_ context.Context, notification entities.Notification) {
	NotificationsTotal.WithLabelValues(notification.Level.String(), n.source).Inc()

	fields := []logger.Field{
		logger.NewField("title", notification.Title),
		logger.NewField("message", notification.Message),
	}

	switch notification.Level {
	case entities.NotificationError:
		n.log.Error("notification", fields...)
	case entities.NotificationWarning:
		n.log.Warn("notification", fields...)
	default:
		n.log.Info("notification", fields...)
	}
}
