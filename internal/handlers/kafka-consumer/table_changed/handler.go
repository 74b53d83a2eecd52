package table_changed

import (
	"context"
	"encoding/json"
	"time"

	"battery-delivery/pkg/logger"

	"github.com/IBM/sarama"
)

// Handler доставляет события table.changed из Kafka в локальный change feed.
// Каждый инстанс читает топик своей группой, поэтому кэш обновляют все инстансы.
type Handler struct {
	changes                  ChangeHandler
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, changes ChangeHandler, timeout time.Duration) *Handler {
	handlerLog := log.With(logger.NewField("handler", "table.changed"))

	return &Handler{
		changes:                  changes,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("table.changed: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// rebalance или остановка consumer group
			h.log.Info("table.changed: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing возвращает true, если ConsumeClaim нужно прервать (сессия закрыта),
// сообщение при этом не помечается и будет прочитано снова.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	if sess.Context().Err() != nil {
		return true
	}

	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event tableChangedEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
			logger.NewField("offset", message.Offset),
		).Error("table.changed handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("table", event.Table),
		logger.NewField("occurred_at", event.OccurredAt),
		logger.NewField("offset", message.Offset),
	)

	if !isKnownTable(event.Table) {
		msgLog.Warn("table.changed handler unknown table, skipping")
		sess.MarkMessage(message, "")
		return false
	}

	h.changes.Publish(ctx, event.Table)
	msgLog.Info("table.changed: processed")

	sess.MarkMessage(message, "")
	return false
}
