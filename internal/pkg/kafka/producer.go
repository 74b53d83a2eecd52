package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"battery-delivery/internal/pkg/config"
	"battery-delivery/pkg/logger"

	"github.com/IBM/sarama"
)

// TableChangedEvent сообщение об изменении таблицы. Данных строки не несет.
type TableChangedEvent struct {
	Table      string    `json:"table"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Producer публикует события об изменениях таблиц для остальных инстансов.
type Producer struct {
	log      logger.Logger
	producer sarama.SyncProducer
	topic    string
	now      func() time.Time
}

func NewProducer(ctx context.Context, log logger.Logger, cfg *config.Kafka) (*Producer, error) {
	saramaConfig, err := NewSaramaConfig(
		cfg.Sarama.Version,
		cfg.Sarama.ConsumerOffsetsAutocommit,
		sarama.OffsetNewest,
		sarama.NewBalanceStrategyRoundRobin(),
	)
	if err != nil {
		return nil, fmt.Errorf("build saramaConfig: %w", err)
	}

	producerLog := log.With(
		logger.NewField("brokers", cfg.Brokers),
		logger.NewField("topic", cfg.Topic),
	)

	err = pingKafka(ctx, producerLog, cfg.Brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("kafka connection: %w", err)
	}

	syncProducer, err := sarama.NewSyncProducer(cfg.Brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create producer: %w", err)
	}

	return newProducer(producerLog, syncProducer, cfg.Topic), nil
}

func newProducer(log logger.Logger, producer sarama.SyncProducer, topic string) *Producer {
	return &Producer{
		log:      log,
		producer: producer,
		topic:    topic,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (p *Producer) PublishChange(ctx context.Context, table string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	payload, err := json.Marshal(TableChangedEvent{
		Table:      table,
		OccurredAt: p.now(),
	})
	if err != nil {
		return fmt.Errorf("marshal table changed event: %w", err)
	}

	partition, offset, err := p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(table),
		Value: sarama.ByteEncoder(payload),
	})
	if err != nil {
		return fmt.Errorf("send table changed event: %w", err)
	}

	p.log.With(
		logger.NewField("table", table),
		logger.NewField("partition", partition),
		logger.NewField("offset", offset),
	).Info("table changed event published")
	return nil
}

func (p *Producer) Close() error {
	return p.producer.Close()
}
