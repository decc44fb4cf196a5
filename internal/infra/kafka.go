package infra

import (
	"fmt"
	"time"

	"turnos/queue-service/internal/config"
	"turnos/queue-service/internal/constant"

	"github.com/segmentio/kafka-go"
)

func NewKafkaWriter(cfg config.Kafka) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)),
		Topic:                  cfg.Topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           constant.KafkaProducerAcks,
		Async:                  false, // workers perform sync writes with timeout + retries
		BatchTimeout:           10 * time.Millisecond,
		AllowAutoTopicCreation: true,
	}
}

func NewKafkaConsumer(cfg config.Kafka, groupID string) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers:  []string{fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)},
		Topic:    cfg.Topic,
		GroupID:  groupID,
		MinBytes: 1,
		MaxBytes: 10e6,
		MaxWait:  time.Second,
	})
}
