package constant

import (
	"time"

	"github.com/segmentio/kafka-go"
)

const (
	HistorySize = 3

	ServeMessage   = "turn to serve"
	NoTurnsMessage = "no turns in queue"

	RequestIdHeader = "X-Request-Id"
	RequestIdKey    = "request_id"

	RedisStatsPrefix    = "turnos:stats"
	RedisStatsBucketTTL = 24 * time.Hour
	RedisStatsTimeout   = 2 * time.Second

	KafkaTopic         = "turnos.events"
	KafkaConsumerGroup = "turnos-events-logger"
	KafkaProducerAcks  = kafka.RequireAll
	KafkaWriteTimeout  = 5 * time.Second
	KafkaWorkerBufSize = 1000
	KafkaWriteRetries  = 3
	KafkaRetryBackoff  = 500 * time.Millisecond
)
