package worker

import (
	"context"
	"sync"
	"time"

	"turnos/queue-service/internal/constant"
	"turnos/queue-service/internal/domain"

	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// WorkerPool publishes turn events to kafka from a buffered channel, so
// request handlers never wait on the broker.
type WorkerPool struct {
	writer     messageWriter
	logger     *logrus.Logger
	numWorkers int
	jobs       chan domain.KafkaMessage
	backoff    time.Duration

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

type Option func(*WorkerPool)

func WithRetryBackoff(d time.Duration) Option {
	return func(p *WorkerPool) { p.backoff = d }
}

func WithBufferSize(size int) Option {
	return func(p *WorkerPool) { p.jobs = make(chan domain.KafkaMessage, size) }
}

func NewWorkerPool(writer messageWriter, logger *logrus.Logger, numWorkers int, opts ...Option) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = 1
	}

	ctx, cancel := context.WithCancel(context.Background())
	p := &WorkerPool{
		writer:     writer,
		logger:     logger,
		numWorkers: numWorkers,
		jobs:       make(chan domain.KafkaMessage, constant.KafkaWorkerBufSize),
		backoff:    constant.KafkaRetryBackoff,
		ctx:        ctx,
		cancel:     cancel,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// NopPublisher drops every event. Used when kafka is not configured.
type NopPublisher struct{}

func (NopPublisher) Publish(domain.TurnEvent) error { return nil }
