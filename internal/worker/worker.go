package worker

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"turnos/queue-service/internal/constant"
	"turnos/queue-service/internal/domain"

	"github.com/pkg/errors"
	"github.com/segmentio/kafka-go"
)

// Publish hands an event to the workers without blocking. It returns
// constant.EventQueueFullErr when the buffer is full.
func (p *WorkerPool) Publish(ev domain.TurnEvent) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return errors.Wrap(err, "failed to marshal event")
	}

	km := domain.KafkaMessage{
		Key:     strconv.FormatInt(ev.Turn.ID, 10),
		Payload: payload,
	}

	select {
	case <-p.ctx.Done():
		return errors.New("worker pool stopped")
	default:
	}

	select {
	case p.jobs <- km:
		return nil
	default:
		return constant.EventQueueFullErr
	}
}

func (p *WorkerPool) worker(id int) {
	defer p.wg.Done()

	for {
		select {
		case <-p.ctx.Done():
			p.drain(id)
			p.logger.Debugf("event worker %d: context cancelled, exiting", id)
			return
		case km := <-p.jobs:
			p.write(id, km)
		}
	}
}

// drain flushes whatever is still buffered once, without retries.
func (p *WorkerPool) drain(id int) {
	for {
		select {
		case km := <-p.jobs:
			ctx, cancel := context.WithTimeout(context.Background(), constant.KafkaWriteTimeout)
			if err := p.send(ctx, km); err != nil {
				p.logger.Warnf("event worker %d: dropping event %s on shutdown: %v", id, km.Key, err)
			}
			cancel()
		default:
			return
		}
	}
}

// write retries with a fresh timeout per attempt, so Stop never aborts an
// in-flight event.
func (p *WorkerPool) write(id int, km domain.KafkaMessage) {
	for attempt := 0; attempt < constant.KafkaWriteRetries; attempt++ {
		ctx, cancel := context.WithTimeout(context.Background(), constant.KafkaWriteTimeout)
		err := p.send(ctx, km)
		cancel()
		if err == nil {
			return
		}

		km.Attempts++
		p.logger.Warnf("event worker %d: write attempt %d failed: %v", id, attempt+1, err)
		if attempt+1 < constant.KafkaWriteRetries {
			time.Sleep(p.backoff * time.Duration(attempt+1))
		}
	}

	p.logger.Errorf("event worker %d: giving up on event for turn %s after %d attempts", id, km.Key, km.Attempts)
}

func (p *WorkerPool) send(ctx context.Context, km domain.KafkaMessage) error {
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(km.Key),
		Value: km.Payload,
		Time:  time.Now(),
	})
}
