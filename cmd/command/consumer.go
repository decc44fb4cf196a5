package command

import (
	"context"
	"encoding/json"
	"time"

	"turnos/queue-service/internal/config"
	"turnos/queue-service/internal/constant"
	"turnos/queue-service/internal/domain"
	"turnos/queue-service/internal/infra"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type EventConsumerCommand struct {
	Logger *log.Logger
}

func (cmd EventConsumerCommand) Command(ctx context.Context, cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "consume-events",
		Short: "consume turn events from Kafka and log them",
		Run: func(_ *cobra.Command, _ []string) {
			cmd.main(cfg, ctx)
		},
	}
}

func (cmd EventConsumerCommand) main(cfg *config.Config, ctx context.Context) {
	if cfg.Kafka.Host == "" {
		cmd.Logger.WithContext(ctx).Fatal("consume-events : kafka host is not configured")
		return
	}

	reader := infra.NewKafkaConsumer(cfg.Kafka, constant.KafkaConsumerGroup)
	defer func() {
		if err := reader.Close(); err != nil {
			cmd.Logger.WithContext(ctx).Errorf("failed to close Kafka consumer: %v", err)
		}
	}()

	cmd.Logger.WithContext(ctx).Infof("consuming turn events from topic %s", cfg.Kafka.Topic)

	for {
		m, err := reader.ReadMessage(ctx)
		if err != nil {
			select {
			case <-ctx.Done():
				cmd.Logger.WithContext(ctx).Info("event consumer: context done, shutting down...")
				return
			default:
			}
			cmd.Logger.WithContext(ctx).Errorf("event consumer: read error: %v", err)
			time.Sleep(500 * time.Millisecond)
			continue
		}

		var ev domain.TurnEvent
		if err := json.Unmarshal(m.Value, &ev); err != nil {
			cmd.Logger.WithContext(ctx).Errorf("event consumer: invalid payload: %v, raw: %s", err, string(m.Value))
			continue
		}

		logEvent(cmd.Logger, ev)
	}
}

func logEvent(logger *log.Logger, ev domain.TurnEvent) {
	fields := log.Fields{
		"event_id":    ev.ID,
		"type":        ev.Type,
		"turn_id":     ev.Turn.ID,
		"name":        ev.Turn.Name,
		"procedure":   ev.Turn.Procedure,
		"priority":    ev.Turn.Priority,
		"occurred_at": ev.OccurredAt,
	}
	if ev.PendingLen != nil {
		fields["pending_len"] = *ev.PendingLen
	}

	logger.WithFields(fields).Info("turn event")
}
