package turn

import (
	"context"
	"time"

	"turnos/queue-service/internal/domain"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type turnService struct {
	queue          domain.TurnQueue
	eventPublisher EventPublisher
	statsRepo      StatsRepository
	logger         *logrus.Logger
	newID          func() string
	now            func() time.Time
}

type EventPublisher interface {
	Publish(ev domain.TurnEvent) error
}

type StatsRepository interface {
	RecordSubmitted(ctx context.Context, turn domain.Turn) error
	RecordServed(ctx context.Context, turn domain.Turn) error
	GetStats(ctx context.Context) (domain.QueueStats, error)
}

func NewTurnService(
	queue domain.TurnQueue,
	eventPublisher EventPublisher,
	statsRepo StatsRepository,
	logger *logrus.Logger,
) *turnService {
	return &turnService{
		queue:          queue,
		eventPublisher: eventPublisher,
		statsRepo:      statsRepo,
		logger:         logger,
		newID:          uuid.NewString,
		now:            time.Now,
	}
}
