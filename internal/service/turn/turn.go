package turn

import (
	"context"

	"turnos/queue-service/internal/api/request"
	"turnos/queue-service/internal/domain"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

func (ts *turnService) Submit(ctx context.Context, req request.SubmitTurnRequest) (domain.Turn, error) {
	turn, err := ts.queue.Submit(req.Name, req.Procedure, req.PriorityValue())
	if err != nil {
		return domain.Turn{}, errors.Wrap(err, "failed to submit turn")
	}

	ts.logger.WithContext(ctx).WithFields(logrus.Fields{
		"turn_id":  turn.ID,
		"priority": turn.Priority,
	}).Info("turn submitted")

	if err := ts.statsRepo.RecordSubmitted(ctx, turn); err != nil {
		ts.logger.WithContext(ctx).Warnf("failed to record submit stats for turn %d: %v", turn.ID, err)
	}
	ts.publish(ctx, domain.EventTurnSubmitted, turn, nil)

	return turn, nil
}

func (ts *turnService) ListPending(_ context.Context) []domain.Turn {
	return ts.queue.ListPending()
}

func (ts *turnService) ServeNext(ctx context.Context) (domain.Turn, bool, []domain.Turn) {
	turn, ok, remaining := ts.queue.ServeNext()
	if !ok {
		return turn, ok, remaining
	}

	ts.logger.WithContext(ctx).WithFields(logrus.Fields{
		"turn_id":  turn.ID,
		"priority": turn.Priority,
		"pending":  len(remaining),
	}).Info("turn served")

	if err := ts.statsRepo.RecordServed(ctx, turn); err != nil {
		ts.logger.WithContext(ctx).Warnf("failed to record serve stats for turn %d: %v", turn.ID, err)
	}
	pendingLen := len(remaining)
	ts.publish(ctx, domain.EventTurnServed, turn, &pendingLen)

	return turn, ok, remaining
}

func (ts *turnService) Stats(ctx context.Context) (domain.QueueStats, error) {
	return ts.statsRepo.GetStats(ctx)
}

func (ts *turnService) PendingLen(_ context.Context) int {
	return ts.queue.Len()
}

// events are best effort, a failed publish never fails the request
func (ts *turnService) publish(ctx context.Context, typ domain.EventType, turn domain.Turn, pendingLen *int) {
	ev := domain.TurnEvent{
		ID:         ts.newID(),
		Type:       typ,
		Turn:       turn,
		PendingLen: pendingLen,
		OccurredAt: ts.now(),
	}

	if err := ts.eventPublisher.Publish(ev); err != nil {
		ts.logger.WithContext(ctx).Warnf("failed to publish %s for turn %d: %v", typ, turn.ID, err)
	}
}
