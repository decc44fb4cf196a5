package turn

import (
	"context"

	"turnos/queue-service/internal/api/request"
	"turnos/queue-service/internal/domain"
)

type TurnHandler struct {
	turnService turnService
}

type turnService interface {
	Submit(ctx context.Context, req request.SubmitTurnRequest) (domain.Turn, error)
	ListPending(ctx context.Context) []domain.Turn
	ServeNext(ctx context.Context) (domain.Turn, bool, []domain.Turn)
	Stats(ctx context.Context) (domain.QueueStats, error)
	PendingLen(ctx context.Context) int
}

func New(turnService turnService) *TurnHandler {
	return &TurnHandler{
		turnService: turnService,
	}
}
