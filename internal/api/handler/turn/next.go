package turn

import (
	"net/http"

	"turnos/queue-service/internal/constant"
	"turnos/queue-service/internal/domain"

	"github.com/gin-gonic/gin"
)

type serveNextResponse struct {
	Message string        `json:"message"`
	Turn    *domain.Turn  `json:"turn"`
	Pending []domain.Turn `json:"pending"`
}

// ServeNext godoc
// @Summary      Serve the next turn
// @Description  Removes and returns the next turn. An empty queue is not an error.
// @Tags         Turnos
// @Produce      json
// @Success      200 {object} serveNextResponse
// @Router       /turnos/siguiente [get]
func (h *TurnHandler) ServeNext(c *gin.Context) {
	turn, ok, remaining := h.turnService.ServeNext(c)
	if !ok {
		c.JSON(http.StatusOK, serveNextResponse{
			Message: constant.NoTurnsMessage,
			Turn:    nil,
			Pending: []domain.Turn{},
		})
		return
	}

	c.JSON(http.StatusOK, serveNextResponse{
		Message: constant.ServeMessage,
		Turn:    &turn,
		Pending: remaining,
	})
}
